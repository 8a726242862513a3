// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package upload 负责校验上传的文件并且保存到存储后端
package upload

import (
	"context"
	"io"
	"mime/multipart"
)

type State uint8

const (
	// StateSuccess 上传成功，Result.FileName 是存储里面的 key
	StateSuccess State = iota + 1
	// StateNotExists 请求里面没有文件
	StateNotExists
	// StateError 文件不合法或者保存失败，Result.ErrMsg 是原因
	StateError
)

func (s State) String() string {
	switch s {
	case StateSuccess:
		return "success"
	case StateNotExists:
		return "not_exists"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

type Result struct {
	State    State
	FileName string
	ErrMsg   string
}

//go:generate mockgen -source=./types.go -package=uploadmocks -destination=mocks/upload.mock.go Service
type Service interface {
	// Upload 文件的真实类型必须是 contentType，保存在 folder 下面
	Upload(ctx context.Context, fh *multipart.FileHeader, contentType, folder string) Result
	Delete(ctx context.Context, fileName string) error
	// URL 文件的访问地址
	URL(fileName string) string
}

// Backend 存储后端
type Backend interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
