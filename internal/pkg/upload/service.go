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

package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

// DefaultMaxSize 5M
const DefaultMaxSize int64 = 5 << 20

type service struct {
	backend Backend
	maxSize int64
	logger  *elog.Component
}

func NewService(backend Backend, maxSize int64) Service {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &service{
		backend: backend,
		maxSize: maxSize,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) Upload(ctx context.Context, fh *multipart.FileHeader, contentType, folder string) Result {
	if fh == nil {
		return Result{State: StateNotExists}
	}
	if fh.Size > s.maxSize {
		return Result{State: StateError, ErrMsg: fmt.Sprintf("文件大小不能超过 %d 字节", s.maxSize)}
	}
	f, err := fh.Open()
	if err != nil {
		s.logger.Error("打开上传文件失败", elog.FieldErr(err), elog.String("filename", fh.Filename))
		return Result{State: StateError, ErrMsg: "无法读取上传的文件"}
	}
	defer f.Close()

	// 不信任客户端声明的类型，按照文件内容判断
	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return Result{State: StateError, ErrMsg: "无法识别文件类型"}
	}
	if !mtype.Is(contentType) {
		return Result{State: StateError, ErrMsg: fmt.Sprintf("文件类型必须是 %s", contentType)}
	}
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return Result{State: StateError, ErrMsg: "无法读取上传的文件"}
	}

	key := path.Join(folder, shortuuid.New()+mtype.Extension())
	if err = s.backend.Put(ctx, key, f, fh.Size, mtype.String()); err != nil {
		s.logger.Error("保存上传文件失败", elog.FieldErr(err), elog.String("key", key))
		return Result{State: StateError, ErrMsg: "保存文件失败"}
	}
	return Result{State: StateSuccess, FileName: key}
}

func (s *service) Delete(ctx context.Context, fileName string) error {
	if fileName == "" {
		return nil
	}
	return s.backend.Delete(ctx, fileName)
}

func (s *service) URL(fileName string) string {
	if fileName == "" {
		return ""
	}
	return s.backend.URL(fileName)
}
