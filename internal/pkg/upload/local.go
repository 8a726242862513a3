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
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

var errInvalidKey = errors.New("upload: 非法的文件路径")

// LocalBackend 保存在本地目录，通过 gin 的静态文件服务访问
type LocalBackend struct {
	dir       string
	urlPrefix string
}

func NewLocalBackend(dir, urlPrefix string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if urlPrefix == "" {
		urlPrefix = "/static"
	}
	return &LocalBackend{dir: dir, urlPrefix: "/" + strings.Trim(urlPrefix, "/")}, nil
}

func (b *LocalBackend) Put(ctx context.Context, key string, r io.Reader, _ int64, _ string) error {
	p, err := b.path(key)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.Create(p)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(p)
		return fmt.Errorf("写入文件 %s 失败: %w", key, err)
	}
	return ctx.Err()
}

func (b *LocalBackend) Delete(_ context.Context, key string) error {
	p, err := b.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (b *LocalBackend) URL(key string) string {
	return path.Join(b.urlPrefix, key)
}

// PublicRoutes 本地存储才需要暴露静态文件
func (b *LocalBackend) PublicRoutes(server *gin.Engine) {
	server.Static(b.urlPrefix, b.dir)
}

func (b *LocalBackend) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", errInvalidKey
	}
	return filepath.Join(b.dir, filepath.FromSlash(clean)), nil
}
