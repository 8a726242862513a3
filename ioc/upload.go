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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/weblog/internal/pkg/upload"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
)

// UploadModule Local 只有在使用本地存储的时候才不为 nil
type UploadModule struct {
	Svc   upload.Service
	Local *upload.LocalBackend
}

// PublicRoutes 本地存储需要由我们自己提供静态文件服务
func (m *UploadModule) PublicRoutes(server *gin.Engine) {
	if m.Local != nil {
		m.Local.PublicRoutes(server)
	}
}

func InitUploadModule() *UploadModule {
	type Config struct {
		// local 或者 s3
		Backend string `yaml:"backend"`
		MaxSize int64  `yaml:"maxSize"`
		Local   struct {
			Dir       string `yaml:"dir"`
			URLPrefix string `yaml:"urlPrefix"`
		} `yaml:"local"`
		S3 upload.S3Config `yaml:"s3"`
	}
	cfg := Config{Backend: "local", MaxSize: upload.DefaultMaxSize}
	err := econf.UnmarshalKey("upload", &cfg)
	if err != nil {
		panic(fmt.Errorf("读取 upload 配置失败 %w", err))
	}
	switch cfg.Backend {
	case "s3":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		backend, err := upload.NewS3Backend(ctx, cfg.S3)
		if err != nil {
			panic(err)
		}
		return &UploadModule{Svc: upload.NewService(backend, cfg.MaxSize)}
	case "local", "":
		if cfg.Local.Dir == "" {
			cfg.Local.Dir = "uploads"
		}
		backend, err := upload.NewLocalBackend(cfg.Local.Dir, cfg.Local.URLPrefix)
		if err != nil {
			panic(err)
		}
		return &UploadModule{Svc: upload.NewService(backend, cfg.MaxSize), Local: backend}
	default:
		panic(fmt.Errorf("未知的存储类型 %s", cfg.Backend))
	}
}

func InitUploadService(m *UploadModule) upload.Service {
	return m.Svc
}
