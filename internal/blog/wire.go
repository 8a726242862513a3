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

//go:build wireinject

package blog

import (
	"sync"

	"github.com/ecodeclub/weblog/internal/blog/internal/repository"
	"github.com/ecodeclub/weblog/internal/blog/internal/repository/dao"
	"github.com/ecodeclub/weblog/internal/blog/internal/service"
	"github.com/ecodeclub/weblog/internal/blog/internal/web"
	"github.com/ecodeclub/weblog/internal/pkg/upload"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	dao.NewCategoryDAO,
	dao.NewCategoryBlogDAO,
	dao.NewCommentDAO,
	repository.NewBlogRepository,
	repository.NewCategoryRepository,
	repository.NewCategoryBlogRepository,
	repository.NewCommentRepository,
	service.NewBlogService,
	service.NewCategoryService,
	service.NewCommentService,
	web.NewHandler,
	web.NewCategoryHandler,
	web.NewCommentHandler,
)

func InitModule(db *egorm.Component, uploadSvc upload.Service) *Module {
	wire.Build(
		ModuleSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.BlogDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewBlogDAO(db)
}
