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

package blog

import (
	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/service"
	"github.com/ecodeclub/weblog/internal/blog/internal/web"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler
type CategoryHandler = web.CategoryHandler
type CommentHandler = web.CommentHandler

type Blog = domain.Blog
type Category = domain.Category
type Comment = domain.Comment

type BlogService = service.BlogService
type CategoryService = service.CategoryService
type CommentService = service.CommentService

type Module struct {
	Hdl         *Handler
	CategoryHdl *CategoryHandler
	CommentHdl  *CommentHandler
	Svc         BlogService
	CategorySvc CategoryService
	CommentSvc  CommentService
}
