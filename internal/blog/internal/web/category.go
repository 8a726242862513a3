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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/errs"
	"github.com/ecodeclub/weblog/internal/blog/internal/service"
	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &CategoryHandler{}

type CategoryHandler struct {
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/category")
	g.GET("/list", ginx.W(h.List))
	g.GET("/counts", ginx.W(h.ListWithBlogCount))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
}

func (h *CategoryHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/category")
	g.POST("/create", ginx.BS[CategoryReq](h.Create))
	g.POST("/update", ginx.BS[CategoryReq](h.Update))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
}

func (h *CategoryHandler) List(ctx *ginx.Context) (ginx.Result, error) {
	cates, err := h.svc.GetAll(ctx.Request.Context(), crud.Query{}.OrderBy("id"))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCategoryVOs(cates)}, nil
}

func (h *CategoryHandler) ListWithBlogCount(ctx *ginx.Context) (ginx.Result, error) {
	cates, err := h.svc.ListWithBlogCount(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toCategoryVOs(cates)}, nil
}

func (h *CategoryHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	cate, ok, err := h.svc.GetByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return errResult(errs.CategoryNotFound), nil
	}
	return ginx.Result{Data: toCategoryVO(cate)}, nil
}

func (h *CategoryHandler) Create(ctx *ginx.Context, req CategoryReq, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.Insert(ctx.Request.Context(), domain.Category{Name: sanitizeText(req.Name)})
	if errors.Is(err, crud.ErrConstraintViolation) {
		return errResult(errs.CategoryDuplicate), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *CategoryHandler) Update(ctx *ginx.Context, req CategoryReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx.Request.Context(), domain.Category{ID: req.ID, Name: sanitizeText(req.Name)})
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, crud.ErrNotFound):
		return errResult(errs.CategoryNotFound), nil
	case errors.Is(err, crud.ErrConstraintViolation):
		return errResult(errs.CategoryDuplicate), nil
	default:
		return systemErrorResult, err
	}
}

func (h *CategoryHandler) Delete(ctx *ginx.Context, req IDReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), domain.Category{ID: req.ID})
	if errors.Is(err, crud.ErrNotFound) {
		return errResult(errs.CategoryNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toCategoryVOs(cates []domain.Category) []Category {
	return slice.Map(cates, func(_ int, src domain.Category) Category {
		return toCategoryVO(src)
	})
}
