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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/errs"
	"github.com/ecodeclub/weblog/internal/blog/internal/service"
	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/ecodeclub/weblog/internal/pkg/htmlx"
	"github.com/ecodeclub/weblog/internal/pkg/upload"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	imageContentType = "image/jpeg"
	imageFolder      = "blog"
	// 和 short_description 列的长度保持一致
	summaryMaxLen    = 1024
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc       service.BlogService
	uploadSvc upload.Service
	logger    *elog.Component
}

func NewHandler(svc service.BlogService, uploadSvc upload.Service) *Handler {
	return &Handler{
		svc:       svc,
		uploadSvc: uploadSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/blog")
	g.GET("/list", ginx.W(h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/search", ginx.B[SearchReq](h.Search))
	g.POST("/by-category", ginx.B[IDReq](h.ListByCategory))
	g.POST("/categories", ginx.B[IDReq](h.Categories))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/blog")
	g.POST("/create", ginx.BS[SaveBlogReq](h.Create))
	g.POST("/update/:id", ginx.BS[SaveBlogReq](h.Update))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/category/add", ginx.BS[CategoryBlogReq](h.AddToCategory))
	g.POST("/category/remove", ginx.BS[CategoryBlogReq](h.RemoveFromCategory))
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	blogs, err := h.svc.ListSortedByPostedTime(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVOs(blogs)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	blog, ok, err := h.svc.GetByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return errResult(errs.BlogNotFound), nil
	}
	return ginx.Result{Data: h.toVO(blog)}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	blogs, err := h.svc.Search(ctx.Request.Context(), req.Keyword)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVOs(blogs)}, nil
}

func (h *Handler) ListByCategory(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	blogs, err := h.svc.ListByCategory(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toVOs(blogs)}, nil
}

func (h *Handler) Categories(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	cates, err := h.svc.Categories(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: slice.Map(cates, func(_ int, src domain.Category) Category {
		return toCategoryVO(src)
	})}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req SaveBlogReq, sess session.Session) (ginx.Result, error) {
	c := ctx.Request.Context()
	res := h.uploadSvc.Upload(c, req.Image, imageContentType, imageFolder)
	if res.State == upload.StateError {
		return errResult(errs.NewUploadErr(res.ErrMsg)), nil
	}
	blog := h.toDomain(req)
	blog.ID = 0
	blog.ImagePath = res.FileName
	blog.AppUserID = sess.Claims().Uid
	blog.PostedTime = time.Now().UnixMilli()
	id, err := h.svc.Insert(c, blog)
	if err != nil {
		h.deleteImage(ctx, res.FileName)
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveBlogReq, _ session.Session) (ginx.Result, error) {
	id, err := ctx.Param("id").AsInt64()
	if err != nil || id != req.ID {
		return errResult(errs.IDMismatch), nil
	}
	c := ctx.Request.Context()
	old, ok, err := h.svc.GetByID(c, id)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return errResult(errs.BlogNotFound), nil
	}
	res := h.uploadSvc.Upload(c, req.Image, imageContentType, imageFolder)
	blog := h.toDomain(req)
	// 发布时间和作者不随更新改变
	blog.PostedTime = old.PostedTime
	blog.AppUserID = old.AppUserID
	switch res.State {
	case upload.StateError:
		return errResult(errs.NewUploadErr(res.ErrMsg)), nil
	case upload.StateNotExists:
		blog.ImagePath = old.ImagePath
	default:
		blog.ImagePath = res.FileName
	}
	err = h.svc.Update(c, blog)
	if errors.Is(err, crud.ErrNotFound) {
		h.deleteImage(ctx, res.FileName)
		return errResult(errs.BlogNotFound), nil
	}
	if err != nil {
		h.deleteImage(ctx, res.FileName)
		return systemErrorResult, err
	}
	if res.State == upload.StateSuccess {
		h.deleteImage(ctx, old.ImagePath)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IDReq, _ session.Session) (ginx.Result, error) {
	c := ctx.Request.Context()
	old, ok, err := h.svc.GetByID(c, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return errResult(errs.BlogNotFound), nil
	}
	err = h.svc.Delete(c, old)
	if errors.Is(err, crud.ErrNotFound) {
		return errResult(errs.BlogNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	h.deleteImage(ctx, old.ImagePath)
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) AddToCategory(ctx *ginx.Context, req CategoryBlogReq, _ session.Session) (ginx.Result, error) {
	id, err := h.svc.AddToCategory(ctx.Request.Context(), domain.CategoryBlog{
		CategoryID: req.CategoryID,
		BlogID:     req.BlogID,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrBlogNotFound):
		return errResult(errs.BlogNotFound), nil
	case errors.Is(err, service.ErrCategoryNotFound):
		return errResult(errs.CategoryNotFound), nil
	case errors.Is(err, crud.ErrConstraintViolation):
		return errResult(errs.AlreadyInCategory), nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) RemoveFromCategory(ctx *ginx.Context, req CategoryBlogReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.RemoveFromCategory(ctx.Request.Context(), domain.CategoryBlog{
		CategoryID: req.CategoryID,
		BlogID:     req.BlogID,
	})
	if errors.Is(err, crud.ErrNotFound) {
		return errResult(errs.NotInCategory), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// deleteImage 图片删除失败不影响主流程，只记录日志
func (h *Handler) deleteImage(ctx *ginx.Context, fileName string) {
	if fileName == "" {
		return
	}
	if err := h.uploadSvc.Delete(ctx.Request.Context(), fileName); err != nil {
		h.logger.Error("删除博客图片失败", elog.FieldErr(err), elog.String("file", fileName))
	}
}

func (h *Handler) toDomain(req SaveBlogReq) domain.Blog {
	content := sanitizeContent(req.Content)
	desc := sanitizeText(req.ShortDescription)
	if desc == "" {
		// 没有填写简介的时候用正文的第一段
		desc = htmlx.Summary(content, summaryMaxLen)
	}
	return domain.Blog{
		ID:               req.ID,
		Title:            sanitizeText(req.Title),
		ShortDescription: desc,
		Content:          content,
	}
}

func (h *Handler) toVOs(blogs []domain.Blog) []Blog {
	return slice.Map(blogs, func(_ int, src domain.Blog) Blog {
		return h.toVO(src)
	})
}

func (h *Handler) toVO(b domain.Blog) Blog {
	return Blog{
		ID:               b.ID,
		Title:            b.Title,
		ShortDescription: b.ShortDescription,
		Content:          b.Content,
		ImagePath:        b.ImagePath,
		ImageURL:         h.uploadSvc.URL(b.ImagePath),
		PostedTime:       b.PostedTime,
		AppUserID:        b.AppUserID,
		Utime:            b.Utime,
	}
}

func toCategoryVO(c domain.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		BlogCount: c.BlogCount,
	}
}
