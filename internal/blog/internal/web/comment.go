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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/errs"
	"github.com/ecodeclub/weblog/internal/blog/internal/service"
	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &CommentHandler{}

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// PublicRoutes 游客也可以评论
func (h *CommentHandler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/comment")
	// 查询某一层评论，每条带上直接子评论，按照评论时间升序
	g.POST("/list", ginx.B[ListCommentReq](h.List))
	g.POST("/create", ginx.B[CreateCommentReq](h.Create))
}

func (h *CommentHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/comment")
	g.POST("/update", ginx.BS[UpdateCommentReq](h.Update))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
}

func (h *CommentHandler) List(ctx *ginx.Context, req ListCommentReq) (ginx.Result, error) {
	list, total, err := h.svc.ListWithSubComments(ctx.Request.Context(), req.BlogID, req.ParentID)
	if errors.Is(err, service.ErrCommentNotFound) {
		return errResult(errs.CommentNotFound), nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询博客 %d 下父评论为 %d 的评论失败: %w", req.BlogID, req.ParentID, err)
	}
	return ginx.Result{
		Data: CommentList{
			List:  toCommentVOs(list),
			Total: total,
		},
	}, nil
}

func (h *CommentHandler) Create(ctx *ginx.Context, req CreateCommentReq) (ginx.Result, error) {
	id, err := h.svc.Insert(ctx.Request.Context(), domain.Comment{
		BlogID:      req.BlogID,
		ParentID:    req.ParentID,
		AuthorName:  sanitizeText(req.AuthorName),
		AuthorEmail: sanitizeText(req.AuthorEmail),
		Description: sanitizeText(req.Description),
	})
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrBlogNotFound):
		return errResult(errs.BlogNotFound), nil
	case errors.Is(err, service.ErrInvalidParent):
		return errResult(errs.InvalidParent), nil
	default:
		return systemErrorResult, err
	}
}

func (h *CommentHandler) Update(ctx *ginx.Context, req UpdateCommentReq, _ session.Session) (ginx.Result, error) {
	c := ctx.Request.Context()
	old, ok, err := h.svc.GetByID(c, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return errResult(errs.CommentNotFound), nil
	}
	err = h.svc.Update(c, domain.Comment{
		ID:          old.ID,
		BlogID:      old.BlogID,
		ParentID:    req.ParentID,
		AuthorName:  sanitizeText(req.AuthorName),
		AuthorEmail: sanitizeText(req.AuthorEmail),
		Description: sanitizeText(req.Description),
		PostedTime:  old.PostedTime,
	})
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, crud.ErrNotFound):
		return errResult(errs.CommentNotFound), nil
	case errors.Is(err, service.ErrInvalidParent):
		return errResult(errs.InvalidParent), nil
	case errors.Is(err, service.ErrCommentCycle):
		return errResult(errs.CommentCycle), nil
	default:
		return systemErrorResult, err
	}
}

// Delete 子孙评论由外键级联删除
func (h *CommentHandler) Delete(ctx *ginx.Context, req IDReq, _ session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), domain.Comment{ID: req.ID})
	if errors.Is(err, crud.ErrNotFound) {
		return errResult(errs.CommentNotFound), nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toCommentVOs(cs []domain.Comment) []Comment {
	return slice.Map(cs, func(_ int, src domain.Comment) Comment {
		return toCommentVO(src)
	})
}

func toCommentVO(c domain.Comment) Comment {
	vo := Comment{
		ID:          c.ID,
		BlogID:      c.BlogID,
		ParentID:    c.ParentID,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Description: c.Description,
		PostedTime:  c.PostedTime,
	}
	if c.SubComments != nil {
		vo.SubComments = toCommentVOs(c.SubComments)
	}
	return vo
}
