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
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/weblog/internal/user/internal/domain"
	"github.com/ecodeclub/weblog/internal/user/internal/errs"
	"github.com/ecodeclub/weblog/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/login", ginx.B[LoginReq](h.Login))
	// 刷新的时候 access token 可能已经过期了，所以不能放在登录校验后面
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, ok, err := h.svc.CheckCredentials(ctx.Request.Context(), req.UserName, req.Password)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return ginx.Result{
			Code: errs.InvalidCredentials.Code,
			Msg:  errs.InvalidCredentials.Msg,
		}, nil
	}
	_, err = session.NewSessionBuilder(ctx, u.ID).
		SetJwtData(map[string]string{
			"userName": u.UserName,
			"uid":      strconv.FormatInt(u.ID, 10),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: toProfile(u)}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, ok, err := h.svc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	if !ok {
		return ginx.Result{
			Code: errs.UserNotFound.Code,
			Msg:  errs.UserNotFound.Msg,
		}, nil
	}
	return ginx.Result{Data: toProfile(u)}, nil
}

func toProfile(u domain.User) Profile {
	return Profile{
		ID:       u.ID,
		UserName: u.UserName,
		Name:     u.Name,
		Email:    u.Email,
	}
}
