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

package test

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "_session"

var errNoSession = errors.New("未登录")

var _ session.Provider = &SessionProvider{}

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 测试用，直接从上下文里面取 InjectSession 设置的 session
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(sessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(sessionKey)
	if !ok {
		return nil, errNoSession
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	delete(ctx.Keys, sessionKey)
	return nil
}

// UpdateClaims 直接用新的 claims 替换掉当前的 session
func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	if _, err := s.Get(ctx); err != nil {
		return err
	}
	ctx.Set(sessionKey, session.NewMemorySession(claims))
	return nil
}

// RenewAccessToken 测试里面没有 token，只要登录了就认为刷新成功
func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	_, err := s.Get(ctx)
	return err
}

// InjectSession 模拟已经登录的用户
func InjectSession(uid int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(sessionKey, session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"uid": strconv.FormatInt(uid, 10)},
		}))
	}
}
