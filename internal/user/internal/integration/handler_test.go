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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/weblog/internal/test"
	"github.com/ecodeclub/weblog/internal/user"
	"github.com/ecodeclub/weblog/internal/user/internal/errs"
	"github.com/ecodeclub/weblog/internal/user/internal/integration/startup"
	"github.com/ecodeclub/weblog/internal/user/internal/repository/dao"
	"github.com/ecodeclub/weblog/internal/user/internal/web"
	testioc "github.com/ecodeclub/weblog/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	db     *egorm.Component
	server *egin.Component
	module *user.Module
}

func (s *HandlerTestSuite) SetupSuite() {
	s.module = startup.InitModule()
	s.db = testioc.InitDB()
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	s.module.Hdl.PublicRoutes(server.Engine)
	server.Use(test.InjectSession(1))
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `app_users`").Error
	require.NoError(s.T(), err)
	_, err = testioc.InitCache().Delete(context.Background(), "user:info:1")
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestLogin() {
	err := s.module.Svc.EnsureAdmin(context.Background(), user.User{
		UserName: "admin",
		Name:     "管理员",
		Password: "123456",
	})
	require.NoError(s.T(), err)
	// 重复调用不会报错
	err = s.module.Svc.EnsureAdmin(context.Background(), user.User{UserName: "admin", Password: "654321"})
	require.NoError(s.T(), err)

	var entity dao.User
	require.NoError(s.T(), s.db.Where("user_name = ?", "admin").First(&entity).Error)
	assert.NotEqual(s.T(), "123456", entity.Password)

	testCases := []struct {
		name     string
		req      web.LoginReq
		wantResp test.Result[web.Profile]
	}{
		{
			name: "登录成功",
			req:  web.LoginReq{UserName: "admin", Password: "123456"},
			wantResp: test.Result[web.Profile]{
				Data: web.Profile{ID: entity.ID, UserName: "admin", Name: "管理员"},
			},
		},
		{
			name: "密码错误",
			req:  web.LoginReq{UserName: "admin", Password: "654321"},
			wantResp: test.Result[web.Profile]{
				Code: errs.InvalidCredentials.Code,
				Msg:  errs.InvalidCredentials.Msg,
			},
		},
		{
			name: "用户不存在",
			req:  web.LoginReq{UserName: "nobody", Password: "123456"},
			wantResp: test.Result[web.Profile]{
				Code: errs.InvalidCredentials.Code,
				Msg:  errs.InvalidCredentials.Msg,
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/users/login", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *HandlerTestSuite) TestProfile() {
	_, err := s.module.Svc.Register(context.Background(), user.User{
		UserName: "tom",
		Email:    "tom@example.com",
		Password: "123456",
	})
	require.NoError(s.T(), err)

	for i := 0; i < 2; i++ {
		// 第二次从缓存里面读取
		req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
		require.NoError(s.T(), err)
		recorder := test.NewJSONResponseRecorder[web.Profile]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), http.StatusOK, recorder.Code)
		assert.Equal(s.T(), test.Result[web.Profile]{
			Data: web.Profile{ID: 1, UserName: "tom", Email: "tom@example.com"},
		}, recorder.MustScan())
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
