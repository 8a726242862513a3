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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/weblog/internal/test"
	"github.com/ecodeclub/weblog/internal/user/internal/domain"
	"github.com/ecodeclub/weblog/internal/user/internal/errs"
	svcmocks "github.com/ecodeclub/weblog/internal/user/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Login(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *svcmocks.MockUserService
		wantCode int
		wantResp test.Result[Profile]
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) *svcmocks.MockUserService {
				svc := svcmocks.NewMockUserService(ctrl)
				svc.EXPECT().CheckCredentials(gomock.Any(), "admin", "123456").
					Return(domain.User{ID: 1, UserName: "admin", Name: "管理员", PasswordHash: "hash"}, true, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{
				Data: Profile{ID: 1, UserName: "admin", Name: "管理员"},
			},
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) *svcmocks.MockUserService {
				svc := svcmocks.NewMockUserService(ctrl)
				svc.EXPECT().CheckCredentials(gomock.Any(), "admin", "123456").
					Return(domain.User{}, false, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[Profile]{
				Code: errs.InvalidCredentials.Code,
				Msg:  errs.InvalidCredentials.Msg,
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) *svcmocks.MockUserService {
				svc := svcmocks.NewMockUserService(ctrl)
				svc.EXPECT().CheckCredentials(gomock.Any(), "admin", "123456").
					Return(domain.User{}, false, errors.New("mock db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[Profile]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gin.SetMode(gin.TestMode)
			server := gin.New()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/users/login",
				iox.NewJSONReader(LoginReq{UserName: "admin", Password: "123456"}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Profile]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Profile(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *svcmocks.MockUserService
		wantResp test.Result[Profile]
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) *svcmocks.MockUserService {
				svc := svcmocks.NewMockUserService(ctrl)
				svc.EXPECT().Profile(gomock.Any(), int64(1)).
					Return(domain.User{ID: 1, UserName: "admin", Email: "admin@example.com"}, true, nil)
				return svc
			},
			wantResp: test.Result[Profile]{
				Data: Profile{ID: 1, UserName: "admin", Email: "admin@example.com"},
			},
		},
		{
			name: "用户已经被删除",
			mock: func(ctrl *gomock.Controller) *svcmocks.MockUserService {
				svc := svcmocks.NewMockUserService(ctrl)
				svc.EXPECT().Profile(gomock.Any(), int64(1)).Return(domain.User{}, false, nil)
				return svc
			},
			wantResp: test.Result[Profile]{
				Code: errs.UserNotFound.Code,
				Msg:  errs.UserNotFound.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gin.SetMode(gin.TestMode)
			server := gin.New()
			server.Use(test.InjectSession(1))
			NewHandler(tc.mock(ctrl)).PrivateRoutes(server)
			req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Profile]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_RefreshAccessToken(t *testing.T) {
	testCases := []struct {
		name     string
		loggedIn bool
		wantCode int
		wantResp test.Result[any]
	}{
		{
			name:     "刷新成功",
			loggedIn: true,
			wantCode: http.StatusOK,
			wantResp: test.Result[any]{Msg: "OK"},
		},
		{
			name:     "没有登录",
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[any]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gin.SetMode(gin.TestMode)
			server := gin.New()
			if tc.loggedIn {
				server.Use(test.InjectSession(1))
			}
			NewHandler(svcmocks.NewMockUserService(ctrl)).PublicRoutes(server)
			req, err := http.NewRequest(http.MethodPost, "/users/token/refresh", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
