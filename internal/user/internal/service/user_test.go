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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/ecodeclub/weblog/internal/user/internal/domain"
	repomocks "github.com/ecodeclub/weblog/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var errMockDB = errors.New("mock db error")

func hashOf(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestUserService_CheckCredentials(t *testing.T) {
	hash := hashOf(t, "123456")
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) *repomocks.MockUserRepository
		password string

		wantUser domain.User
		wantOK   bool
		wantErr  error
	}{
		{
			name: "密码正确",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{ID: 1, UserName: "admin", PasswordHash: hash}, true, nil)
				return repo
			},
			password: "123456",
			wantUser: domain.User{ID: 1, UserName: "admin", PasswordHash: hash},
			wantOK:   true,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{ID: 1, UserName: "admin", PasswordHash: hash}, true, nil)
				return repo
			},
			password: "654321",
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{}, false, nil)
				return repo
			},
			password: "123456",
		},
		{
			name: "明文密码不能通过校验",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{ID: 1, UserName: "admin", PasswordHash: "123456"}, true, nil)
				return repo
			},
			password: "123456",
			wantErr:  bcrypt.ErrHashTooShort,
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{}, false, errMockDB)
				return repo
			},
			password: "123456",
			wantErr:  errMockDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newUserService(tc.mock(ctrl), bcrypt.MinCost)
			u, ok, err := svc.CheckCredentials(context.Background(), "admin", tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
			assert.Empty(t, u.Password)
			assert.NotEqual(t, "123456", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("123456")))
			return 1, nil
		})
	svc := newUserService(repo, bcrypt.MinCost)
	id, err := svc.Insert(context.Background(), domain.User{UserName: "admin", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = svc.Register(context.Background(), domain.User{UserName: "admin"})
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestUserService_Update(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockUserRepository
		user    domain.User
		wantErr error
	}{
		{
			name: "不修改密码",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("id", int64(1))).
					Return(domain.User{ID: 1, UserName: "admin", PasswordHash: "old-hash"}, true, nil)
				repo.EXPECT().Update(gomock.Any(), domain.User{
					ID:           1,
					UserName:     "admin",
					Name:         "管理员",
					PasswordHash: "old-hash",
				}).Return(nil)
				return repo
			},
			user: domain.User{ID: 1, UserName: "admin", Name: "管理员"},
		},
		{
			name: "修改密码",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u domain.User) error {
						assert.Empty(t, u.Password)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("new")))
						return nil
					})
				return repo
			},
			user: domain.User{ID: 1, UserName: "admin", Password: "new"},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("id", int64(1))).
					Return(domain.User{}, false, nil)
				return repo
			},
			user:    domain.User{ID: 1, UserName: "admin"},
			wantErr: crud.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newUserService(tc.mock(ctrl), bcrypt.MinCost)
			err := svc.Update(context.Background(), tc.user)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	admin := domain.User{UserName: "admin", Name: "管理员", Password: "123456"}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockUserRepository
		admin   domain.User
		wantErr error
	}{
		{
			name: "没有配置管理员",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
		},
		{
			name: "管理员已经存在",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{ID: 1, UserName: "admin"}, true, nil)
				return repo
			},
			admin: admin,
		},
		{
			name: "创建管理员",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{}, false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				return repo
			},
			admin: admin,
		},
		{
			name: "其它实例已经创建",
			mock: func(ctrl *gomock.Controller) *repomocks.MockUserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Get(gomock.Any(), crud.Eq("user_name", "admin")).
					Return(domain.User{}, false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), crud.ErrConstraintViolation)
				return repo
			},
			admin: admin,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := newUserService(tc.mock(ctrl), bcrypt.MinCost)
			err := svc.EnsureAdmin(context.Background(), tc.admin)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
