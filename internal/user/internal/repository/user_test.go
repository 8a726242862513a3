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

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/weblog/internal/pkg/crud"
	crudmocks "github.com/ecodeclub/weblog/internal/pkg/crud/mocks"
	"github.com/ecodeclub/weblog/internal/user/internal/domain"
	"github.com/ecodeclub/weblog/internal/user/internal/repository/cache"
	cachemocks "github.com/ecodeclub/weblog/internal/user/internal/repository/cache/mocks"
	"github.com/ecodeclub/weblog/internal/user/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedUserRepository_FindByID(t *testing.T) {
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache)

		wantUser domain.User
		wantOK   bool
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{ID: 1, UserName: "admin"}, nil)
				return crudmocks.NewMockDAO[dao.User](ctrl), c
			},
			wantUser: domain.User{ID: 1, UserName: "admin"},
			wantOK:   true,
		},
		{
			name: "未命中缓存，回写缓存",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				c := cachemocks.NewMockUserCache(ctrl)
				d := crudmocks.NewMockDAO[dao.User](ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{}, cache.ErrKeyNotExist)
				d.EXPECT().Get(gomock.Any(), crud.Eq("id", int64(1))).
					Return(dao.User{ID: 1, UserName: "admin", Password: "hash"}, true, nil)
				c.EXPECT().Set(gomock.Any(), domain.User{ID: 1, UserName: "admin", PasswordHash: "hash"}).
					Return(errors.New("mock redis error"))
				return d, c
			},
			wantUser: domain.User{ID: 1, UserName: "admin", PasswordHash: "hash"},
			wantOK:   true,
		},
		{
			name: "缓存出错，依旧查询数据库",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				c := cachemocks.NewMockUserCache(ctrl)
				d := crudmocks.NewMockDAO[dao.User](ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{}, errors.New("mock redis error"))
				d.EXPECT().Get(gomock.Any(), crud.Eq("id", int64(1))).
					Return(dao.User{ID: 1, UserName: "admin", Password: "hash"}, true, nil)
				c.EXPECT().Set(gomock.Any(), domain.User{ID: 1, UserName: "admin", PasswordHash: "hash"}).Return(nil)
				return d, c
			},
			wantUser: domain.User{ID: 1, UserName: "admin", PasswordHash: "hash"},
			wantOK:   true,
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				c := cachemocks.NewMockUserCache(ctrl)
				d := crudmocks.NewMockDAO[dao.User](ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{}, cache.ErrKeyNotExist)
				d.EXPECT().Get(gomock.Any(), crud.Eq("id", int64(1))).Return(dao.User{}, false, nil)
				return d, c
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedUserRepository(tc.mock(ctrl))
			u, ok, err := repo.FindByID(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestCachedUserRepository_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockUserCache(ctrl)
	d := crudmocks.NewMockDAO[dao.User](ctrl)
	d.EXPECT().Update(gomock.Any(), dao.User{ID: 1, UserName: "admin", Password: "hash"}).Return(nil)
	c.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	d.EXPECT().Delete(gomock.Any(), dao.User{ID: 2}).Return(crud.ErrNotFound)

	repo := NewCachedUserRepository(d, c)
	err := repo.Update(context.Background(), domain.User{ID: 1, UserName: "admin", PasswordHash: "hash"})
	require.NoError(t, err)
	// 删除失败的时候不需要清理缓存
	err = repo.Delete(context.Background(), domain.User{ID: 2})
	assert.ErrorIs(t, err, crud.ErrNotFound)
}
