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

	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/ecodeclub/weblog/internal/user/internal/domain"
	"github.com/ecodeclub/weblog/internal/user/internal/repository/cache"
	"github.com/ecodeclub/weblog/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	crud.Repository[domain.User]
	// FindByID 优先查询缓存，缓存里面的数据没有密码
	FindByID(ctx context.Context, id int64) (domain.User, bool, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	crud.Repository[domain.User]
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		Repository: crud.NewRepository[domain.User, dao.User](d, toDomain, toEntity),
		cache:      c,
		logger:     elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.Repository.Update(ctx, u)
	if err != nil {
		return err
	}
	ur.evict(ctx, u.ID)
	return nil
}

func (ur *CachedUserRepository) Delete(ctx context.Context, u domain.User) error {
	err := ur.Repository.Delete(ctx, u)
	if err != nil {
		return err
	}
	ur.evict(ctx, u.ID)
	return nil
}

func (ur *CachedUserRepository) FindByID(ctx context.Context, id int64) (domain.User, bool, error) {
	u, err := ur.cache.Get(ctx, id)
	switch {
	case err == nil:
		return u, true, nil
	case !errors.Is(err, cache.ErrKeyNotExist):
		// 缓存出问题了，依旧查询数据库
		ur.logger.Error("查询用户缓存失败", elog.FieldErr(err), elog.Int64("uid", id))
	}
	u, ok, err := ur.Repository.Get(ctx, crud.Eq("id", id))
	if err != nil || !ok {
		return domain.User{}, ok, err
	}
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, true, nil
}

func (ur *CachedUserRepository) evict(ctx context.Context, id int64) {
	if err := ur.cache.Delete(ctx, id); err != nil {
		ur.logger.Error("删除用户缓存失败", elog.FieldErr(err), elog.Int64("uid", id))
	}
}

func toEntity(u domain.User) dao.User {
	return dao.User{
		ID:       u.ID,
		UserName: u.UserName,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.PasswordHash,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}

func toDomain(u dao.User) domain.User {
	return domain.User{
		ID:           u.ID,
		UserName:     u.UserName,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		Ctime:        u.Ctime,
		Utime:        u.Utime,
	}
}
