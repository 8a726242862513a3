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
	"fmt"
	"sync"

	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/ecodeclub/weblog/internal/user/internal/domain"
	"github.com/ecodeclub/weblog/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("密码不能为空")

// 用户不存在的时候也做一次比较，避免通过响应时间判断用户名是否存在
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("weblog-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// crud.Service 的 Insert 和 Update 会对 Password 做 bcrypt
	crud.Service[domain.User]
	// Register 等价于 Insert，Password 必须非空
	Register(ctx context.Context, u domain.User) (int64, error)
	FindByName(ctx context.Context, userName string) (domain.User, bool, error)
	// CheckCredentials 用户不存在或者密码错误都返回 false，不返回 error
	CheckCredentials(ctx context.Context, userName, password string) (domain.User, bool, error)
	Profile(ctx context.Context, id int64) (domain.User, bool, error)
	// EnsureAdmin 管理员不存在的时候创建
	EnsureAdmin(ctx context.Context, admin domain.User) error
}

type userService struct {
	crud.Service[domain.User]
	repo   repository.UserRepository
	cost   int
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return newUserService(repo, bcrypt.DefaultCost)
}

func newUserService(repo repository.UserRepository, cost int) *userService {
	return &userService{
		Service: crud.NewService[domain.User](repo),
		repo:    repo,
		cost:    cost,
		logger:  elog.DefaultLogger,
	}
}

func (svc *userService) Insert(ctx context.Context, u domain.User) (int64, error) {
	return svc.Register(ctx, u)
}

func (svc *userService) Register(ctx context.Context, u domain.User) (int64, error) {
	if u.Password == "" {
		return 0, ErrEmptyPassword
	}
	if err := svc.hash(&u); err != nil {
		return 0, err
	}
	return svc.repo.Insert(ctx, u)
}

// Update Password 为空的时候保留原来的密码
func (svc *userService) Update(ctx context.Context, u domain.User) error {
	if u.Password != "" {
		if err := svc.hash(&u); err != nil {
			return err
		}
		return svc.repo.Update(ctx, u)
	}
	old, ok, err := svc.repo.Get(ctx, crud.Eq("id", u.ID))
	if err != nil {
		return err
	}
	if !ok {
		return crud.ErrNotFound
	}
	u.PasswordHash = old.PasswordHash
	return svc.repo.Update(ctx, u)
}

func (svc *userService) FindByName(ctx context.Context, userName string) (domain.User, bool, error) {
	return svc.repo.Get(ctx, crud.Eq("user_name", userName))
}

func (svc *userService) CheckCredentials(ctx context.Context, userName, password string) (domain.User, bool, error) {
	u, ok, err := svc.FindByName(ctx, userName)
	if err != nil {
		return domain.User{}, false, err
	}
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return domain.User{}, false, nil
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	switch {
	case err == nil:
		return u, true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return domain.User{}, false, nil
	default:
		return domain.User{}, false, fmt.Errorf("校验用户 %s 的密码失败: %w", userName, err)
	}
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, bool, error) {
	return svc.repo.FindByID(ctx, id)
}

func (svc *userService) EnsureAdmin(ctx context.Context, admin domain.User) error {
	if admin.UserName == "" {
		return nil
	}
	_, ok, err := svc.FindByName(ctx, admin.UserName)
	if err != nil || ok {
		return err
	}
	_, err = svc.Register(ctx, admin)
	// 多个实例同时启动
	if errors.Is(err, crud.ErrConstraintViolation) {
		return nil
	}
	if err == nil {
		svc.logger.Info("初始化管理员账号", elog.String("userName", admin.UserName))
	}
	return err
}

func (svc *userService) hash(u *domain.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), svc.cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Password = ""
	return nil
}
