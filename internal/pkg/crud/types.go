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

// Package crud 提供所有实体共用的增删改查契约。
// DAO 面向表结构，Repository 负责实体和领域对象之间的转换，Service 是 Repository 的直通封装，
// 各个业务模块的 Service 都在它的基础上扩展。
package crud

import (
	"context"
	"errors"
)

var (
	// ErrNotFound 更新或者删除一个不存在的 ID
	ErrNotFound = errors.New("crud: 数据不存在")
	// ErrConstraintViolation 唯一索引冲突或者外键约束失败，会 wrap 原始的数据库错误
	ErrConstraintViolation = errors.New("crud: 违反数据约束")
	// ErrCanceled 请求的 context 被取消或者超时
	ErrCanceled = errors.New("crud: 请求被取消")
)

// Entity 所有持久化对象都有一个由数据库分配的 int64 主键
type Entity interface {
	PrimaryKey() int64
}

//go:generate mockgen -source=./types.go -package=crudmocks -destination=mocks/crud.mock.go DAO Repository Service
type DAO[T Entity] interface {
	// GetAll 不带条件的 Query 返回全部数据
	GetAll(ctx context.Context, q Query) ([]T, error)
	// Get 没有数据的时候返回 false 而不是 error。
	// 命中多条的时候按照主键升序取第一条
	Get(ctx context.Context, p Predicate) (T, bool, error)
	// Insert 返回数据库分配的 ID
	Insert(ctx context.Context, t T) (int64, error)
	// Update 全量覆盖，除了 id 和 ctime 的所有列都会被写入
	Update(ctx context.Context, t T) error
	Delete(ctx context.Context, t T) error
	Count(ctx context.Context, p Predicate) (int64, error)
}

type Repository[D any] interface {
	GetAll(ctx context.Context, q Query) ([]D, error)
	Get(ctx context.Context, p Predicate) (D, bool, error)
	Insert(ctx context.Context, d D) (int64, error)
	Update(ctx context.Context, d D) error
	Delete(ctx context.Context, d D) error
	Count(ctx context.Context, p Predicate) (int64, error)
}

type Service[D any] interface {
	Repository[D]
	GetByID(ctx context.Context, id int64) (D, bool, error)
}
