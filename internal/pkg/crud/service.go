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

package crud

import (
	"context"
)

// service 只是把 Repository 原样暴露出去，错误也不做任何转换
type service[D any] struct {
	repo Repository[D]
}

func NewService[D any](repo Repository[D]) Service[D] {
	return &service[D]{repo: repo}
}

func (s *service[D]) GetAll(ctx context.Context, q Query) ([]D, error) {
	return s.repo.GetAll(ctx, q)
}

func (s *service[D]) Get(ctx context.Context, p Predicate) (D, bool, error) {
	return s.repo.Get(ctx, p)
}

func (s *service[D]) GetByID(ctx context.Context, id int64) (D, bool, error) {
	return s.repo.Get(ctx, Eq("id", id))
}

func (s *service[D]) Insert(ctx context.Context, d D) (int64, error) {
	return s.repo.Insert(ctx, d)
}

func (s *service[D]) Update(ctx context.Context, d D) error {
	return s.repo.Update(ctx, d)
}

func (s *service[D]) Delete(ctx context.Context, d D) error {
	return s.repo.Delete(ctx, d)
}

func (s *service[D]) Count(ctx context.Context, p Predicate) (int64, error) {
	return s.repo.Count(ctx, p)
}
