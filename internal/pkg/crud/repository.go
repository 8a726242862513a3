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

	"github.com/ecodeclub/ekit/slice"
)

type repository[D any, E Entity] struct {
	dao      DAO[E]
	toDomain func(E) D
	toEntity func(D) E
}

// NewRepository 用一对转换函数把 DAO 适配成面向领域对象的 Repository
func NewRepository[D any, E Entity](dao DAO[E], toDomain func(E) D, toEntity func(D) E) Repository[D] {
	return &repository[D, E]{
		dao:      dao,
		toDomain: toDomain,
		toEntity: toEntity,
	}
}

func (r *repository[D, E]) GetAll(ctx context.Context, q Query) ([]D, error) {
	es, err := r.dao.GetAll(ctx, q)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(_ int, src E) D {
		return r.toDomain(src)
	}), nil
}

func (r *repository[D, E]) Get(ctx context.Context, p Predicate) (D, bool, error) {
	e, ok, err := r.dao.Get(ctx, p)
	if err != nil || !ok {
		var d D
		return d, ok, err
	}
	return r.toDomain(e), true, nil
}

func (r *repository[D, E]) Insert(ctx context.Context, d D) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(d))
}

func (r *repository[D, E]) Update(ctx context.Context, d D) error {
	return r.dao.Update(ctx, r.toEntity(d))
}

func (r *repository[D, E]) Delete(ctx context.Context, d D) error {
	return r.dao.Delete(ctx, r.toEntity(d))
}

func (r *repository[D, E]) Count(ctx context.Context, p Predicate) (int64, error) {
	return r.dao.Count(ctx, p)
}
