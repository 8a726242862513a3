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
	"errors"
	"fmt"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	duplicateEntryErrNo  uint16 = 1062
	rowIsReferencedErrNo uint16 = 1451
	noReferencedRowErrNo uint16 = 1452
)

// GORMDAO 基于 GORM 的通用实现。T 必须是带 gorm 标签的结构体，
// 主键列名为 id，时间字段用 autoCreateTime:milli/autoUpdateTime:milli 维护
type GORMDAO[T Entity] struct {
	db *egorm.Component
}

func NewGORMDAO[T Entity](db *egorm.Component) *GORMDAO[T] {
	return &GORMDAO[T]{db: db}
}

func (d *GORMDAO[T]) GetAll(ctx context.Context, q Query) ([]T, error) {
	cls, err := q.clauses()
	if err != nil {
		return nil, err
	}
	var res []T
	err = d.db.WithContext(ctx).Clauses(cls...).Find(&res).Error
	return res, classify(err)
}

func (d *GORMDAO[T]) Get(ctx context.Context, p Predicate) (T, bool, error) {
	var t T
	where, err := whereClause(p)
	if err != nil {
		return t, false, err
	}
	db := d.db.WithContext(ctx)
	if where != nil {
		db = db.Clauses(where)
	}
	// First 会按照主键升序排序
	err = db.First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return t, false, nil
	}
	if err != nil {
		return t, false, classify(err)
	}
	return t, true, nil
}

func (d *GORMDAO[T]) Insert(ctx context.Context, t T) (int64, error) {
	err := d.db.WithContext(ctx).Omit(clause.Associations).Create(&t).Error
	if err != nil {
		return 0, classify(err)
	}
	return t.PrimaryKey(), nil
}

func (d *GORMDAO[T]) Update(ctx context.Context, t T) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old T
		err := tx.Select("id").Where("id = ?", t.PrimaryKey()).First(&old).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		// MySQL 在值没有变化的时候 RowsAffected 为 0，所以不能用它来判断是否存在
		return tx.Model(&t).Select("*").
			Omit("id", "ctime", clause.Associations).
			Updates(&t).Error
	})
	return classify(err)
}

func (d *GORMDAO[T]) Delete(ctx context.Context, t T) error {
	res := d.db.WithContext(ctx).Where("id = ?", t.PrimaryKey()).Delete(new(T))
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *GORMDAO[T]) Count(ctx context.Context, p Predicate) (int64, error) {
	where, err := whereClause(p)
	if err != nil {
		return 0, err
	}
	db := d.db.WithContext(ctx).Model(new(T))
	if where != nil {
		db = db.Clauses(where)
	}
	var cnt int64
	err = db.Count(&cnt).Error
	return cnt, classify(err)
}

// classify 把数据库错误归类，其余的错误原样返回
func classify(err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case duplicateEntryErrNo, rowIsReferencedErrNo, noReferencedRowErrNo:
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		}
	}
	return err
}
