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
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"gorm.io/gorm/clause"
)

var columnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Predicate 查询条件。调用方只能通过下面的构造函数组合条件，
// 列名都会经过校验，所以不会拼出任意的 SQL
type Predicate interface {
	Expr() (clause.Expression, error)
}

type eq struct {
	col string
	val any
}

// Eq val 为 nil 的时候等价于 IsNull
func Eq(col string, val any) Predicate {
	return eq{col: col, val: val}
}

// IsNull col IS NULL
func IsNull(col string) Predicate {
	return eq{col: col}
}

func (e eq) Expr() (clause.Expression, error) {
	c, err := column(e.col)
	if err != nil {
		return nil, err
	}
	return clause.Eq{Column: c, Value: e.val}, nil
}

type neq struct {
	col string
	val any
}

func Ne(col string, val any) Predicate {
	return neq{col: col, val: val}
}

// NotNull col IS NOT NULL
func NotNull(col string) Predicate {
	return neq{col: col}
}

func (n neq) Expr() (clause.Expression, error) {
	c, err := column(n.col)
	if err != nil {
		return nil, err
	}
	return clause.Neq{Column: c, Value: n.val}, nil
}

type in struct {
	col  string
	vals []any
}

// In 空集合不会命中任何数据
func In[T any](col string, vals ...T) Predicate {
	return in{col: col, vals: slice.Map(vals, func(_ int, src T) any {
		return src
	})}
}

func (i in) Expr() (clause.Expression, error) {
	c, err := column(i.col)
	if err != nil {
		return nil, err
	}
	return clause.IN{Column: c, Values: i.vals}, nil
}

type contains struct {
	col string
	kw  string
}

// Contains LIKE %kw%，kw 里面的通配符会被转义。
// 是否区分大小写取决于列的 collation，默认的 utf8mb4_general_ci 是不区分的
func Contains(col string, kw string) Predicate {
	return contains{col: col, kw: kw}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (c contains) Expr() (clause.Expression, error) {
	col, err := column(c.col)
	if err != nil {
		return nil, err
	}
	return clause.Like{Column: col, Value: "%" + likeEscaper.Replace(c.kw) + "%"}, nil
}

type junction struct {
	or    bool
	preds []Predicate
}

func And(ps ...Predicate) Predicate {
	return junction{preds: ps}
}

func Or(ps ...Predicate) Predicate {
	return junction{or: true, preds: ps}
}

func (j junction) Expr() (clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(j.preds))
	for _, p := range j.preds {
		if p == nil {
			continue
		}
		e, err := p.Expr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	if len(exprs) == 0 {
		return nil, nil
	}
	if j.or {
		return clause.Or(exprs...), nil
	}
	return clause.And(exprs...), nil
}

func column(name string) (clause.Column, error) {
	if !columnPattern.MatchString(name) {
		return clause.Column{}, fmt.Errorf("crud: 非法的列名 %q", name)
	}
	return clause.Column{Name: name}, nil
}

type order struct {
	col  string
	desc bool
}

// Query 条件、排序和数量限制。零值代表查询全部数据，不排序
type Query struct {
	where  Predicate
	orders []order
	limit  int
}

// Where 多个条件之间是 AND 的关系
func Where(ps ...Predicate) Query {
	if len(ps) == 1 {
		return Query{where: ps[0]}
	}
	return Query{where: And(ps...)}
}

func (q Query) OrderBy(col string) Query {
	q.orders = append(slices.Clone(q.orders), order{col: col})
	return q
}

func (q Query) OrderByDesc(col string) Query {
	q.orders = append(slices.Clone(q.orders), order{col: col, desc: true})
	return q
}

// Limit 小于等于 0 代表不限制
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

func (q Query) clauses() ([]clause.Expression, error) {
	res := make([]clause.Expression, 0, 3)
	where, err := whereClause(q.where)
	if err != nil {
		return nil, err
	}
	if where != nil {
		res = append(res, where)
	}
	if len(q.orders) > 0 {
		ob := clause.OrderBy{Columns: make([]clause.OrderByColumn, 0, len(q.orders))}
		for _, o := range q.orders {
			c, err := column(o.col)
			if err != nil {
				return nil, err
			}
			ob.Columns = append(ob.Columns, clause.OrderByColumn{Column: c, Desc: o.desc})
		}
		res = append(res, ob)
	}
	if q.limit > 0 {
		limit := q.limit
		res = append(res, clause.Limit{Limit: &limit})
	}
	return res, nil
}

func whereClause(p Predicate) (clause.Expression, error) {
	if p == nil {
		return nil, nil
	}
	e, err := p.Expr()
	if err != nil || e == nil {
		return nil, err
	}
	return clause.Where{Exprs: []clause.Expression{e}}, nil
}
