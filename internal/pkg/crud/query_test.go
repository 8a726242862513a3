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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestQuery_Build(t *testing.T) {
	testCases := []struct {
		name     string
		query    Query
		wantSQL  []string
		wantVars []any
		wantErr  bool
	}{
		{
			name:    "不带条件",
			query:   Query{},
			wantSQL: []string{"SELECT * FROM `test_blogs`"},
		},
		{
			name:     "等值",
			query:    Where(Eq("title", "A")),
			wantSQL:  []string{"WHERE `title` = ?"},
			wantVars: []any{"A"},
		},
		{
			name:     "多个条件是 AND",
			query:    Where(Eq("blog_id", int64(1)), IsNull("parent_comment_id")),
			wantSQL:  []string{"`blog_id` = ?", " AND ", "`parent_comment_id` IS NULL"},
			wantVars: []any{int64(1)},
		},
		{
			name:    "不为 NULL",
			query:   Where(NotNull("parent_comment_id")),
			wantSQL: []string{"`parent_comment_id` IS NOT NULL"},
		},
		{
			name:     "IN",
			query:    Where(In("id", int64(1), int64(2))),
			wantSQL:  []string{"`id` IN (?,?)"},
			wantVars: []any{int64(1), int64(2)},
		},
		{
			name:     "LIKE 转义通配符",
			query:    Where(Contains("title", "50%_off")),
			wantSQL:  []string{"`title` LIKE ?"},
			wantVars: []any{`%50\%\_off%`},
		},
		{
			name:     "OR",
			query:    Where(Or(Contains("title", "go"), Contains("content", "go"))),
			wantSQL:  []string{"`title` LIKE ?", " OR ", "`content` LIKE ?"},
			wantVars: []any{"%go%", "%go%"},
		},
		{
			name:    "排序和数量限制",
			query:   Query{}.OrderByDesc("posted_time").OrderByDesc("id").Limit(10),
			wantSQL: []string{"ORDER BY `posted_time` DESC,`id` DESC", "LIMIT"},
		},
		{
			name:    "非法的列名",
			query:   Where(Eq("title = 1 OR 1", 1)),
			wantErr: true,
		},
		{
			name:    "非法的排序列",
			query:   Query{}.OrderBy("id; DROP TABLE users"),
			wantErr: true,
		},
	}
	db := dryRunDB(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cls, err := tc.query.clauses()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			var res []testBlog
			stmt := db.Clauses(cls...).Find(&res).Statement
			sql := stmt.SQL.String()
			for _, frag := range tc.wantSQL {
				assert.Contains(t, sql, frag)
			}
			for _, v := range tc.wantVars {
				assert.Contains(t, stmt.Vars, v)
			}
		})
	}
}

func TestQuery_Immutable(t *testing.T) {
	base := Query{}.OrderBy("id")
	q1 := base.OrderByDesc("ctime")
	q2 := base.OrderBy("title")
	assert.Len(t, base.orders, 1)
	assert.Equal(t, []order{{col: "id"}, {col: "ctime", desc: true}}, q1.orders)
	assert.Equal(t, []order{{col: "id"}, {col: "title"}}, q2.orders)
}

func dryRunDB(t *testing.T) *gorm.DB {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		DryRun:                 true,
	})
	require.NoError(t, err)
	return db
}

type testBlog struct {
	ID    int64 `gorm:"primaryKey,autoIncrement"`
	Title string
	Ctime int64 `gorm:"autoCreateTime:milli"`
	Utime int64 `gorm:"autoUpdateTime:milli"`
}

func (b testBlog) PrimaryKey() int64 {
	return b.ID
}

func (testBlog) TableName() string {
	return "test_blogs"
}
