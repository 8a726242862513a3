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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMDAO_Get(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(t *testing.T) *sql.DB
		wantBlog testBlog
		wantOK   bool
		wantErr  error
	}{
		{
			name: "查找成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "title", "ctime", "utime"}).
					AddRow(1, "A", 123, 456)
				mock.ExpectQuery("^SELECT \\* FROM `test_blogs` WHERE `title` = \\? ORDER BY `test_blogs`.`id`").
					WillReturnRows(rows)
				return mockDB
			},
			wantBlog: testBlog{ID: 1, Title: "A", Ctime: 123, Utime: 456},
			wantOK:   true,
		},
		{
			name: "没有数据",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				rows := sqlmock.NewRows([]string{"id", "title", "ctime", "utime"})
				mock.ExpectQuery("^SELECT \\* FROM `test_blogs`").WillReturnRows(rows)
				return mockDB
			},
		},
		{
			name: "请求被取消",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("^SELECT \\* FROM `test_blogs`").WillReturnError(context.Canceled)
				return mockDB
			},
			wantErr: ErrCanceled,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectQuery("^SELECT \\* FROM `test_blogs`").WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMDAO[testBlog](openDB(t, tc.mock(t)))
			b, ok, err := d.Get(context.Background(), Eq("title", "A"))
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantBlog, b)
		})
	}
}

func TestGORMDAO_Insert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "插入成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `test_blogs` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				return mockDB
			},
			wantID: 3,
		},
		{
			name: "唯一索引冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `test_blogs` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: ErrConstraintViolation,
		},
		{
			name: "外键约束失败",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `test_blogs` .*").
					WillReturnError(&mysql.MySQLError{Number: 1452})
				return mockDB
			},
			wantErr: ErrConstraintViolation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMDAO[testBlog](openDB(t, tc.mock(t)))
			id, err := d.Insert(context.Background(), testBlog{Title: "A"})
			assertErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestGORMDAO_Update(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "全量更新",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `test_blogs` WHERE id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectExec("UPDATE `test_blogs` SET .*`title`=\\?.*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "数据不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT `id` FROM `test_blogs` WHERE id = \\?").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMDAO[testBlog](openDB(t, tc.mock(t)))
			err := d.Update(context.Background(), testBlog{ID: 1, Title: ""})
			assertErr(t, tc.wantErr, err)
		})
	}
}

func TestGORMDAO_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "删除成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("DELETE FROM `test_blogs` WHERE id = \\?").
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "数据不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("DELETE FROM `test_blogs` WHERE id = \\?").
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrNotFound,
		},
		{
			name: "被其它数据引用",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("DELETE FROM `test_blogs` WHERE id = \\?").
					WillReturnError(&mysql.MySQLError{Number: 1451})
				return mockDB
			},
			wantErr: ErrConstraintViolation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMDAO[testBlog](openDB(t, tc.mock(t)))
			err := d.Delete(context.Background(), testBlog{ID: 1})
			assertErr(t, tc.wantErr, err)
		})
	}
}

func TestGORMDAO_Count(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `test_blogs` WHERE `title` LIKE \\?").
		WithArgs("%go%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	d := NewGORMDAO[testBlog](openDB(t, mockDB))
	cnt, err := d.Count(context.Background(), Contains("title", "go"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), cnt)
}

func openDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 如果为 true ，则不允许 Ping数据库
		DisableAutomaticPing: true,
		// 如果为 false ，则即使是单一语句，也会开启事务
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func assertErr(t *testing.T, want, got error) {
	t.Helper()
	switch {
	case want == nil:
		assert.NoError(t, got)
	case errors.Is(got, want):
	default:
		assert.Equal(t, want, got)
	}
}
