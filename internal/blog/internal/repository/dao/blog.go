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

package dao

import (
	"database/sql"

	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"github.com/ego-component/egorm"
)

type Blog struct {
	ID               int64  `gorm:"primaryKey,autoIncrement"`
	Title            string `gorm:"type:varchar(512);not null"`
	ShortDescription string `gorm:"type:varchar(1024)"`
	Content          string `gorm:"type:text"`
	ImagePath        string `gorm:"type:varchar(512)"`
	PostedTime       int64  `gorm:"index"`
	AppUserID        int64  `gorm:"index"`
	Ctime            int64  `gorm:"autoCreateTime:milli"`
	Utime            int64  `gorm:"autoUpdateTime:milli"`
}

func (b Blog) PrimaryKey() int64 {
	return b.ID
}

func (Blog) TableName() string {
	return "blogs"
}

type Category struct {
	ID    int64  `gorm:"primaryKey,autoIncrement"`
	Name  string `gorm:"type:varchar(256);not null;uniqueIndex"`
	Ctime int64  `gorm:"autoCreateTime:milli"`
	Utime int64  `gorm:"autoUpdateTime:milli"`
}

func (c Category) PrimaryKey() int64 {
	return c.ID
}

func (Category) TableName() string {
	return "categories"
}

// CategoryBlog 删除博客或者分类的时候级联删除
type CategoryBlog struct {
	ID         int64 `gorm:"primaryKey,autoIncrement"`
	CategoryID int64 `gorm:"not null;uniqueIndex:uniq_category_blog,priority:1"`
	BlogID     int64 `gorm:"not null;uniqueIndex:uniq_category_blog,priority:2;index"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	Blog     *Blog     `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`

	Ctime int64 `gorm:"autoCreateTime:milli"`
	Utime int64 `gorm:"autoUpdateTime:milli"`
}

func (cb CategoryBlog) PrimaryKey() int64 {
	return cb.ID
}

func (CategoryBlog) TableName() string {
	return "category_blogs"
}

type Comment struct {
	ID     int64 `gorm:"primaryKey,autoIncrement"`
	BlogID int64 `gorm:"not null;index:idx_blog_parent,priority:1"`
	// NULL 代表根评论
	ParentCommentID sql.Null[int64] `gorm:"type:bigint;index:idx_blog_parent,priority:2;index:idx_parent"`
	AuthorName      string          `gorm:"type:varchar(128);not null"`
	AuthorEmail     string          `gorm:"type:varchar(256)"`
	Description     string          `gorm:"type:text;not null"`
	PostedTime      int64

	// 外键用于级联删除博客下的评论以及子孙评论
	Blog          *Blog    `gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	ParentComment *Comment `gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE"`

	Ctime int64 `gorm:"autoCreateTime:milli"`
	Utime int64 `gorm:"autoUpdateTime:milli"`
}

func (c Comment) PrimaryKey() int64 {
	return c.ID
}

func (Comment) TableName() string {
	return "comments"
}

type (
	BlogDAO         = crud.DAO[Blog]
	CategoryDAO     = crud.DAO[Category]
	CategoryBlogDAO = crud.DAO[CategoryBlog]
	CommentDAO      = crud.DAO[Comment]
)

func NewBlogDAO(db *egorm.Component) BlogDAO {
	return crud.NewGORMDAO[Blog](db)
}

func NewCategoryDAO(db *egorm.Component) CategoryDAO {
	return crud.NewGORMDAO[Category](db)
}

func NewCategoryBlogDAO(db *egorm.Component) CategoryBlogDAO {
	return crud.NewGORMDAO[CategoryBlog](db)
}

func NewCommentDAO(db *egorm.Component) CommentDAO {
	return crud.NewGORMDAO[Comment](db)
}
