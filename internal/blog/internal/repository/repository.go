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
	"database/sql"

	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/repository/dao"
	"github.com/ecodeclub/weblog/internal/pkg/crud"
)

type (
	BlogRepository         = crud.Repository[domain.Blog]
	CategoryRepository     = crud.Repository[domain.Category]
	CategoryBlogRepository = crud.Repository[domain.CategoryBlog]
	CommentRepository      = crud.Repository[domain.Comment]
)

func NewBlogRepository(d dao.BlogDAO) BlogRepository {
	return crud.NewRepository[domain.Blog, dao.Blog](d, toBlogDomain, toBlogEntity)
}

func NewCategoryRepository(d dao.CategoryDAO) CategoryRepository {
	return crud.NewRepository[domain.Category, dao.Category](d,
		func(c dao.Category) domain.Category {
			return domain.Category{ID: c.ID, Name: c.Name}
		},
		func(c domain.Category) dao.Category {
			return dao.Category{ID: c.ID, Name: c.Name}
		})
}

func NewCategoryBlogRepository(d dao.CategoryBlogDAO) CategoryBlogRepository {
	return crud.NewRepository[domain.CategoryBlog, dao.CategoryBlog](d,
		func(cb dao.CategoryBlog) domain.CategoryBlog {
			return domain.CategoryBlog{ID: cb.ID, CategoryID: cb.CategoryID, BlogID: cb.BlogID}
		},
		func(cb domain.CategoryBlog) dao.CategoryBlog {
			return dao.CategoryBlog{ID: cb.ID, CategoryID: cb.CategoryID, BlogID: cb.BlogID}
		})
}

func NewCommentRepository(d dao.CommentDAO) CommentRepository {
	return crud.NewRepository[domain.Comment, dao.Comment](d, toCommentDomain, toCommentEntity)
}

func toBlogDomain(b dao.Blog) domain.Blog {
	return domain.Blog{
		ID:               b.ID,
		Title:            b.Title,
		ShortDescription: b.ShortDescription,
		Content:          b.Content,
		ImagePath:        b.ImagePath,
		PostedTime:       b.PostedTime,
		AppUserID:        b.AppUserID,
		Utime:            b.Utime,
	}
}

func toBlogEntity(b domain.Blog) dao.Blog {
	return dao.Blog{
		ID:               b.ID,
		Title:            b.Title,
		ShortDescription: b.ShortDescription,
		Content:          b.Content,
		ImagePath:        b.ImagePath,
		PostedTime:       b.PostedTime,
		AppUserID:        b.AppUserID,
	}
}

func toCommentDomain(c dao.Comment) domain.Comment {
	return domain.Comment{
		ID:          c.ID,
		BlogID:      c.BlogID,
		ParentID:    c.ParentCommentID.V,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Description: c.Description,
		PostedTime:  c.PostedTime,
	}
}

func toCommentEntity(c domain.Comment) dao.Comment {
	return dao.Comment{
		ID:              c.ID,
		BlogID:          c.BlogID,
		ParentCommentID: sql.Null[int64]{V: c.ParentID, Valid: c.ParentID != 0},
		AuthorName:      c.AuthorName,
		AuthorEmail:     c.AuthorEmail,
		Description:     c.Description,
		PostedTime:      c.PostedTime,
	}
}
