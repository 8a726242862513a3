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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/repository"
	"github.com/ecodeclub/weblog/internal/pkg/crud"
)

var (
	ErrBlogNotFound     = errors.New("博客不存在")
	ErrCategoryNotFound = errors.New("分类不存在")
)

//go:generate mockgen -source=./blog.go -package=svcmocks -destination=mocks/blog.mock.go BlogService
type BlogService interface {
	crud.Service[domain.Blog]
	// ListSortedByPostedTime 按照发布时间倒序，时间相同的按照 ID 倒序
	ListSortedByPostedTime(ctx context.Context) ([]domain.Blog, error)
	// Search 在标题、简介和正文里面模糊搜索，空关键字返回空列表
	Search(ctx context.Context, keyword string) ([]domain.Blog, error)
	// AddToCategory 重复添加返回 crud.ErrConstraintViolation
	AddToCategory(ctx context.Context, cb domain.CategoryBlog) (int64, error)
	// RemoveFromCategory 关联不存在返回 crud.ErrNotFound
	RemoveFromCategory(ctx context.Context, cb domain.CategoryBlog) error
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Blog, error)
	Categories(ctx context.Context, blogID int64) ([]domain.Category, error)
}

type blogService struct {
	crud.Service[domain.Blog]
	repo     repository.BlogRepository
	cateRepo repository.CategoryRepository
	cbRepo   repository.CategoryBlogRepository
}

func NewBlogService(repo repository.BlogRepository,
	cateRepo repository.CategoryRepository,
	cbRepo repository.CategoryBlogRepository) BlogService {
	return &blogService{
		Service:  crud.NewService[domain.Blog](repo),
		repo:     repo,
		cateRepo: cateRepo,
		cbRepo:   cbRepo,
	}
}

func (s *blogService) ListSortedByPostedTime(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.GetAll(ctx, newestFirst(crud.Query{}))
}

func (s *blogService) Search(ctx context.Context, keyword string) ([]domain.Blog, error) {
	if keyword == "" {
		return []domain.Blog{}, nil
	}
	return s.repo.GetAll(ctx, newestFirst(crud.Where(crud.Or(
		crud.Contains("title", keyword),
		crud.Contains("short_description", keyword),
		crud.Contains("content", keyword),
	))))
}

func (s *blogService) AddToCategory(ctx context.Context, cb domain.CategoryBlog) (int64, error) {
	if _, ok, err := s.GetByID(ctx, cb.BlogID); err != nil || !ok {
		return 0, orNotFound(err, ErrBlogNotFound)
	}
	if _, ok, err := s.cateRepo.Get(ctx, crud.Eq("id", cb.CategoryID)); err != nil || !ok {
		return 0, orNotFound(err, ErrCategoryNotFound)
	}
	return s.cbRepo.Insert(ctx, domain.CategoryBlog{CategoryID: cb.CategoryID, BlogID: cb.BlogID})
}

func (s *blogService) RemoveFromCategory(ctx context.Context, cb domain.CategoryBlog) error {
	old, ok, err := s.cbRepo.Get(ctx, crud.And(
		crud.Eq("category_id", cb.CategoryID),
		crud.Eq("blog_id", cb.BlogID)))
	if err != nil {
		return err
	}
	if !ok {
		return crud.ErrNotFound
	}
	return s.cbRepo.Delete(ctx, old)
}

func (s *blogService) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Blog, error) {
	cbs, err := s.cbRepo.GetAll(ctx, crud.Where(crud.Eq("category_id", categoryID)))
	if err != nil {
		return nil, err
	}
	if len(cbs) == 0 {
		return []domain.Blog{}, nil
	}
	ids := slice.Map(cbs, func(_ int, src domain.CategoryBlog) int64 {
		return src.BlogID
	})
	return s.repo.GetAll(ctx, newestFirst(crud.Where(crud.In("id", ids...))))
}

func (s *blogService) Categories(ctx context.Context, blogID int64) ([]domain.Category, error) {
	cbs, err := s.cbRepo.GetAll(ctx, crud.Where(crud.Eq("blog_id", blogID)))
	if err != nil {
		return nil, err
	}
	if len(cbs) == 0 {
		return []domain.Category{}, nil
	}
	ids := slice.Map(cbs, func(_ int, src domain.CategoryBlog) int64 {
		return src.CategoryID
	})
	return s.cateRepo.GetAll(ctx, crud.Where(crud.In("id", ids...)).OrderBy("id"))
}

func newestFirst(q crud.Query) crud.Query {
	return q.OrderByDesc("posted_time").OrderByDesc("id")
}

// orNotFound 有错误就返回错误，否则返回代表数据不存在的 notFound
func orNotFound(err error, notFound error) error {
	if err != nil {
		return err
	}
	return notFound
}
