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

	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/repository"
	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./category.go -package=svcmocks -destination=mocks/category.mock.go CategoryService
type CategoryService interface {
	crud.Service[domain.Category]
	// ListWithBlogCount 所有分类，带上每个分类下的博客数量
	ListWithBlogCount(ctx context.Context) ([]domain.Category, error)
}

type categoryService struct {
	crud.Service[domain.Category]
	repo   repository.CategoryRepository
	cbRepo repository.CategoryBlogRepository
}

func NewCategoryService(repo repository.CategoryRepository,
	cbRepo repository.CategoryBlogRepository) CategoryService {
	return &categoryService{
		Service: crud.NewService[domain.Category](repo),
		repo:    repo,
		cbRepo:  cbRepo,
	}
}

func (s *categoryService) ListWithBlogCount(ctx context.Context) ([]domain.Category, error) {
	var (
		cates []domain.Category
		cbs   []domain.CategoryBlog
	)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		cates, err = s.repo.GetAll(ctx, crud.Query{}.OrderBy("id"))
		return err
	})
	eg.Go(func() error {
		var err error
		cbs, err = s.cbRepo.GetAll(ctx, crud.Query{})
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	counts := make(map[int64]int64, len(cates))
	for _, cb := range cbs {
		counts[cb.CategoryID]++
	}
	for i := range cates {
		cates[i].BlogCount = counts[cates[i].ID]
	}
	return cates, nil
}
