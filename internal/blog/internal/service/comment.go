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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/weblog/internal/blog/internal/domain"
	"github.com/ecodeclub/weblog/internal/blog/internal/repository"
	"github.com/ecodeclub/weblog/internal/pkg/crud"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCommentNotFound = errors.New("评论不存在")
	// ErrInvalidParent 父评论不存在，或者和当前评论不属于同一篇博客
	ErrInvalidParent = errors.New("父评论非法")
	// ErrCommentCycle 父评论是自己或者自己的子孙评论
	ErrCommentCycle = errors.New("评论之间出现了环")
	// ErrCommentMoved 评论不允许换到别的博客下面
	ErrCommentMoved = errors.New("不允许修改评论所属的博客")
)

//go:generate mockgen -source=./comment.go -package=svcmocks -destination=mocks/comment.mock.go CommentService
type CommentService interface {
	// Service 其中 Insert 和 Update 会校验父评论
	crud.Service[domain.Comment]
	// ListWithSubComments 查询 blogID 下父评论为 parentID 的一层评论，每条评论带上它的直接子评论。
	// parentID 为 0 代表查询根评论。parentID 不存在或者不属于该博客的时候返回 ErrCommentNotFound。
	// 同一层按照评论时间升序，时间相同按照 ID 升序。total 是该博客下所有评论的数量
	ListWithSubComments(ctx context.Context, blogID, parentID int64) (list []domain.Comment, total int64, err error)
}

type commentService struct {
	crud.Service[domain.Comment]
	repo     repository.CommentRepository
	blogRepo repository.BlogRepository
}

func NewCommentService(repo repository.CommentRepository, blogRepo repository.BlogRepository) CommentService {
	return &commentService{
		Service:  crud.NewService[domain.Comment](repo),
		repo:     repo,
		blogRepo: blogRepo,
	}
}

func (s *commentService) Insert(ctx context.Context, c domain.Comment) (int64, error) {
	if _, ok, err := s.blogRepo.Get(ctx, crud.Eq("id", c.BlogID)); err != nil || !ok {
		return 0, orNotFound(err, ErrBlogNotFound)
	}
	if !c.IsRoot() {
		if _, err := s.parent(ctx, c.BlogID, c.ParentID); err != nil {
			return 0, err
		}
	}
	if c.PostedTime == 0 {
		c.PostedTime = time.Now().UnixMilli()
	}
	return s.repo.Insert(ctx, c)
}

func (s *commentService) Update(ctx context.Context, c domain.Comment) error {
	old, ok, err := s.repo.Get(ctx, crud.Eq("id", c.ID))
	if err != nil {
		return err
	}
	if !ok {
		return crud.ErrNotFound
	}
	if old.BlogID != c.BlogID {
		return ErrCommentMoved
	}
	if !c.IsRoot() && c.ParentID != old.ParentID {
		if err = s.checkAcyclic(ctx, c); err != nil {
			return err
		}
	}
	return s.repo.Update(ctx, c)
}

// checkAcyclic 沿着新的父评论一路往上找，碰到自己就说明有环
func (s *commentService) checkAcyclic(ctx context.Context, c domain.Comment) error {
	visited := make(map[int64]struct{}, 8)
	for cur := c.ParentID; cur != 0; {
		if cur == c.ID {
			return ErrCommentCycle
		}
		if _, ok := visited[cur]; ok {
			return ErrCommentCycle
		}
		visited[cur] = struct{}{}
		p, err := s.parent(ctx, c.BlogID, cur)
		if err != nil {
			return err
		}
		cur = p.ParentID
	}
	return nil
}

func (s *commentService) parent(ctx context.Context, blogID, parentID int64) (domain.Comment, error) {
	p, ok, err := s.repo.Get(ctx, crud.Eq("id", parentID))
	if err != nil {
		return domain.Comment{}, err
	}
	if !ok || p.BlogID != blogID {
		return domain.Comment{}, ErrInvalidParent
	}
	return p, nil
}

func (s *commentService) ListWithSubComments(ctx context.Context, blogID, parentID int64) ([]domain.Comment, int64, error) {
	var (
		list  []domain.Comment
		total int64
	)
	// 任何一个查询失败都会取消另外一个
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		list, err = s.level(ctx, blogID, parentID)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, crud.Eq("blog_id", blogID))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *commentService) level(ctx context.Context, blogID, parentID int64) ([]domain.Comment, error) {
	parent := crud.IsNull("parent_comment_id")
	if parentID != 0 {
		_, err := s.parent(ctx, blogID, parentID)
		if errors.Is(err, ErrInvalidParent) {
			return nil, ErrCommentNotFound
		}
		if err != nil {
			return nil, err
		}
		parent = crud.Eq("parent_comment_id", parentID)
	}
	cs, err := s.repo.GetAll(ctx, oldestFirst(crud.Where(crud.Eq("blog_id", blogID), parent)))
	if err != nil {
		return nil, err
	}
	if len(cs) == 0 {
		return []domain.Comment{}, nil
	}
	ids := slice.Map(cs, func(_ int, src domain.Comment) int64 {
		return src.ID
	})
	// 一次性把这一层所有评论的子评论都查出来
	children, err := s.repo.GetAll(ctx, oldestFirst(crud.Where(crud.In("parent_comment_id", ids...))))
	if err != nil {
		return nil, err
	}
	return attachSubComments(cs, children), nil
}

// attachSubComments 按照 ParentID 把 children 挂到 level 上，顺序保持不变。
// 邻接表只在这次调用里面使用，children 本身不再带子评论
func attachSubComments(level, children []domain.Comment) []domain.Comment {
	byParent := make(map[int64][]domain.Comment, len(level))
	for _, c := range children {
		c.SubComments = nil
		byParent[c.ParentID] = append(byParent[c.ParentID], c)
	}
	for i := range level {
		subs, ok := byParent[level[i].ID]
		if !ok {
			subs = []domain.Comment{}
		}
		level[i].SubComments = subs
	}
	return level
}

func oldestFirst(q crud.Query) crud.Query {
	return q.OrderBy("posted_time").OrderBy("id")
}
