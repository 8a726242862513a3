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

package web

import (
	"mime/multipart"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
}

// SaveBlogReq 创建和更新博客都用 multipart/form-data，图片是可选的
type SaveBlogReq struct {
	ID               int64                 `form:"id"`
	Title            string                `form:"title" binding:"required,max=512"`
	ShortDescription string                `form:"shortDescription" binding:"max=1024"`
	Content          string                `form:"content" binding:"required"`
	Image            *multipart.FileHeader `form:"image"`
}

type Blog struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	ImagePath        string `json:"imagePath"`
	ImageURL         string `json:"imageURL"`
	PostedTime       int64  `json:"postedTime"`
	AppUserID        int64  `json:"appUserId"`
	Utime            int64  `json:"utime"`
}

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BlogCount int64  `json:"blogCount,omitempty"`
}

type CategoryReq struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required,max=256"`
}

type CategoryBlogReq struct {
	CategoryID int64 `json:"categoryId" binding:"required"`
	BlogID     int64 `json:"blogId" binding:"required"`
}

type Comment struct {
	ID          int64  `json:"id"`
	BlogID      int64  `json:"blogId"`
	ParentID    int64  `json:"parentId"`
	AuthorName  string `json:"authorName"`
	AuthorEmail string `json:"authorEmail"`
	Description string `json:"description"`
	PostedTime  int64  `json:"postedTime"`
	// 直接子评论，子评论自己的 SubComments 为 null，代表没有加载
	SubComments []Comment `json:"subComments"`
}

type CommentList struct {
	List  []Comment `json:"list"`
	Total int64     `json:"total"`
}

type ListCommentReq struct {
	BlogID int64 `json:"blogId" binding:"required"`
	// 0 代表查询根评论
	ParentID int64 `json:"parentId"`
}

type CreateCommentReq struct {
	BlogID      int64  `json:"blogId" binding:"required"`
	ParentID    int64  `json:"parentId"`
	AuthorName  string `json:"authorName" binding:"required,max=128"`
	AuthorEmail string `json:"authorEmail" binding:"omitempty,email,max=256"`
	Description string `json:"description" binding:"required"`
}

type UpdateCommentReq struct {
	ID          int64  `json:"id" binding:"required"`
	ParentID    int64  `json:"parentId"`
	AuthorName  string `json:"authorName" binding:"required,max=128"`
	AuthorEmail string `json:"authorEmail" binding:"omitempty,email,max=256"`
	Description string `json:"description" binding:"required"`
}
