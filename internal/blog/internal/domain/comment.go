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

package domain

type Comment struct {
	ID     int64
	BlogID int64
	// 父评论 ID，0 代表直接评论博客的根评论
	ParentID    int64
	AuthorName  string
	AuthorEmail string
	Description string
	PostedTime  int64

	// 直接子评论，查询的时候组装，只带一层
	SubComments []Comment
}

func (c Comment) IsRoot() bool {
	return c.ParentID == 0
}
