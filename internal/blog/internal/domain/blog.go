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

type Blog struct {
	ID               int64
	Title            string
	ShortDescription string
	Content          string
	// 上传之后的图片路径，没有图片的时候为空
	ImagePath string
	// 毫秒
	PostedTime int64
	// 作者
	AppUserID int64
	Utime     int64
}

type Category struct {
	ID   int64
	Name string
	// 只有在查询分类统计的时候才有
	BlogCount int64
}

// CategoryBlog 博客和分类之间的多对多关系
type CategoryBlog struct {
	ID         int64
	CategoryID int64
	BlogID     int64
}
