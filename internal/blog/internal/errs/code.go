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

package errs

var (
	SystemError       = ErrorCode{Code: 502001, Msg: "系统错误"}
	BlogNotFound      = ErrorCode{Code: 502002, Msg: "博客不存在"}
	CategoryNotFound  = ErrorCode{Code: 502003, Msg: "分类不存在"}
	CategoryDuplicate = ErrorCode{Code: 502004, Msg: "分类名称已经存在"}
	AlreadyInCategory = ErrorCode{Code: 502005, Msg: "博客已经在该分类下"}
	NotInCategory     = ErrorCode{Code: 502006, Msg: "博客不在该分类下"}
	IDMismatch        = ErrorCode{Code: 502007, Msg: "ID 不一致"}
	InvalidInput      = ErrorCode{Code: 502008, Msg: "参数错误"}

	CommentNotFound = ErrorCode{Code: 503001, Msg: "评论不存在"}
	InvalidParent   = ErrorCode{Code: 503002, Msg: "父评论不存在或者不属于同一篇博客"}
	CommentCycle    = ErrorCode{Code: 503003, Msg: "不能把评论挂到它自己或者它的子评论下面"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

// NewUploadErr 上传失败的原因直接返回给前端
func NewUploadErr(msg string) ErrorCode {
	return ErrorCode{Code: 502009, Msg: msg}
}
