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
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// 纯文本字段，去掉所有标签
	textPolicy = bluemonday.StrictPolicy()
	// 博客正文允许常见的排版标签
	contentPolicy = bluemonday.UGCPolicy()
)

func sanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

func sanitizeContent(s string) string {
	return contentPolicy.Sanitize(s)
}
