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

// Package htmlx 从富文本正文里面提取纯文本和摘要
package htmlx

import (
	"regexp"
	"strings"
)

var (
	paragraphRe = regexp.MustCompile(`(?s)<p(?:\s[^>]*)?>(.*?)</p>`)
	// 块级元素结束的地方补一个空格，不然前后两段的文字会粘在一起
	blockEndRe = regexp.MustCompile(`(?i)</(?:p|li|h[1-6]|blockquote|pre|div|tr)>|<br\s*/?>`)
	tagRe      = regexp.MustCompile(`<[^>]*>`)
	spaceRe    = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", "\"",
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// StripHTML 去掉所有标签，超链接只保留文字，连续的空白压缩成一个空格
func StripHTML(content string) string {
	content = blockEndRe.ReplaceAllString(content, " ")
	content = tagRe.ReplaceAllString(content, "")
	content = entityReplacer.Replace(content)
	return strings.TrimSpace(spaceRe.ReplaceAllString(content, " "))
}

// FirstParagraphs 截取前 n 个非空的 <p> 段落。
// 段落数量不足 n 个，或者根本没有 <p> 的时候返回全部内容
func FirstParagraphs(content string, n int) string {
	if n <= 0 {
		return ""
	}
	cnt := 0
	for _, m := range paragraphRe.FindAllStringSubmatchIndex(content, -1) {
		if StripHTML(content[m[2]:m[3]]) == "" {
			continue
		}
		cnt++
		if cnt == n {
			return content[:m[1]]
		}
	}
	return content
}

// Summary 第一个非空段落的纯文本。超过 maxRunes 个字符的时候截断，
// 并且用省略号占掉最后一个字符。maxRunes 小于等于 0 代表不限制
func Summary(content string, maxRunes int) string {
	text := StripHTML(FirstParagraphs(content, 1))
	if maxRunes <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes-1]) + "…"
}
