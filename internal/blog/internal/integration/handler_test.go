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

//go:build e2e

package integration

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/weblog/internal/blog/internal/errs"
	"github.com/ecodeclub/weblog/internal/blog/internal/integration/startup"
	"github.com/ecodeclub/weblog/internal/blog/internal/repository/dao"
	"github.com/ecodeclub/weblog/internal/blog/internal/web"
	"github.com/ecodeclub/weblog/internal/pkg/upload"
	"github.com/ecodeclub/weblog/internal/test"
	testioc "github.com/ecodeclub/weblog/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

var jpegContent = append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, bytes.Repeat([]byte{0x01}, 64)...)

type HandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	db      *egorm.Component
	backend *upload.MemoryBackend
}

func (s *HandlerTestSuite) SetupSuite() {
	s.backend = upload.NewMemoryBackend()
	module := startup.InitModule(upload.NewService(s.backend, upload.DefaultMaxSize))

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(test.InjectSession(uid))
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	module.CategoryHdl.PublicRoutes(server.Engine)
	module.CategoryHdl.PrivateRoutes(server.Engine)
	module.CommentHdl.PublicRoutes(server.Engine)
	module.CommentHdl.PrivateRoutes(server.Engine)

	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownTest() {
	// 有外键约束，不能 TRUNCATE
	for _, table := range []string{"comments", "category_blogs", "blogs", "categories"} {
		err := s.db.Exec("DELETE FROM `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) TestBlogLifecycle() {
	t := s.T()
	cateID := s.createCategory(t, "Tech")
	blogID := s.createBlog(t, "A", jpegContent)

	// 图片写入了存储
	var entity dao.Blog
	require.NoError(t, s.db.Where("id = ?", blogID).First(&entity).Error)
	assert.Equal(t, "A", entity.Title)
	assert.Equal(t, int64(uid), entity.AppUserID)
	data, ok := s.backend.Get(entity.ImagePath)
	require.True(t, ok)
	assert.Equal(t, jpegContent, data)

	// 关联分类
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/blog/category/add", web.CategoryBlogReq{CategoryID: cateID, BlogID: blogID}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, recorder.MustScan().Data > 0)

	// 重复关联
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/blog/category/add", web.CategoryBlogReq{CategoryID: cateID, BlogID: blogID}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.AlreadyInCategory.Code, recorder.MustScan().Code)

	blogs := test.NewJSONResponseRecorder[[]web.Blog]()
	s.server.ServeHTTP(blogs, s.jsonReq(t, "/blog/by-category", web.IDReq{ID: cateID}))
	require.Equal(t, http.StatusOK, blogs.Code)
	res := blogs.MustScan().Data
	require.Len(t, res, 1)
	assert.Equal(t, blogID, res[0].ID)
	assert.Equal(t, "/static/"+entity.ImagePath, res[0].ImageURL)

	cates := test.NewJSONResponseRecorder[[]web.Category]()
	s.server.ServeHTTP(cates, s.jsonReq(t, "/blog/categories", web.IDReq{ID: blogID}))
	require.Equal(t, http.StatusOK, cates.Code)
	assert.Equal(t, []web.Category{{ID: cateID, Name: "Tech"}}, cates.MustScan().Data)

	counts := test.NewJSONResponseRecorder[[]web.Category]()
	req, err := http.NewRequest(http.MethodGet, "/category/counts", nil)
	require.NoError(t, err)
	s.server.ServeHTTP(counts, req)
	require.Equal(t, http.StatusOK, counts.Code)
	assert.Equal(t, []web.Category{{ID: cateID, Name: "Tech", BlogCount: 1}}, counts.MustScan().Data)

	// 评论
	rootID := s.createComment(t, web.CreateCommentReq{BlogID: blogID, AuthorName: "Tom", Description: "root"})
	replyID := s.createComment(t, web.CreateCommentReq{BlogID: blogID, ParentID: rootID, AuthorName: "Jerry", Description: "reply"})

	list := test.NewJSONResponseRecorder[web.CommentList]()
	s.server.ServeHTTP(list, s.jsonReq(t, "/comment/list", web.ListCommentReq{BlogID: blogID}))
	require.Equal(t, http.StatusOK, list.Code)
	roots := list.MustScan().Data
	assert.Equal(t, int64(2), roots.Total)
	require.Len(t, roots.List, 1)
	assert.Equal(t, rootID, roots.List[0].ID)
	require.Len(t, roots.List[0].SubComments, 1)
	assert.Equal(t, replyID, roots.List[0].SubComments[0].ID)
	assert.Equal(t, rootID, roots.List[0].SubComments[0].ParentID)

	list = test.NewJSONResponseRecorder[web.CommentList]()
	s.server.ServeHTTP(list, s.jsonReq(t, "/comment/list", web.ListCommentReq{BlogID: blogID, ParentID: rootID}))
	require.Equal(t, http.StatusOK, list.Code)
	children := list.MustScan().Data
	require.Len(t, children.List, 1)
	assert.Equal(t, replyID, children.List[0].ID)
	assert.Equal(t, []web.Comment{}, children.List[0].SubComments)

	// 把根评论挂到自己的回复下面会形成环
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/comment/update", web.UpdateCommentReq{
		ID:          rootID,
		ParentID:    replyID,
		AuthorName:  "Tom",
		Description: "root",
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.CommentCycle.Code, recorder.MustScan().Code)

	// 删除博客级联删除评论和分类关联
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/blog/delete", web.IDReq{ID: blogID}))
	require.Equal(t, http.StatusOK, recorder.Code)
	_, ok = s.backend.Get(entity.ImagePath)
	assert.False(t, ok)

	var cnt int64
	require.NoError(t, s.db.Model(&dao.Comment{}).Where("blog_id = ?", blogID).Count(&cnt).Error)
	assert.Zero(t, cnt)
	require.NoError(t, s.db.Model(&dao.CategoryBlog{}).Where("blog_id = ?", blogID).Count(&cnt).Error)
	assert.Zero(t, cnt)

	detail := test.NewJSONResponseRecorder[web.Blog]()
	s.server.ServeHTTP(detail, s.jsonReq(t, "/blog/detail", web.IDReq{ID: blogID}))
	require.Equal(t, http.StatusOK, detail.Code)
	assert.Equal(t, errs.BlogNotFound.Code, detail.MustScan().Code)
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	first := s.createBlog(t, "Go 并发", nil)
	second := s.createBlog(t, "Java 虚拟机", nil)

	recorder := test.NewJSONResponseRecorder[[]web.Blog]()
	req, err := http.NewRequest(http.MethodGet, "/blog/list", nil)
	require.NoError(t, err)
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	blogs := recorder.MustScan().Data
	require.Len(t, blogs, 2)
	// 最新发布的在前面
	assert.Equal(t, second, blogs[0].ID)
	assert.Equal(t, first, blogs[1].ID)
	assert.Empty(t, blogs[0].ImagePath)

	recorder = test.NewJSONResponseRecorder[[]web.Blog]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/blog/search", web.SearchReq{Keyword: "go"}))
	require.Equal(t, http.StatusOK, recorder.Code)
	blogs = recorder.MustScan().Data
	require.Len(t, blogs, 1)
	assert.Equal(t, first, blogs[0].ID)

	recorder = test.NewJSONResponseRecorder[[]web.Blog]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/blog/search", web.SearchReq{Keyword: "100%"}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []web.Blog{}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestCommentInAnotherBlog() {
	t := s.T()
	a := s.createBlog(t, "A", nil)
	b := s.createBlog(t, "B", nil)
	parent := s.createComment(t, web.CreateCommentReq{BlogID: a, AuthorName: "Tom", Description: "a"})

	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/comment/create", web.CreateCommentReq{
		BlogID:      b,
		ParentID:    parent,
		AuthorName:  "Jerry",
		Description: "b",
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.InvalidParent.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) createCategory(t *testing.T, name string) int64 {
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/category/create", web.CategoryReq{Name: name}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	require.Zero(t, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) createBlog(t *testing.T, title string, image []byte) int64 {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", title))
	require.NoError(t, w.WriteField("shortDescription", title))
	require.NoError(t, w.WriteField("content", "<p>"+title+"</p>"))
	if image != nil {
		fw, err := w.CreateFormFile("image", "a.jpg")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req, err := http.NewRequest(http.MethodPost, "/blog/create", body)
	require.NoError(t, err)
	req.Header.Set("content-type", w.FormDataContentType())
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	require.Zero(t, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) createComment(t *testing.T, c web.CreateCommentReq) int64 {
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, s.jsonReq(t, "/comment/create", c))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	require.Zero(t, res.Code)
	return res.Data
}

func (s *HandlerTestSuite) jsonReq(t *testing.T, path string, body any) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	return req
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
