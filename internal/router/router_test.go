package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"

	"yatube/backend/internal/cache"
	"yatube/backend/internal/config"
	"yatube/backend/internal/database/dbtest"
	"yatube/backend/internal/handler"
	"yatube/backend/internal/hub"
	"yatube/backend/internal/metrics"
	"yatube/backend/internal/models"
	"yatube/backend/internal/storage"
	"yatube/backend/internal/store"
	"yatube/backend/pkg/jwt"
)

const testPassword = "password123"

var smallGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x0C,
	0x0A, 0x00, 0x3B,
}

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	cfg      *config.Config
	store    *store.Store
	hub      *hub.Hub
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	engine   *gin.Engine
}

type appOption func(*config.Config, *Options)

func withPageSize(n int) appOption {
	return func(cfg *config.Config, _ *Options) { cfg.PageSize = n }
}

func withCache(c cache.Cache) appOption {
	return func(_ *config.Config, o *Options) { o.Cache = c }
}

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		LoginURL:      "/auth/login/",
		PageSize:      10,
		CacheTTL:      time.Minute,
		MediaRoot:     t.TempDir(),
		MediaURL:      "/media/",
		MaxImageBytes: 1 << 20,
	}
	app := &testApp{
		cfg:      cfg,
		store:    store.New(dbtest.Open(t)),
		hub:      hub.NewHub(),
		registry: prometheus.NewRegistry(),
	}
	app.metrics = metrics.NewWithRegistry(app.registry)

	o := Options{
		Users:    app.store,
		Config:   cfg,
		Metrics:  app.metrics,
		Gatherer: app.registry,
		Logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg, &o)
	}
	o.Handler = handler.New(handler.Deps{
		Store:   app.store,
		Storage: storage.NewLocalStorage(cfg.MediaRoot, cfg.MediaURL),
		Hub:     app.hub,
		Metrics: app.metrics,
		Logger:  zap.NewNop(),
		Config:  cfg,
	})
	app.engine = Setup(o)
	return app
}

func (a *testApp) user(t *testing.T, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	u := &models.User{Username: username, Email: username + "@example.com", PasswordHash: string(hash), Role: models.RoleUser}
	require.NoError(t, a.store.CreateUser(context.Background(), u))
	return u
}

func (a *testApp) admin(t *testing.T, username string) *models.User {
	t.Helper()
	u := a.user(t, username)
	require.NoError(t, a.store.DB().Model(u).Update("role", models.RoleAdmin).Error)
	u.Role = models.RoleAdmin
	return u
}

func (a *testApp) group(t *testing.T, slug string) *models.Group {
	t.Helper()
	g := &models.Group{Title: "Группа " + slug, Slug: slug, Description: "Тестовое описание"}
	require.NoError(t, a.store.CreateGroup(context.Background(), g))
	return g
}

func (a *testApp) post(t *testing.T, author *models.User, group *models.Group, text string) *models.Post {
	t.Helper()
	p := &models.Post{Text: text, AuthorID: author.ID}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, a.store.CreatePost(context.Background(), p))
	return p
}

func (a *testApp) token(t *testing.T, u *models.User) string {
	t.Helper()
	if u == nil {
		return ""
	}
	tok, err := jwt.GenerateToken(u.ID, a.cfg.JWTSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func (a *testApp) do(t *testing.T, method, path string, body io.Reader, contentType string, as *models.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tok := a.token(t, as); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(t *testing.T, path string, as *models.User) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodGet, path, nil, "", as)
}

func (a *testApp) postForm(t *testing.T, path string, values url.Values, as *models.User) *httptest.ResponseRecorder {
	t.Helper()
	return a.do(t, http.MethodPost, path, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded", as)
}

func (a *testApp) postJSON(t *testing.T, path string, v interface{}, as *models.User) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return a.do(t, http.MethodPost, path, bytes.NewReader(raw), "application/json", as)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func idPath(prefix string, id uint, suffix string) string {
	return prefix + strconv.FormatUint(uint64(id), 10) + suffix
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func TestUnknownPathIsNotFound(t *testing.T) {
	app := newTestApp(t)

	w := app.get(t, "/unexisting_page/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Page not found"}`, w.Body.String())
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	w := app.get(t, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestIndex_PaginatesNewestFirst(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "auth")
	g1, g2 := app.group(t, "g1"), app.group(t, "g2")
	for i := 0; i < 13; i++ {
		app.post(t, author, g1, "Пост в первой группе "+strconv.Itoa(i))
	}
	app.post(t, author, g2, "Пост во второй группе 0")
	last := app.post(t, author, g2, "Пост во второй группе 1")

	first := decode[handler.IndexView](t, app.get(t, "/", nil))
	assert.NotEmpty(t, first.Description)
	assert.Len(t, first.Page.Data, 10)
	assert.Equal(t, last.ID, first.Page.Data[0].ID)
	assert.Equal(t, handler.PaginationMeta{
		TotalItems: 15, TotalPages: 2, CurrentPage: 1, PageSize: 10,
		HasNext: true, NextPage: 2,
	}, first.Page.Meta)

	second := decode[handler.IndexView](t, app.get(t, "/?page=2", nil))
	assert.Len(t, second.Page.Data, 5)
	assert.True(t, second.Page.Meta.HasPrevious)
	assert.False(t, second.Page.Meta.HasNext)

	beyond := decode[handler.IndexView](t, app.get(t, "/?page=99", nil))
	assert.Equal(t, 2, beyond.Page.Meta.CurrentPage)
	assert.Equal(t, second.Page.Data, beyond.Page.Data)

	junk := decode[handler.IndexView](t, app.get(t, "/?page=abc", nil))
	assert.Equal(t, 1, junk.Page.Meta.CurrentPage)
}

func TestIndex_PageCountFollowsPageSize(t *testing.T) {
	app := newTestApp(t, withPageSize(4))
	author := app.user(t, "auth")
	for i := 0; i < 15; i++ {
		app.post(t, author, nil, "text")
	}

	page := decode[handler.IndexView](t, app.get(t, "/?page=4", nil))
	assert.Equal(t, 4, page.Page.Meta.TotalPages)
	assert.Len(t, page.Page.Data, 3)
}

func TestIndex_EmptySiteHasOnePage(t *testing.T) {
	app := newTestApp(t)
	page := decode[handler.IndexView](t, app.get(t, "/?page=3", nil))
	assert.Empty(t, page.Page.Data)
	assert.Equal(t, 1, page.Page.Meta.TotalPages)
	assert.Equal(t, 1, page.Page.Meta.CurrentPage)
}

func TestIndex_ServedFromCacheUntilExpiry(t *testing.T) {
	app := newTestApp(t, withCache(&memoryCache{entries: map[string][]byte{}}))
	author := app.user(t, "auth")
	app.post(t, author, nil, "first")

	before := app.get(t, "/", nil)
	app.post(t, author, nil, "second")
	after := app.get(t, "/", nil)

	assert.Equal(t, before.Body.String(), after.Body.String())
	fresh := decode[handler.IndexView](t, app.get(t, "/?page=1", nil))
	assert.EqualValues(t, 2, fresh.Page.Meta.TotalItems)
}

func TestGroupPosts(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "auth")
	g1, g2 := app.group(t, "test-slug"), app.group(t, "other")
	mine := app.post(t, author, g1, "в группе")
	app.post(t, author, g2, "в другой группе")
	app.post(t, author, nil, "без группы")

	view := decode[handler.GroupPostsView](t, app.get(t, "/group/test-slug/", nil))
	assert.Equal(t, "test-slug", view.Group.Slug)
	assert.Equal(t, "Тестовое описание", view.Group.Description)
	require.Len(t, view.Page.Data, 1)
	assert.Equal(t, mine.ID, view.Page.Data[0].ID)
	require.NotNil(t, view.Page.Data[0].Group)
	assert.Equal(t, "test-slug", view.Page.Data[0].Group.Slug)

	assert.Equal(t, http.StatusNotFound, app.get(t, "/group/missing/", nil).Code)
}

func TestProfile(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "leo")
	reader := app.user(t, "reader")
	other := app.user(t, "other")
	app.post(t, author, nil, "один")
	app.post(t, author, nil, "два")
	app.post(t, other, nil, "чужой")
	_, err := app.store.Follow(context.Background(), reader.ID, author.ID)
	require.NoError(t, err)

	view := decode[handler.ProfileView](t, app.get(t, "/profile/leo/", reader))
	assert.Equal(t, "leo", view.Author.Username)
	assert.EqualValues(t, 2, view.PostsCount)
	assert.EqualValues(t, 1, view.FollowersCount)
	assert.True(t, view.Following)
	require.Len(t, view.Page.Data, 2)
	for _, p := range view.Page.Data {
		assert.Equal(t, author.ID, p.Author.ID)
	}

	anonymous := decode[handler.ProfileView](t, app.get(t, "/profile/leo/", nil))
	assert.False(t, anonymous.Following)

	assert.Equal(t, http.StatusNotFound, app.get(t, "/profile/nobody/", nil).Code)
}

func TestPostDetail(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "auth")
	commenter := app.user(t, "commenter")
	post := app.post(t, author, nil, "Тестовая запись")
	app.post(t, author, nil, "ещё одна")
	require.NoError(t, app.store.CreateComment(context.Background(), &models.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "Отличный пост"}))

	anon := decode[handler.PostDetailView](t, app.get(t, idPath("/posts/", post.ID, "/"), nil))
	assert.Equal(t, "Тестовая запись", anon.Post.Text)
	assert.Equal(t, "auth", anon.Post.Author.Username)
	assert.EqualValues(t, 2, anon.AuthorPostsCount)
	require.Len(t, anon.Comments, 1)
	assert.Equal(t, "commenter", anon.Comments[0].Author.Username)
	assert.Nil(t, anon.Form)

	signedIn := decode[handler.PostDetailView](t, app.get(t, idPath("/posts/", post.ID, "/"), commenter))
	require.NotNil(t, signedIn.Form)
	assert.Empty(t, signedIn.Form.Text)

	assert.Equal(t, http.StatusNotFound, app.get(t, "/posts/999/", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.get(t, "/posts/abc/", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	author := app.user(t, "auth")
	app.postForm(t, "/create/", url.Values{"text": {"hello"}}, author)

	w := app.get(t, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "yatube_posts_created_total 1")
	assert.Contains(t, w.Body.String(), "yatube_http_requests_total")
}

func TestSwaggerIsServed(t *testing.T) {
	app := newTestApp(t)
	w := app.get(t, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Yatube API")
}

// multipartBody builds a post form with an optional image.
func multipartBody(t *testing.T, fields map[string]string, image []byte) (io.Reader, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "small.gif")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}
