package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatube/backend/internal/models"
	"yatube/backend/internal/store"
	"yatube/backend/pkg/jwt"
)

const secret = "test-secret"

type fakeUsers map[uint]*models.User

func (f fakeUsers) UserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newUser(id uint, role string) *models.User {
	u := &models.User{Username: "user", Role: role}
	u.ID = id
	return u
}

func token(t *testing.T, id uint) string {
	t.Helper()
	tok, err := jwt.GenerateToken(id, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func whoAmI(users UserLookup, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(Authenticate(secret, users))
	handlers := append(extra, func(c *gin.Context) {
		id, ok := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "ok": ok})
	})
	r.GET("/*path", handlers...)
	return r
}

func TestAuthenticate_BearerAndCookie(t *testing.T) {
	users := fakeUsers{7: newUser(7, models.RoleUser)}
	r := whoAmI(users)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, 7))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"id":7,"ok":true}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token(t, 7)})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"id":7,"ok":true}`, w.Body.String())
}

func TestAuthenticate_AnonymousOnBadOrStaleToken(t *testing.T) {
	r := whoAmI(fakeUsers{})

	for name, header := range map[string]string{
		"none":         "",
		"garbage":      "Bearer nope",
		"wrong scheme": "Basic " + token(t, 7),
		"deleted user": "Bearer " + token(t, 7),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"id":0,"ok":false}`, w.Body.String())
		})
	}
}

func TestRequireLogin_RedirectsWithNext(t *testing.T) {
	r := whoAmI(fakeUsers{}, RequireLogin("/auth/login/"))

	req := httptest.NewRequest(http.MethodGet, "/create/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login/?next=/create/", w.Header().Get("Location"))
}

func TestRequireLogin_PassesAuthenticated(t *testing.T) {
	r := whoAmI(fakeUsers{3: newUser(3, models.RoleUser)}, RequireLogin("/auth/login/"))

	req := httptest.NewRequest(http.MethodGet, "/follow/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, 3))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRedirect_EscapesQuery(t *testing.T) {
	assert.Equal(t, "/auth/login/?next=/follow/%3Fpage%3D2%26x%3D1", LoginRedirect("/auth/login/", "/follow/?page=2&x=1"))
}

func TestAdminMiddleware(t *testing.T) {
	users := fakeUsers{1: newUser(1, models.RoleAdmin), 2: newUser(2, models.RoleUser)}
	r := whoAmI(users, AdminMiddleware())

	tests := []struct {
		name string
		id   uint
		want int
	}{
		{"anonymous", 0, http.StatusUnauthorized},
		{"regular user", 2, http.StatusForbidden},
		{"admin", 1, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/groups/", nil)
			if tt.id != 0 {
				req.Header.Set("Authorization", "Bearer "+token(t, tt.id))
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestPredicates(t *testing.T) {
	post := &models.Post{ID: 1, AuthorID: 5}
	assert.True(t, CanEditPost(5, post))
	assert.False(t, CanEditPost(6, post))
	assert.False(t, CanEditPost(0, post))
	assert.False(t, CanEditPost(5, nil))

	assert.True(t, CanFollow(1, 2))
	assert.False(t, CanFollow(1, 1))
	assert.False(t, CanFollow(0, 2))
}
