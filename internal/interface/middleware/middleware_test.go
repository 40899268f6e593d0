package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

type sessions map[string]string

func (s sessions) SessionValid(_ context.Context, userID, sid string) bool {
	return s[userID] == sid
}

func newJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("access", "refresh", time.Minute, time.Hour)
}

func whoami(c *gin.Context) { c.String(http.StatusOK, c.GetString("userID")) }

func TestAuthAcceptsBearerAndCookie(t *testing.T) {
	jwt := newJWT()
	token, _, err := jwt.GenerateAccessToken("u-1", "s-1")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", Auth(jwt, sessions{"u-1": "s-1"}), whoami)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejects(t *testing.T) {
	jwt := newJWT()
	stale, _, err := jwt.GenerateAccessToken("u-1", "old")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", Auth(jwt, sessions{"u-1": "s-1"}), whoami)

	for name, header := range map[string]string{
		"missing":       "",
		"garbage":       "Bearer not-a-token",
		"stale session": "Bearer " + stale,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestRateLimitBlocksAfterMax(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.GET("/ping", RateLimit(rdb, 2, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
		if i == 2 {
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	mr.FastForward(time.Minute)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimitAllowBypass(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.Use(RealIP())
	r.GET("/vars", RateLimit(rdb, 1, time.Minute, KeyByIP(), AllowPrivateIP()), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/vars", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRequestIDAndAccessLog(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	r := gin.New()
	r.Use(RequestIDMiddleware(), RealIP(), AccessLog(logger))
	r.GET("/teams/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	const id = "6f1c1b1e-8f0e-4a36-9d7c-2d5c1f0f4a11"
	req := httptest.NewRequest(http.MethodGet, "/teams/abc", nil)
	req.Header.Set("X-Request-ID", id)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, id, entry.Data["request_id"])
	assert.Equal(t, "/teams/:id", entry.Data["path"])
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.Equal(t, "warning", entry.Level.String())
}

func TestRealIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "cloudflare first", headers: map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Forwarded-For": "198.51.100.1"}, want: "203.0.113.9"},
		{name: "left-most forwarded", headers: map[string]string{"X-Forwarded-For": " 198.51.100.1 , 10.0.0.1"}, want: "198.51.100.1"},
		{name: "invalid forwarded skipped", headers: map[string]string{"X-Forwarded-For": "unknown", "X-Real-IP": "198.51.100.2"}, want: "198.51.100.2"},
		{name: "remote addr", want: "192.0.2.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RealIP())
			var got string
			r.GET("/ip", func(c *gin.Context) { got = c.GetString("real_ip") })

			req := httptest.NewRequest(http.MethodGet, "/ip", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			r.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tc.want, got)
		})
	}
}
