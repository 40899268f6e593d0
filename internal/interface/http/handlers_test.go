package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/job-recruitment/internal/application"
	"github.com/oksasatya/job-recruitment/internal/domain/entity"
	"github.com/oksasatya/job-recruitment/internal/domain/errs"
	"github.com/oksasatya/job-recruitment/internal/infrastructure/memory"
	"github.com/oksasatya/job-recruitment/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

func TestStatusOf(t *testing.T) {
	cases := map[int]error{
		http.StatusBadRequest:          errs.InvalidArgument("bad"),
		http.StatusConflict:            fmt.Errorf("wrapped: %w", errs.InvalidState("state")),
		http.StatusForbidden:           errs.Unauthorized("nope"),
		http.StatusNotFound:            errs.NotFound("team", "t-1"),
		http.StatusUnauthorized:        application.ErrInvalidCredentials,
		http.StatusInternalServerError: errors.New("db down"),
	}
	for want, err := range cases {
		assert.Equal(t, want, statusOf(err), err.Error())
	}
}

func TestFailHidesInternalErrors(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	fail(c, logger, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password authentication")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

type memUploader struct {
	paths []string
	body  []byte
}

func (u *memUploader) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	u.paths = append(u.paths, objectPath)
	u.body = b
	return "https://storage.example.com/bucket/" + objectPath, nil
}

func logoRequest(t *testing.T, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="logo"; filename="Logo.PNG"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/teams/x/logo", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func teamFixture(t *testing.T) (*TeamHandler, *memUploader, *entity.Team) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Now().UTC()

	leader, err := entity.NewUser("lee@example.com", "hash", "lee", "", 30, now)
	require.NoError(t, err)
	require.NoError(t, store.Users().Create(ctx, leader))
	team, err := entity.NewTeam("Core", "", "", 2, leader.ID, now)
	require.NoError(t, err)
	require.NoError(t, store.Teams().Create(ctx, team))

	logger, _ := logtest.NewNullLogger()
	up := &memUploader{}
	svc := application.NewTeamService(store.Teams(), store.Users(), store, up, logger)
	return NewTeamHandler(svc, logger), up, team
}

func serveAs(userID string, h gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/teams/:id/logo", func(c *gin.Context) { c.Set("userID", userID) }, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadLogo(t *testing.T) {
	h, up, team := teamFixture(t)

	req := logoRequest(t, "image/png", []byte("png-bytes"))
	req.URL.Path = "/teams/" + team.ID + "/logo"
	w := serveAs(team.LeaderID, h.UploadLogo, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.Len(t, up.paths, 1)
	assert.Regexp(t, `^logos/`+team.ID+`/[0-9a-f-]{36}\.png$`, up.paths[0])
	assert.Equal(t, "png-bytes", string(up.body))

	var env struct {
		Data teamView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "https://storage.example.com/bucket/"+up.paths[0], env.Data.Logo)
}

func TestUploadLogoRejections(t *testing.T) {
	h, up, team := teamFixture(t)

	req := logoRequest(t, "application/pdf", []byte("%PDF"))
	req.URL.Path = "/teams/" + team.ID + "/logo"
	assert.Equal(t, http.StatusBadRequest, serveAs(team.LeaderID, h.UploadLogo, req).Code)

	req = logoRequest(t, "image/png", bytes.Repeat([]byte{1}, maxLogoBytes+1))
	req.URL.Path = "/teams/" + team.ID + "/logo"
	assert.Equal(t, http.StatusBadRequest, serveAs(team.LeaderID, h.UploadLogo, req).Code)

	req = logoRequest(t, "image/png", []byte("png"))
	req.URL.Path = "/teams/" + team.ID + "/logo"
	assert.Equal(t, http.StatusForbidden, serveAs("someone-else", h.UploadLogo, req).Code)

	assert.Empty(t, up.paths, "nothing is uploaded for rejected requests")
}
