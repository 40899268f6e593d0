package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewBody struct {
	Content string `json:"content" binding:"required,notblank"`
	Score   int    `json:"score" binding:"score"`
	Email   string `json:"email" binding:"omitempty,email"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var in reviewBody
	return c.ShouldBindJSON(&in)
}

func TestToDetailsUsesJSONNames(t *testing.T) {
	Init()

	err := bind(t, `{"content":"   ","score":9,"email":"nope"}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must not be blank", details["content"])
	assert.Equal(t, "must be between 1 and 5", details["score"])
	assert.Equal(t, "must be a valid email", details["email"])
}

func TestToDetailsInvalidJSON(t *testing.T) {
	Init()

	err := bind(t, `{"content":`)
	require.Error(t, err)
	assert.Contains(t, ToDetails(err), "payload")
	assert.Nil(t, ToDetails(nil))
}

func TestValidPayload(t *testing.T) {
	Init()
	assert.NoError(t, bind(t, `{"content":"good","score":4}`))
}
