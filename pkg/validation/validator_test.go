package validation

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name   string `json:"name" binding:"required,min=3,max=50"`
	Email  string `json:"email" binding:"required,email"`
	Status string `json:"status" binding:"omitempty,oneof=pending in-progress completed"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var p samplePayload
	return c.ShouldBindJSON(&p)
}

func TestToDetails_UsesJSONFieldNames(t *testing.T) {
	Init()

	err := bindSample(t, `{"name":"ab","email":"nope","status":"done"}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be at least 3 characters long", details["name"])
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "must be one of: pending, in-progress, completed", details["status"])
}

func TestToDetails_Required(t *testing.T) {
	Init()

	err := bindSample(t, `{}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "is required", details["name"])
	assert.Equal(t, "is required", details["email"])
	_, ok := details["status"]
	assert.False(t, ok, "optional field should not be reported")
}

func TestToDetails_InvalidJSON(t *testing.T) {
	err := bindSample(t, `{"name":}`)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, details)
}

func TestToDetails_Nil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
