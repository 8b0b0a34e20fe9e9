package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/handler"
	"billbook/internal/middleware"
	"billbook/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := validator.RegisterBindings(); err != nil {
		panic(err)
	}
}

func testSession() domain.Session {
	return domain.Session{
		CompanyID: uuid.New(),
		UserID:    uuid.New(),
		Email:     "owner@sharmatraders.in",
		Role:      domain.RoleAdmin,
		HomeState: "Maharashtra",
	}
}

// newContext builds a test context carrying s. A nil body sends no payload;
// anything else is JSON encoded unless it is already a []byte.
func newContext(t *testing.T, method, target string, body interface{}, s *domain.Session) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		c.Set(middleware.ContextKeySession, *s)
	}
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
