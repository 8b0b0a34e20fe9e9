package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"billbook/internal/handler"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	c, w := newContext(t, http.MethodGet, "/healthz", nil, nil)
	handler.NewHealthHandler(stubPinger{}).Liveness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(t, http.MethodGet, "/readyz", nil, nil)
	handler.NewHealthHandler(stubPinger{}).Readiness(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(t, http.MethodGet, "/readyz", nil, nil)
	handler.NewHealthHandler(stubPinger{err: errors.New("down")}).Readiness(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable")
}
