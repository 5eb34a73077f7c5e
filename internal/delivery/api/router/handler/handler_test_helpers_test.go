package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/response"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/api/validator"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSessionID = "session-0001"

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newTestContext builds a context for one request. A non-empty body is sent as JSON.
func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// newSessionContext is newTestContext with the session middleware already applied.
func newSessionContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newTestContext(e, method, target, body)
	deliverycontext.SetSessionID(c, testSessionID)

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *response.ErrorInfo {
	t.Helper()

	require.Equal(t, status, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)

	return env.Error
}
