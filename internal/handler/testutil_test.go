package handler_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEcho() *echo.Echo {
	return echo.New()
}

func testLogger(_ *testing.T) *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

type response struct {
	status int
	body   string
}

func doRequest(t *testing.T, env *testEnv, method, path, body, contentType string) response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, env.server.URL+path, reader)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return response{status: resp.StatusCode, body: readBody(t, resp)}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}
