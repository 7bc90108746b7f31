package httpserver_test

import (
	"encoding/json"
	"io"
	"moviecatalog/httpserver"
	"moviecatalog/pkg/config"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) httpserver.MessageResponse {
	t.Helper()
	var resp httpserver.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "response should be a JSON message: %s", rec.Body.String())
	return resp
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "cannot decode response: %s", rec.Body.String())
}

func serve(server *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, path string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(method, path, nil), httptest.NewRecorder()
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
