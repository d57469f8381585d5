package mcp

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func post(t *testing.T, srv *httptest.Server, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(srv.URL+"/mcp", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHTTPToolCall(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).HTTPHandler())
	defer srv.Close()

	resp, data := post(t, srv, `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"echo","arguments":{"text":"over http"}}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out JSONRPCResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Nil(t, out.Error)
	assert.JSONEq(t, `1`, string(out.ID))
	assert.Contains(t, string(data), `"text":"over http"`)
}

func TestHTTPNotificationAccepted(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).HTTPHandler())
	defer srv.Close()

	resp, data := post(t, srv, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Empty(t, data)
}

func TestHTTPParseError(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).HTTPHandler())
	defer srv.Close()

	resp, data := post(t, srv, `garbage`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), `"code":-32700`)
}

func TestHTTPHealthz(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).HTTPHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["tools"])
}

func TestHTTPRejectsGetOnMCP(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).HTTPHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/mcp")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
