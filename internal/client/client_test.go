package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jpl-au/protect-mcp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method      string
	path        string
	apiKey      string
	contentType string
	body        string
}

// newServer starts an httptest server that records the last request and
// replies with status, content type and body.
func newServer(t *testing.T, status int, contentType, body string) (*Client, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		*got = captured{
			method:      r.Method,
			path:        r.URL.EscapedPath(),
			apiKey:      r.Header.Get(APIKeyHeader),
			contentType: r.Header.Get("Content-Type"),
			body:        string(data),
		}
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	c := New(&config.Config{Host: srv.URL, APIKey: "secret", VerifySSL: true, Timeout: 5 * time.Second})
	return c, got
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://10.0.0.1"+BasePath, baseURL("10.0.0.1"))
	assert.Equal(t, "https://protect.local"+BasePath, baseURL("protect.local/"))
	assert.Equal(t, "http://127.0.0.1:8080"+BasePath, baseURL("http://127.0.0.1:8080"))
}

func TestDo(t *testing.T) {
	t.Run("get returns raw JSON", func(t *testing.T) {
		c, got := newServer(t, http.StatusOK, "application/json; charset=utf-8", `{"b":1,"a":2}`)

		v, err := c.Get(t.Context(), "/cameras/abc")
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`{"b":1,"a":2}`), v)

		assert.Equal(t, http.MethodGet, got.method)
		assert.Equal(t, BasePath+"/cameras/abc", got.path)
		assert.Equal(t, "secret", got.apiKey)
		assert.Empty(t, got.contentType)
		assert.Empty(t, got.body)
	})

	t.Run("patch sends JSON body", func(t *testing.T) {
		c, got := newServer(t, http.StatusOK, "application/json", `{}`)

		_, err := c.Patch(t.Context(), "/lights/l1", map[string]any{"name": "Porch"})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPatch, got.method)
		assert.Equal(t, "application/json", got.contentType)
		assert.JSONEq(t, `{"name":"Porch"}`, got.body)
	})

	t.Run("post without body", func(t *testing.T) {
		c, got := newServer(t, http.StatusOK, "application/json", `{"url":"rtsps://x"}`)

		_, err := c.Post(t.Context(), "/cameras/abc/rtsps-stream", nil)
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, got.method)
		assert.Empty(t, got.body)
	})

	t.Run("delete", func(t *testing.T) {
		c, got := newServer(t, http.StatusNoContent, "", "")

		v, err := c.Delete(t.Context(), "/cameras/abc/rtsps-stream")
		require.NoError(t, err)
		assert.Equal(t, "", v)
		assert.Equal(t, http.MethodDelete, got.method)
	})

	t.Run("text response", func(t *testing.T) {
		c, _ := newServer(t, http.StatusOK, "text/plain", "OK")

		v, err := c.Get(t.Context(), "/meta/info")
		require.NoError(t, err)
		assert.Equal(t, "OK", v)
	})

	t.Run("empty JSON body", func(t *testing.T) {
		c, _ := newServer(t, http.StatusOK, "application/json", "")

		v, err := c.Get(t.Context(), "/meta/info")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		c, _ := newServer(t, http.StatusOK, "application/json", "{not json")

		_, err := c.Get(t.Context(), "/meta/info")
		assert.ErrorIs(t, err, ErrRequest)
	})
}

func TestStatusError(t *testing.T) {
	c, _ := newServer(t, http.StatusNotFound, "text/plain", "camera not found")

	_, err := c.Get(t.Context(), "/cameras/missing")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, "camera not found", se.Body)
	assert.Equal(t, "HTTP 404: camera not found", err.Error())
}

func TestGetBinary(t *testing.T) {
	t.Run("reports content type", func(t *testing.T) {
		c, _ := newServer(t, http.StatusOK, "image/jpeg", "\xff\xd8\xff")

		bin, err := c.GetBinary(t.Context(), "/cameras/abc/snapshot")
		require.NoError(t, err)
		assert.Equal(t, []byte("\xff\xd8\xff"), bin.Data)
		assert.Equal(t, "image/jpeg", bin.MIMEType)
	})

	t.Run("defaults missing content type", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header()["Content-Type"] = nil
			_, _ = w.Write([]byte{0x01, 0x02})
		}))
		t.Cleanup(srv.Close)
		c := New(&config.Config{Host: srv.URL, APIKey: "k", VerifySSL: true, Timeout: time.Second})

		bin, err := c.GetBinary(t.Context(), "/cameras/abc/snapshot")
		require.NoError(t, err)
		assert.Equal(t, DefaultMIMEType, bin.MIMEType)
	})

	t.Run("status error", func(t *testing.T) {
		c, _ := newServer(t, http.StatusInternalServerError, "text/plain", "offline")

		_, err := c.GetBinary(t.Context(), "/cameras/abc/snapshot")
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 500, se.Code)
	})
}

func TestPostBinary(t *testing.T) {
	c, got := newServer(t, http.StatusOK, "application/json", `{"id":"f1"}`)

	v, err := c.PostBinary(t.Context(), "/files/animations", []byte("hello"), "image/gif")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`{"id":"f1"}`), v)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "image/gif", got.contentType)
	assert.Equal(t, "hello", got.body)
	assert.Equal(t, "secret", got.apiKey)
}

func TestTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)

	t.Run("verification rejects self-signed", func(t *testing.T) {
		c := New(&config.Config{Host: srv.URL, APIKey: "k", VerifySSL: true, Timeout: time.Second})
		_, err := c.Get(t.Context(), "/meta/info")
		assert.ErrorIs(t, err, ErrRequest)
	})

	t.Run("verification disabled", func(t *testing.T) {
		c := New(&config.Config{Host: srv.URL, APIKey: "k", VerifySSL: false, Timeout: time.Second})
		_, err := c.Get(t.Context(), "/meta/info")
		assert.NoError(t, err)
	})
}

func TestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	c := New(&config.Config{Host: srv.URL, APIKey: "k", VerifySSL: true, Timeout: 50 * time.Millisecond})
	_, err := c.Get(t.Context(), "/meta/info")
	assert.ErrorIs(t, err, ErrRequest)
}
