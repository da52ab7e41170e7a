package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TestMain wires the suite to a throwaway sqlite store and upload dir so the
// whole flow runs in-process without a server.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	zlog = zap.NewNop().Sugar()
	jwtSecret = []byte("test-signing-secret")

	dir, err := os.MkdirTemp("", "sparksite-test-*")
	if err != nil {
		fmt.Fprintln(os.Stderr, "tempdir:", err)
		os.Exit(1)
	}
	os.Setenv("DB_DRIVER", "sqlite")
	os.Setenv("DB_PATH", filepath.Join(dir, "test.db"))
	os.Setenv("UPLOAD_BASE", filepath.Join(dir, "uploads"))

	initDB()

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newTestRouter() *gin.Engine {
	r := gin.New()
	setupRoutes(r)
	return r
}

// helper to perform requests with auth token
func performRequest(r http.Handler, method, path string, body io.Reader, token string, contentType string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
