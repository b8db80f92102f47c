package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/movilidad-dev/movilidad/db"
	"github.com/movilidad-dev/movilidad/internal/auth"
	"github.com/movilidad-dev/movilidad/internal/router"
	"github.com/stretchr/testify/require"
)

// setupRouter gives each test a fresh in-memory store and a fully wired
// engine. The leaderboard cache and mailer stay nil, which disables both.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.SetSecret("test-secret")

	require.NoError(t, db.ConnectDatabase("", ":memory:"))
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter([]string{"http://localhost:3000"})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func register(t *testing.T, r *gin.Engine, email, password, fullName string) *httptest.ResponseRecorder {
	t.Helper()

	return doJSON(t, r, http.MethodPost, "/register", gin.H{
		"email":    email,
		"password": password,
		"fullName": fullName,
	}, nil)
}
