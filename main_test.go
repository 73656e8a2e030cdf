package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"inotebook/logger"
	"inotebook/middleware"
	"inotebook/services"
	"inotebook/testutils"
	"inotebook/usecase"
	"inotebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithLogger(t, logger.Discard())
}

func newTestRouterWithLogger(t *testing.T, log *slog.Logger) *gin.Engine {
	t.Helper()
	tokens := services.NewTokenService("test_secret_key", 0)

	return setupRouter(routerDeps{
		Log:          log,
		Users:        usecase.NewUserService(testutils.NewUsersRepo(), tokens, nil),
		Notes:        usecase.NewNotesService(testutils.NewNotesRepo()),
		Gate:         middleware.NewAuthGate(tokens, nil, log),
		MaxBodyBytes: 1 << 20,
	})
}

func call(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestNotebookFlow(t *testing.T) {
	router := newTestRouter(t)

	w, resp := call(t, router, http.MethodPost, "/api/auth/create-user", "", map[string]string{
		"name": "Ann", "email": "a@x.com", "password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := resp["authToken"].(string)
	require.NotEmpty(t, token)

	w, resp = call(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "a@x.com", "password": "wrong",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please try to login with correct credentials", resp["error"])

	w, resp = call(t, router, http.MethodPost, "/api/notes/add-note", token, map[string]string{
		"title": "Shopping", "description": "Buy milk",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	noteID, _ := resp["_id"].(string)
	require.NotEmpty(t, noteID)

	claims, err := services.NewTokenService("test_secret_key", 0).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims.User.ID, resp["user"])

	w, resp = call(t, router, http.MethodPut, "/api/notes/update-note/"+noteID, token, map[string]string{
		"tag": "home",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shopping", resp["title"])
	assert.Equal(t, "Buy milk", resp["description"])
	assert.Equal(t, "home", resp["tag"])

	w, resp = call(t, router, http.MethodDelete, "/api/notes/delete-note/"+noteID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Note has been deleted", resp["Success"])

	w, _ = call(t, router, http.MethodGet, "/api/notes/fetch-all-notes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMiscRoutes(t *testing.T) {
	router := newTestRouter(t)

	w, _ := call(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "iNoteBook", w.Body.String())

	w, resp := call(t, router, http.MethodGet, "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Endpoint not found", resp["error"])
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w, _ = call(t, router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/get-user"},
		{http.MethodPost, "/api/auth/logout"},
		{http.MethodGet, "/api/notes/fetch-all-notes"},
		{http.MethodPost, "/api/notes/add-note"},
		{http.MethodPut, "/api/notes/update-note/64b7f0c2a1e4b5d6c7e8f901"},
		{http.MethodDelete, "/api/notes/delete-note/64b7f0c2a1e4b5d6c7e8f901"},
	}

	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			w, resp := call(t, router, r.method, r.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Please authenticate using a valid token", resp["error"])
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
		})
	}
}

func TestPanicIsLoggedAndCounted(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "info", false)
	require.NoError(t, err)

	router := newTestRouterWithLogger(t, log)
	router.GET("/boom", func(c *gin.Context) {
		panic("handler bug")
	})

	counter := utils.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "500")
	before := testutil.ToFloat64(counter)

	w, resp := call(t, router, http.MethodGet, "/boom", "", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server Error", resp["error"])

	assert.Contains(t, buf.String(), `"msg":"request"`)
	assert.Contains(t, buf.String(), `"status":500`)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
