package handler

import (
	"bytes"
	"encoding/json"
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
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()
}

type testEnv struct {
	router  *gin.Engine
	users   *testutils.UsersRepo
	notes   *testutils.NotesRepo
	revoker *testutils.Revoker
	tokens  *services.TokenService
}

// newTestEnv wires the handlers over in-memory stores. With revocation
// false the logout route reports revocation as disabled.
func newTestEnv(t *testing.T, revocation bool) *testEnv {
	t.Helper()

	env := &testEnv{
		users:  testutils.NewUsersRepo(),
		notes:  testutils.NewNotesRepo(),
		tokens: services.NewTokenService("test_secret_key", 0),
	}
	log := logger.Discard()

	var (
		revoker usecase.TokenRevoker
		checker middleware.RevocationChecker
	)
	if revocation {
		env.revoker = testutils.NewRevoker()
		revoker, checker = env.revoker, env.revoker
	}

	userService := usecase.NewUserService(env.users, env.tokens, revoker)
	notesService := usecase.NewNotesService(env.notes)
	gate := middleware.NewAuthGate(env.tokens, checker, log)

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/create-user", func(c *gin.Context) { CreateUserHandler(c, userService, log) })
	auth.POST("/login", func(c *gin.Context) { LoginHandler(c, userService, log) })
	auth.GET("/get-user", gate.Middleware(), func(c *gin.Context) { GetUserHandler(c, userService, log) })
	auth.POST("/logout", gate.Middleware(), func(c *gin.Context) { LogoutHandler(c, userService, log) })

	notes := r.Group("/api/notes", gate.Middleware())
	notes.GET("/fetch-all-notes", func(c *gin.Context) { FetchAllNotesHandler(c, notesService, log) })
	notes.POST("/add-note", func(c *gin.Context) { AddNoteHandler(c, notesService, log) })
	notes.PUT("/update-note/:id", func(c *gin.Context) { UpdateNoteHandler(c, notesService, log) })
	notes.DELETE("/delete-note/:id", func(c *gin.Context) { DeleteNoteHandler(c, notesService, log) })

	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthTokenHeader, token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its token.
func (e *testEnv) register(t *testing.T, name, email, password string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/create-user", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		AuthToken string `json:"authToken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.AuthToken
}

type errorBody struct {
	Success bool            `json:"success"`
	Error   json.RawMessage `json:"error"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (string, []utils.FieldError) {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Success)

	var msg string
	if err := json.Unmarshal(body.Error, &msg); err == nil {
		return msg, nil
	}
	var list []utils.FieldError
	require.NoError(t, json.Unmarshal(body.Error, &list))
	return "", list
}
