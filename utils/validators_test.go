package utils

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name  string `json:"name" binding:"min=3"`
	Email string `json:"email" binding:"email"`
}

var signupMessages = map[string]string{
	"name":  "Enter a valid Name",
	"email": "Enter a valid Email",
}

func init() {
	gin.SetMode(gin.TestMode)
	InitValidator()
}

func bindBody(t *testing.T, body string) error {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req signupRequest
	return BindJSON(c, &req)
}

func TestBindJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPaths []string
		wantMsgs  []string
	}{
		{
			name: "valid",
			body: `{"name":"Ann","email":"a@x.com"}`,
		},
		{
			name:      "short name",
			body:      `{"name":"An","email":"a@x.com"}`,
			wantPaths: []string{"name"},
			wantMsgs:  []string{"Enter a valid Name"},
		},
		{
			name:      "bad email and name",
			body:      `{"name":"","email":"nope"}`,
			wantPaths: []string{"name", "email"},
			wantMsgs:  []string{"Enter a valid Name", "Enter a valid Email"},
		},
		{
			name:      "empty body",
			body:      ``,
			wantPaths: []string{"name", "email"},
			wantMsgs:  []string{"Enter a valid Name", "Enter a valid Email"},
		},
		{
			name:      "malformed json",
			body:      `{"name":`,
			wantPaths: []string{""},
			wantMsgs:  []string{"Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bindBody(t, tt.body)
			if tt.wantPaths == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)

			fields := FieldErrors(err, signupMessages)
			require.Len(t, fields, len(tt.wantPaths))
			for i, f := range fields {
				assert.Equal(t, tt.wantPaths[i], f.Path)
				assert.Equal(t, tt.wantMsgs[i], f.Msg)
				assert.Equal(t, "body", f.Location)
			}
		})
	}
}
