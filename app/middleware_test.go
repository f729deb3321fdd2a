package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string {
	return &s
}

func TestRecoverPanic(t *testing.T) {
	app, _ := newTestApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
}

func TestAuthenticate(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	token := ts.registerAndLogin(t, "authuser", "sekret")

	tests := []struct {
		name           string
		token          *string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "no authentication header",
			token:          nil,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "token missing or invalid",
		},
		{
			name:           "invalid token",
			token:          strptr("not-a-real-token"),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "token missing or invalid",
		},
		{
			name:           "valid token",
			token:          &token,
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := map[string]any{"title": "Auth test blog", "url": "https://example.com"}
			status, _, body := ts.post(t, "/api/blogs", payload, tt.token)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	app, _ := newTestApplication(t)
	ts := newTestServer(t, app.routes())

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/blogs", nil)
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Basic abc123")

	res, err := ts.Client().Do(req)
	assert.NoError(t, err)

	status, _, body := readResponse(t, res)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "token missing or invalid", body["error"])
}
