package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adedejiayobami0-ux/scene-backend/internal/delivery/http/helpers"
	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthController_SignUp(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}

	tests := []struct {
		name        string
		body        string
		svc         *fakeUserService
		wantStatus  int
		wantErrCode string
	}{
		{
			name:       "success",
			body:       `{"email":"ada@example.com","name":"Ada","password":"supersecret"}`,
			svc:        &fakeUserService{token: "tok", user: user},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "missing password",
			body:        `{"email":"ada@example.com","name":"Ada"}`,
			svc:         &fakeUserService{},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "duplicate email",
			body:        `{"email":"ada@example.com","name":"Ada","password":"supersecret"}`,
			svc:         &fakeUserService{signUpErr: domain.ErrDuplicateEmail},
			wantStatus:  http.StatusConflict,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
		{
			name:        "invalid email",
			body:        `{"email":"nope","name":"Ada","password":"supersecret"}`,
			svc:         &fakeUserService{signUpErr: domain.ErrInvalidInput},
			wantStatus:  http.StatusBadRequest,
			wantErrCode: helpers.ErrCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAuthController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			c.SignUp(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataMap, ok := envelope.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "tok", dataMap["token"])
				userMap, ok := dataMap["user"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "ada@example.com", userMap["email"])
				assert.NotContains(t, userMap, "password_hash", "hash must never serialize")
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantErrCode, envelope.Error.Code)
			}
		})
	}
}

func TestAuthController_LogIn(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "ada@example.com", Name: "Ada"}

	tests := []struct {
		name       string
		body       string
		svc        *fakeUserService
		wantStatus int
	}{
		{
			name:       "success",
			body:       `{"email":"ada@example.com","password":"supersecret"}`,
			svc:        &fakeUserService{token: "tok", user: user},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad credentials",
			body:       `{"email":"ada@example.com","password":"wrong"}`,
			svc:        &fakeUserService{logInErr: domain.ErrForbidden},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing email",
			body:       `{"password":"supersecret"}`,
			svc:        &fakeUserService{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAuthController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			c.LogIn(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusOK {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				dataMap, ok := envelope.Data.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "tok", dataMap["token"])
			}
		})
	}
}
