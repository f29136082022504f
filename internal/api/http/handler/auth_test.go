package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/Anotida-Much/task-manager/internal/api/http/context"
	"github.com/Anotida-Much/task-manager/internal/mocks"
	"github.com/Anotida-Much/task-manager/internal/model"
	"github.com/Anotida-Much/task-manager/internal/service"
	"github.com/Anotida-Much/task-manager/internal/testutil"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuth_Register_Created(t *testing.T) {
	svc := &mocks.AuthService{}
	result := service.AuthResult{
		User:  model.UserPublic{ID: 1, Email: "a@b.c", Name: "Alice"},
		Token: "token-1",
	}
	svc.On("Register", mock.Anything, "a@b.c", "secret1", "Alice").Return(result, nil)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"a@b.c","password":"secret1","name":"Alice"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])
	data := body["data"].(map[string]any)
	assert.Equal(t, "token-1", data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "a@b.c", user["email"])
	assert.NotContains(t, user, "password_hash")
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	svc := &mocks.AuthService{}
	svc.On("Register", mock.Anything, "a@b.c", "secret1", "Alice").Return(service.AuthResult{}, model.ErrEmailTaken)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"a@b.c","password":"secret1","name":"Alice"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "User with this email already exists", body["error"])
}

func TestAuth_Register_ValidationFailure(t *testing.T) {
	svc := &mocks.AuthService{}

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"a@b.c","password":"short","name":"Alice"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Register")
}

func TestAuth_Register_MalformedBody(t *testing.T) {
	svc := &mocks.AuthService{}

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Login_Success(t *testing.T) {
	svc := &mocks.AuthService{}
	result := service.AuthResult{
		User:  model.UserPublic{ID: 1, Email: "a@b.c"},
		Token: "token-1",
	}
	svc.On("Login", mock.Anything, "a@b.c", "secret1").Return(result, nil)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"secret1"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Login successful", body["message"])
}

func TestAuth_Login_BadCredentials(t *testing.T) {
	svc := &mocks.AuthService{}
	svc.On("Login", mock.Anything, "a@b.c", "wrong12").Return(service.AuthResult{}, model.ErrInvalidCredentials)

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"wrong12"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "Invalid email or password", body["error"])
}

func TestAuth_Profile_Success(t *testing.T) {
	svc := &mocks.AuthService{}
	user := model.UserPublic{ID: 7, Email: "a@b.c", Name: "Alice"}
	svc.On("Profile", mock.Anything, int64(7)).Return(user, nil)

	cm := httpctx.NewManager()
	h := NewAuth(svc, cm, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(cm.SetIdentityToContext(req.Context(), model.Identity{UserID: 7, Email: "a@b.c"}))
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(7), data["id"])
}

func TestAuth_Profile_UserGone(t *testing.T) {
	svc := &mocks.AuthService{}
	svc.On("Profile", mock.Anything, int64(7)).Return(model.UserPublic{}, model.ErrNotFound)

	cm := httpctx.NewManager()
	h := NewAuth(svc, cm, testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(cm.SetIdentityToContext(req.Context(), model.Identity{UserID: 7}))
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "User not found", body["error"])
}

func TestAuth_Profile_NoIdentity(t *testing.T) {
	svc := &mocks.AuthService{}

	h := NewAuth(svc, httpctx.NewManager(), testutil.MakeNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
