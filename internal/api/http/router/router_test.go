package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/Anotida-Much/task-manager/internal/api/http/context"
	"github.com/Anotida-Much/task-manager/internal/mocks"
	"github.com/Anotida-Much/task-manager/internal/model"
	"github.com/Anotida-Much/task-manager/internal/service"
	"github.com/Anotida-Much/task-manager/internal/testutil"
)

func makeHandler(authSvc *mocks.AuthService, taskSvc *mocks.TaskService, verifier *mocks.TokenManager) http.Handler {
	return New(
		authSvc,
		taskSvc,
		verifier,
		httpctx.NewManager(),
		testutil.MakeNoopLogger(),
		nil,
	).Register()
}

func TestRouter_RegisterRouteIsPublic(t *testing.T) {
	authSvc := &mocks.AuthService{}
	authSvc.On("Register", mock.Anything, "a@b.c", "secret1", "Alice").
		Return(service.AuthResult{User: model.UserPublic{ID: 1}, Token: "tok"}, nil)

	h := makeHandler(authSvc, &mocks.TaskService{}, &mocks.TokenManager{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"a@b.c","password":"secret1","name":"Alice"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_TasksRequireToken(t *testing.T) {
	taskSvc := &mocks.TaskService{}

	h := makeHandler(&mocks.AuthService{}, taskSvc, &mocks.TokenManager{})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	taskSvc.AssertNotCalled(t, "List")
}

func TestRouter_TasksWithValidToken(t *testing.T) {
	taskSvc := &mocks.TaskService{}
	taskSvc.On("List", mock.Anything, int64(7), model.TaskFilter{}, 1, 10).
		Return(model.TaskPage{Tasks: []model.Task{}, Total: 0}, nil)

	verifier := &mocks.TokenManager{}
	verifier.On("Parse", "good-token").Return(model.TokenClaims{
		UserID:    7,
		Email:     "a@b.c",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	h := makeHandler(&mocks.AuthService{}, taskSvc, verifier)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	taskSvc.AssertExpectations(t)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	h := makeHandler(&mocks.AuthService{}, &mocks.TaskService{}, &mocks.TokenManager{})

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/register", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := makeHandler(&mocks.AuthService{}, &mocks.TaskService{}, &mocks.TokenManager{})

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
