package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/Anotida-Much/task-manager/internal/api/http/context"
	"github.com/Anotida-Much/task-manager/internal/mocks"
	"github.com/Anotida-Much/task-manager/internal/model"
	"github.com/Anotida-Much/task-manager/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		parseClaims  model.TokenClaims
		parseErr     error
		wantStatus   int
		wantNextRun  bool
		wantIdentity model.Identity
	}{
		{
			name:        "missing authorization header",
			authHeader:  "",
			wantStatus:  http.StatusUnauthorized,
			wantNextRun: false,
		},
		{
			name:        "header without bearer prefix",
			authHeader:  "Token abc",
			wantStatus:  http.StatusUnauthorized,
			wantNextRun: false,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad-token",
			parseErr:    assert.AnError,
			wantStatus:  http.StatusForbidden,
			wantNextRun: false,
		},
		{
			name:         "valid token",
			authHeader:   "Bearer good-token",
			parseClaims:  model.TokenClaims{UserID: 7, Email: "a@b.c"},
			wantStatus:   http.StatusOK,
			wantNextRun:  true,
			wantIdentity: model.Identity{UserID: 7, Email: "a@b.c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &mocks.TokenManager{}
			if tt.parseErr != nil || tt.wantNextRun {
				verifier.On("Parse", tt.authHeader[len("Bearer "):]).Return(tt.parseClaims, tt.parseErr)
			}

			cm := httpctx.NewManager()
			m := NewAuthenticate(verifier, cm, testutil.MakeNoopLogger())

			nextRun := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextRun = true
				identity, ok := cm.GetIdentityFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, tt.wantIdentity, identity)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextRun, nextRun)
			if !tt.wantNextRun {
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}
