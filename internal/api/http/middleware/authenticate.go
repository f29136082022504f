package middleware

import (
	"net/http"

	"github.com/Anotida-Much/task-manager/internal/api/http/handler"
	"github.com/Anotida-Much/task-manager/internal/logger"
	"github.com/Anotida-Much/task-manager/internal/model"
	"github.com/Anotida-Much/task-manager/internal/token"
)

// TokenVerifier validates bearer tokens.
type TokenVerifier interface {
	Parse(token string) (model.TokenClaims, error)
}

// Authenticate gates protected routes: it extracts and verifies the
// bearer token and injects the identity into the request context. A
// missing or malformed header is rejected before verification with 401;
// a token that fails verification with 403.
type Authenticate struct {
	tokenVerifier  TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenVerifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenVerifier: tokenVerifier, contextManager: contextManager, logger: logger}
}

// Handle wraps next behind the token check.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headerValue := r.Header.Get("Authorization")
		if headerValue == "" {
			handler.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		tokenString, err := token.ExtractFromHeader(headerValue)
		if err != nil {
			handler.WriteError(w, http.StatusUnauthorized, "Access token required")
			return
		}

		claims, err := m.tokenVerifier.Parse(tokenString)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			handler.WriteError(w, http.StatusForbidden, "Invalid or expired token")
			return
		}

		identity := model.Identity{UserID: claims.UserID, Email: claims.Email}
		next.ServeHTTP(w, r.WithContext(m.contextManager.SetIdentityToContext(r.Context(), identity)))
	})
}
