package router

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Anotida-Much/task-manager/internal/api/http/handler"
	"github.com/Anotida-Much/task-manager/internal/api/http/middleware"
	"github.com/Anotida-Much/task-manager/internal/logger"
	"github.com/Anotida-Much/task-manager/internal/model"
)

// Router wires handlers and middleware into the HTTP routing table.
type Router struct {
	authService    handler.AuthService
	taskService    handler.TaskService
	tokenVerifier  middleware.TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
	allowedOrigins []string
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	taskService handler.TaskService,
	tokenVerifier middleware.TokenVerifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
	allowedOrigins []string,
) *Router {
	return &Router{
		authService:    authService,
		taskService:    taskService,
		tokenVerifier:  tokenVerifier,
		contextManager: contextManager,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
}

// Register builds the routing table. Auth endpoints are public; every
// task endpoint and the profile endpoint sit behind the session guard.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenVerifier, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	taskHandler := handler.NewTask(r.taskService, r.contextManager, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handle)

	m.HandleFunc("/api/auth/register", authHandler.Register).Methods(http.MethodPost)
	m.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost)
	m.Handle("/api/auth/profile", authenticate.Handle(http.HandlerFunc(authHandler.Profile))).Methods(http.MethodGet)

	m.Handle("/api/tasks", authenticate.Handle(http.HandlerFunc(taskHandler.List))).Methods(http.MethodGet)
	m.Handle("/api/tasks", authenticate.Handle(http.HandlerFunc(taskHandler.Create))).Methods(http.MethodPost)
	m.Handle("/api/tasks/{id}", authenticate.Handle(http.HandlerFunc(taskHandler.Update))).Methods(http.MethodPut)
	m.Handle("/api/tasks/{id}", authenticate.Handle(http.HandlerFunc(taskHandler.Delete))).Methods(http.MethodDelete)

	origins := r.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
		r.logger.Info("CORS allowed origins not configured, allowing all origins")
	}

	return gorillahandlers.CORS(
		gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedOrigins(origins),
	)(m)
}
