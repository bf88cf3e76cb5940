// Package mockapi is an in-memory rendition of the AlumniSphere platform
// API. The service tests run against it in-process and cmd/mockapi serves it
// standalone for offline development. It speaks the same wire contract the
// real backend does: /api/v1 resource groups, bearer-token auth, offset
// pagination and "detail"-field error bodies.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/pkg/filestorage"
)

const defaultTokenExpiry = 24 * time.Hour

// Options configure a mock platform server.
type Options struct {
	// JWTSecret signs the bearer tokens the mock hands out at login.
	JWTSecret string
	// UploadDir is where multipart uploads land. Empty disables the upload
	// endpoints' storage (they will reject with 500).
	UploadDir string
	// TokenExpiry bounds issued tokens. Zero selects 24h.
	TokenExpiry time.Duration
	Logger      zerolog.Logger
}

// Server is the assembled mock platform: gin engine over the in-memory store.
type Server struct {
	store   *Store
	tokens  *tokenService
	storage filestorage.Storage
	logger  zerolog.Logger
	engine  *gin.Engine
	http    *http.Server
}

// New assembles a mock platform server with an empty store. Call Seed for
// the default dataset.
func New(opts Options) (*Server, error) {
	expiry := opts.TokenExpiry
	if expiry <= 0 {
		expiry = defaultTokenExpiry
	}

	s := &Server{
		store:  NewStore(),
		tokens: newTokenService(opts.JWTSecret, expiry),
		logger: opts.Logger,
	}

	if opts.UploadDir != "" {
		storage, err := filestorage.NewLocal(opts.UploadDir, "/uploads", opts.Logger)
		if err != nil {
			return nil, err
		}
		s.storage = storage
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery())
	s.registerRoutes()

	if opts.UploadDir != "" {
		s.engine.Static("/uploads", opts.UploadDir)
	}

	return s, nil
}

// Store exposes the backing state so tests can preload fixtures.
func (s *Server) Store() *Store {
	return s.store
}

// Engine returns the gin handler, for mounting inside httptest.Server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires every resource group under /api/v1.
func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(s.optionalAuth())

	auth := v1.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.POST("/logout", s.handleLogout)
		auth.POST("/change-password", s.requireAuth(), s.handleChangePassword)
	}

	universities := v1.Group("/universities")
	{
		universities.GET("", s.handleListUniversities)
		universities.GET("/:id", s.handleGetUniversity)
		universities.GET("/slug/:slug", s.handleGetUniversityBySlug)
	}

	users := v1.Group("/users")
	{
		users.GET("/me", s.requireAuth(), s.handleGetMe)
		users.PATCH("/me", s.requireAuth(), s.handleUpdateMe)
		users.POST("/me/avatar", s.requireAuth(), s.handleUploadAvatar)
		users.GET("/:id", s.handleGetUser)
	}

	events := v1.Group("/events")
	{
		events.GET("", s.handleListEvents)
		events.POST("", s.requireAuth(), s.handleCreateEvent)
		events.GET("/:id", s.handleGetEvent)
		events.PATCH("/:id", s.requireAuth(), s.handleUpdateEvent)
		events.DELETE("/:id", s.requireAuth(), s.handleDeleteEvent)
		events.POST("/:id/register", s.requireAuth(), s.handleRegisterForEvent)
		events.DELETE("/:id/register", s.requireAuth(), s.handleUnregisterFromEvent)
		events.GET("/:id/attendees", s.handleListAttendees)
	}

	posts := v1.Group("/posts")
	{
		posts.GET("", s.handleFeed)
		posts.POST("", s.requireAuth(), s.handleCreatePost)
		posts.GET("/:id", s.handleGetPost)
		posts.PATCH("/:id", s.requireAuth(), s.handleUpdatePost)
		posts.DELETE("/:id", s.requireAuth(), s.handleDeletePost)
		posts.POST("/:id/like", s.requireAuth(), s.handleLikePost)
		posts.DELETE("/:id/like", s.requireAuth(), s.handleUnlikePost)
		posts.POST("/:id/pin", s.requireAuth(), s.requireAdmin(), s.handlePinPost)
		posts.DELETE("/:id/pin", s.requireAuth(), s.requireAdmin(), s.handleUnpinPost)
		posts.POST("/:id/hide", s.requireAuth(), s.requireAdmin(), s.handleHidePost)
		posts.POST("/:id/restore", s.requireAuth(), s.requireAdmin(), s.handleRestorePost)
		posts.GET("/:id/comments", s.handleListComments)
		posts.POST("/:id/comments", s.requireAuth(), s.handleAddComment)
		posts.POST("/:id/media", s.requireAuth(), s.handleUploadPostMedia)
	}

	alumni := v1.Group("/alumni")
	{
		alumni.GET("", s.handleListAlumni)
		alumni.PUT("/me", s.requireAuth(), s.handleUpdateMyProfile)
		alumni.GET("/:userId", s.handleGetAlumniProfile)
	}

	documents := v1.Group("/documents", s.requireAuth())
	{
		documents.GET("", s.handleListMyDocuments)
		documents.POST("", s.handleCreateDocument)
		documents.GET("/all", s.requireAdmin(), s.handleListAllDocuments)
		documents.PATCH("/:id", s.requireAdmin(), s.handleProcessDocument)
		documents.POST("/:id/cancel", s.handleCancelDocument)
	}

	notifications := v1.Group("/notifications", s.requireAuth())
	{
		notifications.GET("", s.handleListNotifications)
		notifications.GET("/unread-count", s.handleUnreadCount)
		notifications.PATCH("/:id/read", s.handleMarkNotificationRead)
		notifications.POST("/read-all", s.handleMarkAllNotificationsRead)
	}
}

// Run serves the mock on the given port until a signal or server error, then
// shuts down gracefully.
func (s *Server) Run(port string) error {
	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      s.engine,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("Mock platform API listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, shutting down")
	}

	return s.Shutdown(context.Background())
}

// Shutdown stops the HTTP server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	s.logger.Info().Msg("Mock platform API stopped")
	return nil
}
