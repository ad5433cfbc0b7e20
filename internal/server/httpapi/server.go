// Package httpapi exposes the public HTTP surface: signup/login/logout,
// the chat endpoint, and history replay. It owns request parsing, the
// session auth gate, and the mapping of service errors to status codes.
package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/chatkeeper/internal/logging"
	"github.com/dmitrijs2005/chatkeeper/internal/server/models"
	"github.com/dmitrijs2005/chatkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

const shutdownTimeout = 5 * time.Second

// UserProvider is the slice of the user service the HTTP layer needs.
type UserProvider interface {
	Register(ctx context.Context, username, password string) (*models.User, *services.Credentials, error)
	Login(ctx context.Context, username, password string) (*services.Credentials, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
}

// ChatProvider is the slice of the chat service the HTTP layer needs.
type ChatProvider interface {
	SendMessage(ctx context.Context, userID, message string) (*models.Exchange, error)
	History(ctx context.Context, userID string) ([]*models.Exchange, error)
}

// Server dispatches the HTTP routes to the services.
type Server struct {
	address   string
	logger    logging.Logger
	users     UserProvider
	chats     ChatProvider
	jwtSecret []byte
	staticDir string
	pinger    func(ctx context.Context) error
	ready     atomic.Bool
}

// NewServer constructs the HTTP server. pinger reports storage liveness for
// /ping; pass nil to report always-alive.
func NewServer(addr string, l logging.Logger, us UserProvider, cs ChatProvider, secretKey string, staticDir string, pinger func(ctx context.Context) error) *Server {
	return &Server{
		address:   addr,
		logger:    l.With("module", "httpapi"),
		users:     us,
		chats:     cs,
		jwtSecret: []byte(secretKey),
		staticDir: staticDir,
		pinger:    pinger,
	}
}

// SetReady marks storage as initialized. Until then API routes answer 503.
func (s *Server) SetReady() {
	s.ready.Store(true)
}

// Handler builds the gin engine with all routes attached.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/ping", s.ping)

	// Routes are registered both at the root and under /api.
	for _, prefix := range []string{"", "/api"} {
		api := r.Group(prefix, s.readyGate())
		api.POST("/signup", s.signup)
		api.POST("/login", s.login)

		protected := api.Group("", s.sessionAuth())
		protected.POST("/logout", s.logout)
		protected.POST("/chat", s.chat)
		protected.GET("/history", s.history)
	}

	if s.staticDir != "" {
		r.StaticFile("/", s.staticDir+"/index.html")
		r.Static("/static", s.staticDir)
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) ping(c *gin.Context) {
	if s.pinger != nil {
		if err := s.pinger(c.Request.Context()); err != nil {
			s.logger.Error(c.Request.Context(), "storage ping failed", "error", err.Error())
			c.String(http.StatusInternalServerError, "storage unavailable")
			return
		}
	}
	c.String(http.StatusOK, "OK")
}
