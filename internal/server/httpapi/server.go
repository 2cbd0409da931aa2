// Package httpapi exposes the credential/session operations over HTTP:
// registration, login, and token-guarded routes. The access guard is a
// single echo middleware attached declaratively to every protected route.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
	"github.com/labstack/echo/v4"
)

// UserService is the slice of business logic the HTTP layer needs.
// *services.UserService satisfies it; tests substitute doubles.
type UserService interface {
	Register(ctx context.Context, req services.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	jwtSecret []byte
	echo      *echo.Echo
}

func NewServer(address string, l logging.Logger, us UserService, secretKey string) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.POST("/register", s.register)
	e.POST("/login", s.login)
	e.GET("/protected", s.protected, s.accessGuard)
	e.GET("/test", s.greet, s.accessGuard)

	s.echo = e
	return s
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
