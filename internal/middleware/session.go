package middleware

import (
	"github.com/deppfellow/go-adverts/internal/database"
	"github.com/deppfellow/go-adverts/internal/server"
	"github.com/labstack/echo/v4"
)

// SessionHandlerFunc is a handler that receives the request's database session explicitly.
type SessionHandlerFunc func(c echo.Context, sess *database.Session) error

// SessionMiddleware wraps resource handlers with a per-request database session.
type SessionMiddleware struct {
	server *server.Server
}

func NewSessionMiddleware(s *server.Server) *SessionMiddleware {
	return &SessionMiddleware{server: s}
}

// WithSession acquires a session before next runs and releases it after,
// whether next succeeds, fails or panics.
func (sm *SessionMiddleware) WithSession(next SessionHandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := sm.server.DB.Acquire(c.Request().Context())
		if err != nil {
			return err
		}

		defer func() {
			if err := sess.Close(); err != nil {
				GetLogger(c).Warn().Err(err).Msg("failed to release database session")
			}
		}()

		return next(c, sess)
	}
}
