package middleware

import (
	"context"
	"crypto/rand"
	"log/slog"

	"github.com/jobportal/portalManager/session"
)

// UnreadCounter returns the number of unread contact messages for the
// header bell.
type UnreadCounter func(ctx context.Context) (int, error)

type Middleware struct {
	csrfKey        []byte
	secure         bool
	trustedOrigins []string
	sessions       *session.Manager
	unread         UnreadCounter
	logger         *slog.Logger
}

func NewMiddleware(sessions *session.Manager, unread UnreadCounter, secure bool, trustedOrigins []string, logger *slog.Logger) *Middleware {
	csrfKey := make([]byte, 32)
	n, err := rand.Read(csrfKey)
	if err != nil {
		panic(err)
	}
	if n != 32 {
		panic("unable to read 32 bytes for CSRF key")
	}

	return &Middleware{
		csrfKey:        csrfKey,
		secure:         secure,
		trustedOrigins: trustedOrigins,
		sessions:       sessions,
		unread:         unread,
		logger:         logger,
	}
}
