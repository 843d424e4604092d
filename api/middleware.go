package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/vertiport/evtolhub/pkg/models"
	"github.com/vertiport/evtolhub/pkg/repository"
)

type ctxKey string

const (
	CtxSession ctxKey = "session"
	CtxUser    ctxKey = "user"
)

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// SessionMiddleware resolves the session cookie into the request context: the
// session row itself and, when the session carries a user id, the User record.
// Missing, expired or unknown tokens leave the request anonymous.
func SessionMiddleware(sessions repository.SessionRepo, users repository.UserRepo) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookie)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			session, err := sessions.GetSession(ctx, cookie.Value)
			if err != nil {
				logger.Error("resolve session", slog.Any("err", err))
				next.ServeHTTP(w, r)
				return
			}
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}
			if session.ExpiresAt <= time.Now().UTC().UnixMilli() {
				if err := sessions.DeleteSession(ctx, session.Token); err != nil {
					logger.Error("delete expired session", slog.Any("err", err))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx = context.WithValue(ctx, CtxSession, session)

			if session.UserID != nil {
				user, err := users.GetUserByID(ctx, *session.UserID)
				if err != nil {
					logger.Error("resolve session user", slog.Any("err", err))
				} else if user != nil {
					ctx = context.WithValue(ctx, CtxUser, user)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentSession returns the session resolved for this request, or nil.
func CurrentSession(ctx context.Context) *models.Session {
	s, _ := ctx.Value(CtxSession).(*models.Session)
	return s
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(CtxUser).(*models.User)
	return u
}

// IsAdmin reports whether this request's session carries the admin flag.
func IsAdmin(ctx context.Context) bool {
	s := CurrentSession(ctx)
	return s != nil && s.IsAdmin
}

// RequireAdmin gates the back-office: requests without the admin session flag
// are redirected to the admin login form.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
