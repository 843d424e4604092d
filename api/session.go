package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vertiport/evtolhub/pkg/models"
	"github.com/vertiport/evtolhub/pkg/repository"
)

const sessionCookie = "evtol_session"

// ensureSession returns the request's session, creating a fresh one (and
// setting the cookie) when the request has none. The opaque token is a UUID;
// everything else about the session lives server-side.
func ensureSession(w http.ResponseWriter, r *http.Request, sessions repository.SessionRepo, ttl time.Duration) (*models.Session, error) {
	if s := CurrentSession(r.Context()); s != nil {
		return s, nil
	}

	s := &models.Session{
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(ttl).UTC().UnixMilli(),
	}
	if err := sessions.CreateSession(r.Context(), s); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.UnixMilli(s.ExpiresAt),
	})

	return s, nil
}
