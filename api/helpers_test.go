package api_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/vertiport/evtolhub/api"
	"github.com/vertiport/evtolhub/internal/config"
	"github.com/vertiport/evtolhub/pkg/models"
	"github.com/vertiport/evtolhub/pkg/repository/mock"
	"github.com/vertiport/evtolhub/web"
)

// testSessionCookie mirrors the cookie name the handlers set.
const testSessionCookie = "evtol_session"

func newTestRouter(t *testing.T, mocks *mock.Mocks) *mux.Router {
	t.Helper()

	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	cfg := &config.Config{
		Addr:         ":0",
		APITimeout:   5 * time.Second,
		DatabasePath: ":memory:",
		SessionTTL:   time.Hour,
	}

	repos := api.Repos{
		Users:     mocks.Users,
		Admins:    mocks.Admins,
		Companies: mocks.Companies,
		Products:  mocks.Products,
		Jobs:      mocks.Jobs,
		Sessions:  mocks.Sessions,
	}

	return api.NewRouter(cfg, "test", "test", repos, renderer)
}

func postForm(t *testing.T, router http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(t *testing.T, router http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mustHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

// userSession plants a session bound to the given user and returns its cookie.
func userSession(t *testing.T, mocks *mock.Mocks, userID int64) *http.Cookie {
	t.Helper()

	s := &models.Session{
		Token:     "user-session-token",
		UserID:    &userID,
		ExpiresAt: time.Now().Add(time.Hour).UTC().UnixMilli(),
	}
	mocks.Sessions.Stored[s.Token] = s
	return &http.Cookie{Name: testSessionCookie, Value: s.Token}
}

// adminSession plants a session carrying the admin flag and returns its cookie.
func adminSession(t *testing.T, mocks *mock.Mocks) *http.Cookie {
	t.Helper()

	s := &models.Session{
		Token:     "admin-session-token",
		IsAdmin:   true,
		ExpiresAt: time.Now().Add(time.Hour).UTC().UnixMilli(),
	}
	mocks.Sessions.Stored[s.Token] = s
	return &http.Cookie{Name: testSessionCookie, Value: s.Token}
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == testSessionCookie {
			return c
		}
	}
	return nil
}
