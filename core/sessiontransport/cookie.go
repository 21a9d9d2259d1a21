package sessiontransport

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lockit/core/cookie"
	"github.com/dmitrymomot/lockit/core/session"
)

// DefaultCookieName is used when NewCookie is called with an empty name.
const DefaultCookieName = "lockit_session"

// Cookie provides HTTP cookie-based session transport.
// It stores Session.Token as the cookie value, signed via cookie.Manager.
type Cookie[Data any] struct {
	manager *session.Manager[Data]
	cookies *cookie.Manager
	name    string
}

// NewCookie creates a new cookie-based session transport.
func NewCookie[Data any](mgr *session.Manager[Data], cookies *cookie.Manager, name string) *Cookie[Data] {
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie[Data]{
		manager: mgr,
		cookies: cookies,
		name:    name,
	}
}

// Load returns the session for the request. A missing, invalid or expired
// cookie degrades gracefully to a fresh anonymous session.
func (c *Cookie[Data]) Load(r *http.Request) (session.Session[Data], error) {
	token, err := c.cookies.GetSigned(r, c.name)
	if err != nil {
		return c.newSession(r)
	}

	sess, err := c.manager.GetByToken(r.Context(), token)
	if err != nil {
		return c.newSession(r)
	}
	return sess, nil
}

// Save writes the session token to the response as a signed cookie whose
// MaxAge tracks the session expiry.
func (c *Cookie[Data]) Save(w http.ResponseWriter, sess session.Session[Data]) error {
	until := time.Until(sess.ExpiresAt)
	if until <= 0 {
		return ErrSessionExpired
	}

	return c.cookies.SetSigned(w, c.name, sess.Token,
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithMaxAge(int(until.Seconds())),
	)
}

// Store persists a mutated session after request handling and keeps the
// cookie synchronized. Deleted sessions clear the cookie instead.
func (c *Cookie[Data]) Store(ctx context.Context, w http.ResponseWriter, sess session.Session[Data]) error {
	if err := c.manager.Store(ctx, sess); err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			c.cookies.Delete(w, c.name)
			return nil
		}
		return err
	}
	if sess.IsModified() {
		return c.Save(w, sess)
	}
	return nil
}

// Authenticate marks the request's session as password-authenticated and
// rotates the cookie. Two-factor verification remains pending.
func (c *Cookie[Data]) Authenticate(w http.ResponseWriter, r *http.Request, userID uuid.UUID, data ...Data) (session.Session[Data], error) {
	sess, err := c.Load(r)
	if err != nil {
		return session.Session[Data]{}, err
	}

	authSess, err := c.manager.Authenticate(r.Context(), sess, userID, data...)
	if err != nil {
		return session.Session[Data]{}, err
	}

	if err := c.Save(w, authSess); err != nil {
		return session.Session[Data]{}, err
	}
	return authSess, nil
}

// ConfirmTwoFactor records a verified one-time code and rotates the cookie.
func (c *Cookie[Data]) ConfirmTwoFactor(w http.ResponseWriter, r *http.Request) (session.Session[Data], error) {
	sess, err := c.Load(r)
	if err != nil {
		return session.Session[Data]{}, err
	}

	confirmed, err := c.manager.ConfirmTwoFactor(r.Context(), sess)
	if err != nil {
		return session.Session[Data]{}, err
	}

	if err := c.Save(w, confirmed); err != nil {
		return session.Session[Data]{}, err
	}
	return confirmed, nil
}

// Logout replaces the session with a fresh anonymous one.
func (c *Cookie[Data]) Logout(w http.ResponseWriter, r *http.Request) (session.Session[Data], error) {
	sess, err := c.Load(r)
	if err != nil {
		return session.Session[Data]{}, err
	}

	anonSess, err := c.manager.Logout(r.Context(), sess)
	if err != nil {
		return session.Session[Data]{}, err
	}

	if err := c.Save(w, anonSess); err != nil {
		return session.Session[Data]{}, err
	}
	return anonSess, nil
}

// Destroy tears the session down: the server-side record is deleted when
// the request carries one, the cookie is cleared either way, and a non-nil
// onDone runs after teardown completes.
func (c *Cookie[Data]) Destroy(w http.ResponseWriter, r *http.Request, onDone func()) error {
	defer func() {
		if onDone != nil {
			onDone()
		}
	}()

	if token, err := c.cookies.GetSigned(r, c.name); err == nil {
		if sess, err := c.manager.GetByToken(r.Context(), token); err == nil {
			if err := c.manager.Delete(r.Context(), sess.ID); err != nil {
				return err
			}
		}
	}

	c.cookies.Delete(w, c.name)
	return nil
}

// newSession creates and persists a fresh anonymous session for the request.
func (c *Cookie[Data]) newSession(r *http.Request) (session.Session[Data], error) {
	return c.manager.New(r.Context(), session.NewSessionParams{
		IP:        clientIP(r),
		UserAgent: r.Header.Get("User-Agent"),
	})
}

// clientIP extracts the originating client address, preferring proxy
// headers over the raw peer address.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
