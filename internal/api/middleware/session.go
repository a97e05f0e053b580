package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"
	"github.com/cookouthq/cookout-api/internal/core/service"
)

const (
	// SessionName is the cookie under which the gorilla session travels.
	SessionName = "cookout_session"
	// ProviderKey is the request attribute holding the bound AuthProvider.
	ProviderKey = "authProvider"

	usernameKey   = "username"
	sessionMaxAge = 18000 // 5h
)

// Session rebuilds the request-scoped session context on every request:
// it loads the cookie session (echo-contrib over gorilla/sessions),
// rehydrates the signed-in user from the user store, and binds a fresh
// AuthProvider to the request. Nothing here is shared across requests.
func Session(users ports.UserStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(SessionName, c)
			if err != nil {
				// gorilla returns a fresh session alongside a decode error,
				// so a corrupt or tampered cookie just means starting over.
				log.Warn().Err(err).Msg("session cookie rejected, starting fresh")
			}
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable")
			}
			sess.Options = &sessions.Options{
				Path:     "/",
				MaxAge:   sessionMaxAge,
				HttpOnly: true,
			}

			bag := &requestBag{c: c, sess: sess, log: log}

			if username, ok := sess.Values[usernameKey].(string); ok && username != "" {
				user, err := users.FindByUsername(c.Request().Context(), username)
				if err == nil {
					c.Set(service.UserKey, user)
				} else {
					log.Debug().Err(err).Str("username", username).Msg("stale session user")
				}
			}

			c.Set(ProviderKey, service.NewAuthProvider(bag, users))
			return next(c)
		}
	}
}

// requestBag is the echo-backed ports.SessionContext. Values live in the
// request attributes; the identity key is additionally mirrored into the
// cookie session so the next request can rehydrate it. All other keys are
// strictly request-scoped.
type requestBag struct {
	c    echo.Context
	sess *sessions.Session
	log  zerolog.Logger
}

func (b *requestBag) Get(key string) any {
	return b.c.Get(key)
}

func (b *requestBag) Set(key string, value any) {
	b.c.Set(key, value)
	if key != service.UserKey {
		return
	}
	if user, ok := value.(*domain.User); ok && user != nil {
		b.sess.Values[usernameKey] = user.Username
		b.save()
	}
}

func (b *requestBag) Remove(key string) {
	b.c.Set(key, nil)
	if key != service.UserKey {
		return
	}
	delete(b.sess.Values, usernameKey)
	// Expire the cookie; the identity is the only thing it carries.
	b.sess.Options.MaxAge = -1
	b.save()
}

// save persists the cookie session immediately so the Set-Cookie header is
// written before the handler renders its body.
func (b *requestBag) save() {
	if err := b.sess.Save(b.c.Request(), b.c.Response()); err != nil {
		b.log.Error().Err(err).Msg("failed to persist session")
	}
}
