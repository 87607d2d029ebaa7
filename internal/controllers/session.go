package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/acoes-municipais/simulador/internal/httputil"
	"github.com/acoes-municipais/simulador/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SessionCookie is the name of the cookie holding the session ID.
const SessionCookie = "simulador_session"

const contextSession = "simulador-session"

// Session makes sure the request has a session. A new session is created
// when the cookie is missing, unknown or the session has expired.
func (co Controller) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := co.session(c)
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			c.AbortWithStatusJSON(status(err), httputil.HTTPError{Error: err.Error()})
			return
		}

		c.Set(contextSession, id)
		c.Next()
	}
}

func (co Controller) session(c *gin.Context) (uuid.UUID, error) {
	cutoff := time.Now().Add(-co.Config.SessionTTL)

	if value, err := c.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(value); err == nil {
			session, err := co.Store.Session(id)
			if err == nil && session.LastSeen.After(cutoff) {
				return id, co.Store.Touch(id)
			}

			if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
				return uuid.Nil, err
			}
		}
	}

	// Sessions are only purged when a new one is created, there is no
	// background work
	if _, err := co.Store.PurgeExpired(cutoff); err != nil {
		return uuid.Nil, err
	}

	session, err := co.Store.CreateSession()
	if err != nil {
		return uuid.Nil, err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, session.ID.String(), 0, "/", "", co.Config.APIURL.Scheme == "https", true)

	return session.ID, nil
}

// sessionID returns the ID of the session set by the Session middleware.
func sessionID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextSession).(uuid.UUID)
}
