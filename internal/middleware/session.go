package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fendiRahmans/portofolio-api/internal/models"
	"github.com/fendiRahmans/portofolio-api/internal/service"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/response"
)

// ContextUserKey is the gin context key storing verified session claims.
const ContextUserKey = "currentUser"

// Decision is the route guard's verdict for a request.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToDashboard
)

// Guard holds the path layout the decision rule operates on.
type Guard struct {
	AdminPrefix   string
	LoginPath     string
	DashboardPath string
}

// Decide applies the guard rule: admin paths other than login require a
// session; the login path under an existing session bounces to the
// dashboard; everything else is public.
func (g Guard) Decide(path string, authenticated bool) Decision {
	if path == g.LoginPath {
		if authenticated {
			return RedirectToDashboard
		}
		return Allow
	}
	if strings.HasPrefix(path, g.AdminPrefix) {
		if authenticated {
			return Allow
		}
		return RedirectToLogin
	}
	return Allow
}

// Session verifies the admin_session cookie and stores the claims on the
// context. It never blocks; gating is the guard's job.
func Session(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(models.SessionCookieName)
		if err == nil && token != "" {
			if claims, verr := auth.VerifySession(token); verr == nil {
				c.Set(ContextUserKey, claims)
			}
		}
		c.Next()
	}
}

// RequireSession aborts unauthenticated requests before any handler runs.
// Every session failure looks the same to the client: a generic 401 with
// the login location.
func RequireSession(guard Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if decision := guard.Decide(c.Request.URL.Path, authenticated(c)); decision == RedirectToLogin {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "authentication required"))
			c.Header("Location", guard.LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps an authenticated admin off the login
// surface, preventing re-login loops.
func RedirectIfAuthenticated(guard Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		if decision := guard.Decide(guard.LoginPath, authenticated(c)); decision == RedirectToDashboard {
			c.Redirect(http.StatusSeeOther, guard.DashboardPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// Claims returns the verified session claims stored on the context.
func Claims(c *gin.Context) *models.SessionClaims {
	if v, exists := c.Get(ContextUserKey); exists {
		if claims, ok := v.(*models.SessionClaims); ok {
			return claims
		}
	}
	return nil
}

func authenticated(c *gin.Context) bool {
	return Claims(c) != nil
}
