package dashboard

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/marketops/missionctl/internal/config"
)

// sessionCookie carries the signed session token issued at sign-in.
const sessionCookie = "mc_session"

// requireSession gates page routes behind the single allowed operator.
// A valid session with the wrong email lands on /unauthorized; anything
// else bounces to the sign-in URL. The gate is a no-op when auth is not
// configured.
func requireSession(auth config.AuthConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.Enabled() {
			c.Next()
			return
		}

		token, err := c.Cookie(sessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, auth.SignInURL)
			c.Abort()
			return
		}

		email, err := sessionEmail(token, auth.SessionSecret)
		if err != nil {
			log.Debug("session rejected", zap.Error(err))
			c.Redirect(http.StatusFound, auth.SignInURL)
			c.Abort()
			return
		}

		if email != auth.AllowedEmail {
			c.Redirect(http.StatusFound, "/unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

// sessionEmail verifies the HS256 session token and extracts its email claim.
func sessionEmail(token, secret string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("dashboard: parse session: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("dashboard: session has no claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("dashboard: session has no email claim")
	}
	return email, nil
}

// SessionToken mints a signed session token for the given email. It exists
// for operators wiring an external sign-in flow and for tests.
func SessionToken(email, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": email})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("dashboard: sign session: %w", err)
	}
	return signed, nil
}
