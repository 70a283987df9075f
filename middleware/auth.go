package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	utils "github.com/phillip/topup-intake-go/utils"
)

const (
	SessionCookie = "admin_token"
	AdminKey      = "admin"
)

// AuthMiddleware accepts the session cookie first and falls back to an
// Authorization: Bearer header.
func AuthMiddleware(signer *utils.SessionSigner) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifySession(c, signer)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": utils.MsgUnauthorized,
			})
			return
		}

		c.Set(AdminKey, claims)
		c.Next()
	}
}

// Admin returns the verified session attached by AuthMiddleware.
func Admin(c *gin.Context) (*utils.AdminClaims, bool) {
	v, ok := c.Get(AdminKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.AdminClaims)
	return claims, ok
}

// verifySession tries the cookie, then the Bearer header, so a stale cookie
// does not shadow a valid header.
func verifySession(c *gin.Context, signer *utils.SessionSigner) (*utils.AdminClaims, error) {
	err := utils.ErrInvalidSession
	for _, token := range []string{sessionCookie(c), bearerToken(c)} {
		if token == "" {
			continue
		}
		var claims *utils.AdminClaims
		if claims, err = signer.Verify(token); err == nil {
			return claims, nil
		}
	}
	return nil, err
}

func sessionCookie(c *gin.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
