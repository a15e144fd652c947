package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vbls/standconsole/internal/api/handler/v1/response"
	"github.com/vbls/standconsole/internal/pkg/jwthelper"
)

const ClaimsKey = "claims"

var (
	errMissingToken = errors.New("missing bearer token")
	errWrongRole    = errors.New("admin role required")
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// parsed claims under ClaimsKey.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, strings.TrimSpace(tokenString))
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// RequireRole must run after VerifyJWT.
func (a *Authenticator) RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		value, _ := ctx.Get(ClaimsKey)
		claims, _ := value.(*jwthelper.Claims)
		if claims == nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}
		if claims.Role != role {
			response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("%w, got %q", errWrongRole, claims.Role)))
			return
		}

		ctx.Next()
	}
}
