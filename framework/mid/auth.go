package mid

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/framework/connection"
	"github.com/gigfolio/console-api/framework/web"
	"github.com/gigfolio/console-api/logger"
)

// Auth errors
var (
	ErrForbidden    = errors.New("forbidden operation")
	ErrUnauthorized = errors.New("unauthorized operation")
)

// AuthRequired middleware that auth requests coming from the client app
func AuthRequired(conn *connection.Connection) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			token, err := conn.VerifyIDToken(ctx)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			claims := token.Claims

			ctx.Set(common.CtxKeys.Claims, claims)
			ctx.Set(common.CtxKeys.UID, token.UID)

			// Set email in context
			email, ok := claims["email"]
			if !ok {
				return web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
			}

			emailStr := email.(string)
			ctx.Set(common.CtxKeys.Email, strings.ToLower(emailStr))

			// Set name in context
			if name, ok := claims["name"]; ok {
				ctx.Set(common.CtxKeys.Name, name.(string))
			}

			// Accounts created before the teams rollout have no business claim
			// and fall back to the personal workspace keyed by their uid.
			businessID := token.UID
			if v, ok := claims["businessId"].(string); ok && v != "" {
				businessID = v
			}

			ctx.Set(common.CtxKeys.BusinessID, businessID)

			l.SetLabels(map[string]string{
				"email":      emailStr,
				"uid":        token.UID,
				"businessId": businessID,
			})

			l.Printf("request executed by email [%s] uid [%s] business [%s]", emailStr, token.UID, businessID)

			conn.FirestoreWithContext(ctx)

			return handler(ctx)
		}

		return h
	}

	return f
}
