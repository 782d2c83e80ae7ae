package http

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// userIDContextKey is the echo context key the auth middleware stores the
// authenticated user id under.
const userIDContextKey = "userID"

// Auth verifies the Authorization bearer token with the given HS256 secret
// and stores the user_id claim in the request context. Requests without a
// valid token pass through unauthenticated; handlers that need an identity
// reject them with a forbidden error.
func Auth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return next(ctx)
			}

			token, err := jwt.Parse(
				strings.TrimPrefix(header, "Bearer "),
				func(token *jwt.Token) (any, error) {
					if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, jwt.ErrSignatureInvalid
					}
					return secret, nil
				},
			)
			if err != nil || !token.Valid {
				return next(ctx)
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if uid, ok := claims["user_id"].(float64); ok {
					ctx.Set(userIDContextKey, int(uid))
				}
			}

			return next(ctx)
		}
	}
}

// authenticatedUserID returns the user id the auth middleware stored, zero
// when the request carried no valid token.
func authenticatedUserID(ctx echo.Context) int {
	if userID, ok := ctx.Get(userIDContextKey).(int); ok {
		return userID
	}
	return 0
}

// RequestLogger logs every request with a correlation id, method, path,
// response status and duration. The correlation id is echoed back in the
// X-Request-ID header.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := uuid.NewString()
			ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)

			start := time.Now()
			err := next(ctx)

			logger.Info("request",
				zap.String("request_id", requestID),
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Request().URL.Path),
				zap.Int("status", ctx.Response().Status),
				zap.Duration("duration", time.Since(start)),
			)

			return err
		}
	}
}
