package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/business_dashboard/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

func unauthorized(message string, cause error) *apperrors.AppError {
	if cause == nil {
		return apperrors.NewAppError(http.StatusUnauthorized, message, apperrors.ErrUnauthorized)
	}
	return apperrors.NewAppError(http.StatusUnauthorized, message, errors.Join(apperrors.ErrUnauthorized, cause))
}

// VerifyBearerToken validates an Authorization header value and returns the
// token subject. Every failure is an *apperrors.AppError wrapping
// apperrors.ErrUnauthorized whose Message is safe to return to the client.
func VerifyBearerToken(authHeader, jwtSecret string) (string, error) {
	if authHeader == "" {
		return "", unauthorized("Authorization header required", nil)
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" || strings.Contains(tokenString, " ") {
		return "", unauthorized("Authorization header format must be Bearer {token}", nil)
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods(hmacMethods))
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", unauthorized("Token has expired", err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "", unauthorized("Token not valid yet", err)
	case err != nil:
		return "", unauthorized("Invalid token", err)
	}

	if claims.Subject == "" {
		return "", unauthorized("Invalid token claims", nil)
	}
	return claims.Subject, nil
}

// AuthMiddleware validates the bearer JWT and stores its subject as the user
// ID. The request logger is enriched with the user ID for downstream handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, err := VerifyBearerToken(c.GetHeader("Authorization"), jwtSecret)
		if err != nil {
			var appErr *apperrors.AppError
			message := "Unauthorized"
			if errors.As(err, &appErr) {
				message = appErr.Message
			}
			logger.Warn("Request rejected by auth", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}

		c.Set(string(userIDKey), userID)
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(WithLogger(ctx, logger.With(slog.String("user_id", userID))))
		c.Next()
	}
}
