package middleware

import (
	"strings"

	httpError "investment-service/src/pkg/http-error"
	"investment-service/src/pkg/token"
	"investment-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const authKey = "auth"

// VerifyBearer validates the Authorization header and stores the token
// claims in the request locals.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := []byte(config.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claim := new(token.Claim)
		parsed, err := jwt.ParseWithClaims(tokenString, claim, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(authKey, claim)
		return ctx.Next()
	}
}

// VerifyAdmin must run after VerifyBearer.
func VerifyAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil || auth.Role != "admin" {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "admin role required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Metadata {
	claim, ok := ctx.Locals(authKey).(*token.Claim)
	if !ok {
		return nil
	}
	return &claim.Metadata
}
