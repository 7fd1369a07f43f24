package utils

import (
	"encoding/json"
	"math"
	"strconv"

	httpError "investment-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type Result struct {
	Data  interface{}
	Error error
}

type baseResponse struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(baseResponse{
		Message: message,
		Code:    code,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(commonErr)
	}
	fallback := httpError.NewInternalServerError()
	fallback.Message = err.Error()
	return ctx.Status(fallback.Code).JSON(fallback)
}

// ConvertString marshals any value for log meta fields.
func ConvertString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func ConvertInt(v interface{}) int {
	switch value := v.(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	case string:
		n, _ := strconv.Atoi(value)
		return n
	default:
		return 0
	}
}

// Round2 rounds money amounts to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
