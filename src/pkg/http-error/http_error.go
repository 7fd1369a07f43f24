package httpError

import "github.com/gofiber/fiber/v2"

type CommonError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    fiber.StatusBadRequest,
		Status:  "BAD_REQUEST",
		Message: "bad request",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    fiber.StatusNotFound,
		Status:  "NOT_FOUND",
		Message: "not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    fiber.StatusConflict,
		Status:  "CONFLICT",
		Message: "conflict",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:    fiber.StatusUnauthorized,
		Status:  "UNAUTHORIZED",
		Message: "unauthorized",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    fiber.StatusInternalServerError,
		Status:  "INTERNAL_SERVER_ERROR",
		Message: "internal server error",
	}
}
