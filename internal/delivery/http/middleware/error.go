package middleware

import (
	"errors"
	"log"

	"skilltrack/internal/pkg/response"
	"skilltrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		return response.Error(c, status, msg, nil)
	}
}

// normalizeError maps usecase sentinels to HTTP statuses; anything unknown is
// a 500 with a generic message so internals never leak to the client.
func normalizeError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return fiber.StatusBadRequest, response.MessageBadRequest
	case errors.Is(err, usecase.ErrInvalidParent):
		return fiber.StatusUnprocessableEntity, usecase.ErrInvalidParent.Error()
	case errors.Is(err, usecase.ErrInvalidCategory):
		return fiber.StatusUnprocessableEntity, usecase.ErrInvalidCategory.Error()
	case errors.Is(err, usecase.ErrSkillNotFound),
		errors.Is(err, usecase.ErrRatingNotFound),
		errors.Is(err, usecase.ErrCheckerNotFound),
		errors.Is(err, usecase.ErrSessionNotFound):
		return fiber.StatusNotFound, err.Error()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.MessageError
		}
		return status, msg
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
