package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/http/middleware"
	"portfolio/internal/service"
	"portfolio/internal/validation"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Issues  validation.FieldErrors `json:"issues,omitempty"`
}

// successPayload is returned by every accepted submission.
type successPayload struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return writeErrorIssues(c, status, code, message, nil)
}

func writeErrorIssues(c *fiber.Ctx, status int, code, message string, issues validation.FieldErrors) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
			Issues:  issues,
		},
	}
	return c.Status(status).JSON(res)
}

// writeResult maps a submission result onto the HTTP response.
// okStatus is used when the submission succeeded.
func writeResult(c *fiber.Ctx, okStatus int, res service.Result) error {
	switch res.Status {
	case service.StatusOK:
		return c.Status(okStatus).JSON(successPayload{ID: res.ID, Message: res.Message})
	case service.StatusInvalid:
		return writeErrorIssues(c, fiber.StatusUnprocessableEntity, "VALIDATION_FAILED", res.Error, res.Issues)
	case service.StatusUploadFailed:
		return writeError(c, fiber.StatusBadGateway, "UPLOAD_FAILED", res.Error)
	case service.StatusSendFailed:
		return writeError(c, fiber.StatusBadGateway, "SEND_FAILED", res.Error)
	case service.StatusNotFound:
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", res.Error)
	default:
		return writeError(c, fiber.StatusInternalServerError, "SAVE_FAILED", res.Error)
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "missing or invalid admin token")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		case fiber.StatusTooManyRequests:
			return writeError(c, status, "RATE_LIMITED", "too many submissions, try again later")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
