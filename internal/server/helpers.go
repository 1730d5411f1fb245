package server

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"leavedesk/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the handler has already written an error
// response and the caller should just return nil.
var errResponseWritten = errors.New("error response written")

// parseID extracts and validates a numeric path parameter. On failure it
// writes a 400 response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam turns a path parameter name like "requestID" into "request ID".
func humanizeParam(param string) string {
	words := splitCamel(param)
	for i, w := range words {
		if strings.EqualFold(w, "id") {
			words[i] = "ID"
		}
	}
	return strings.Join(words, " ")
}

func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// principalFromCtx returns the authenticated user placed in locals by
// AuthRequired. A missing principal means the route was misconfigured.
func principalFromCtx(c *fiber.Ctx) (*models.User, error) {
	principal, ok := c.Locals("principal").(*models.User)
	if !ok || principal == nil {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authorization required"))
		return nil, errResponseWritten
	}
	return principal, nil
}

// statusForError maps application error codes to HTTP statuses. Unknown
// errors surface as 500 without leaking internals.
func statusForError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeMissingField, models.CodeInvalidRange,
		models.CodeAlreadyDecided, models.CodeCommentRequired,
		models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	case models.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// respondServiceError writes the response for an error bubbling out of the
// service or repository layer.
func respondServiceError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}
