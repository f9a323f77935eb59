package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mousam-kumari/gift-flask/internal/logging"
	"github.com/mousam-kumari/gift-flask/internal/models"
	"github.com/mousam-kumari/gift-flask/internal/service"
)

var errInvalidBody = goerr.New("invalid request body")

const msgGenerationFailed = "Error generating gift ideas"

// errorMapping pins an error kind to the status and client-facing message.
// Internal detail never reaches the client; it is logged instead.
type errorMapping struct {
	kind    error
	status  int
	message string
}

var errorTable = []errorMapping{
	{kind: service.ErrInvalidInput, status: fiber.StatusBadRequest, message: "'prompt' is required."},
	{kind: service.ErrGenerationFailure, status: fiber.StatusInternalServerError, message: msgGenerationFailed},
	{kind: errInvalidBody, status: fiber.StatusBadRequest, message: "invalid JSON body"},
}

// respondError logs err with the request logger and writes the mapped
// {"error": ...} body. Unknown errors become a 500 generation failure.
func respondError(c *fiber.Ctx, err error) error {
	status, message := fiber.StatusInternalServerError, msgGenerationFailed
	for _, m := range errorTable {
		if errors.Is(err, m.kind) {
			status, message = m.status, m.message
			break
		}
	}

	logger := logging.From(c.UserContext())
	if status >= fiber.StatusInternalServerError {
		logger.Error("request failed", "error", err, "status", status)
	} else {
		logger.Warn("request rejected", "error", err, "status", status)
	}

	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}

// parseBody decodes a JSON body into out. An empty body leaves out at its
// zero value, which every endpoint treats as "no fields supplied".
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return goerr.Wrap(errInvalidBody, "failed to parse request body",
			goerr.V("content_type", c.Get(fiber.HeaderContentType)),
			goerr.V("cause", err.Error()))
	}
	return nil
}
