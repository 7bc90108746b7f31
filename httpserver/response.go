package httpserver

import (
	"moviecatalog/errs"

	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of confirmations and of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}

// failure keeps classified application errors as they are and turns anything
// else into an internal error carrying the endpoint's fixed message.
func failure(err error, message string) error {
	if errs.ErrorCode(err) != errs.EINTERNAL {
		return err
	}
	return errs.Wrap(err, errs.EINTERNAL, message)
}
