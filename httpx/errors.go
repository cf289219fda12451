package httpx

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/mbolis/hvac-backend/apperr"
	"github.com/mbolis/hvac-backend/log"
)

type ErrorBody struct {
	Error string `json:"error"`
}

type MessageBody struct {
	Message string `json:"message"`
}

// Will log an error under code, and send a JSON {"error"} response with
// status 400 for validation errors and 500 for anything else
func LogError(w http.ResponseWriter, r *http.Request, code string, err error) {
	status := apperr.Status(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("%s: %s", code, err)
	} else {
		log.Debugf("%s: %s", code, detail(err))
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorBody{Error: err.Error()})
}

// Will send a JSON {"message"} response with status 200
func Message(w http.ResponseWriter, r *http.Request, msg string) {
	render.JSON(w, r, MessageBody{Message: msg})
}

func detail(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
