package httpx

import (
	"encoding/json"
	"io"

	"github.com/go-chi/render"
	"github.com/mbolis/hvac-backend/apperr"
)

// DecodeForm reads a JSON object from body, checks that every required key
// is present, then decodes the object into dst. Only presence is checked:
// a null, empty or differently typed value is accepted, so dst fields
// should be model.Input.
func DecodeForm(body io.Reader, required []string, dst any) error {
	var fields map[string]json.RawMessage
	if err := render.DecodeJSON(body, &fields); err != nil || fields == nil {
		return &apperr.ValidationError{Msg: "Invalid request body", Err: err}
	}

	var missing []string
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return apperr.MissingFields(missing...)
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return &apperr.ValidationError{Msg: "Invalid request body", Err: err}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &apperr.ValidationError{Msg: "Invalid request body", Err: err}
	}
	return nil
}
