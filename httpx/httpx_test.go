package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mbolis/hvac-backend/apperr"
	"github.com/mbolis/hvac-backend/log"
	"github.com/mbolis/hvac-backend/model"
)

type form struct {
	Name   model.Input `json:"name"`
	Rating model.Input `json:"rating"`
}

func TestDecodeForm(t *testing.T) {
	required := []string{"name", "rating"}

	tests := []struct {
		name    string
		body    string
		wantErr string
		want    form
	}{
		{name: "all keys present", body: `{"name":"Carol","rating":5,"extra":true}`, want: form{Name: model.InputOf("Carol"), Rating: model.InputOf(int64(5))}},
		{name: "null counts as present", body: `{"name":null,"rating":3}`, want: form{Rating: model.InputOf(int64(3))}},
		{name: "empty string counts as present", body: `{"name":"","rating":1}`, want: form{Name: model.InputOf(""), Rating: model.InputOf(int64(1))}},
		{name: "string rating kept as sent", body: `{"name":"Carol","rating":"5"}`, want: form{Name: model.InputOf("Carol"), Rating: model.InputOf("5")}},
		{name: "fractional rating kept as sent", body: `{"name":5551111,"rating":4.5}`, want: form{Name: model.InputOf(int64(5551111)), Rating: model.InputOf(4.5)}},
		{name: "missing key", body: `{"name":"Carol"}`, wantErr: apperr.MsgMissingFields},
		{name: "empty object", body: `{}`, wantErr: apperr.MsgMissingFields},
		{name: "not an object", body: `["name","rating"]`, wantErr: "Invalid request body"},
		{name: "null body", body: `null`, wantErr: "Invalid request body"},
		{name: "empty body", body: ``, wantErr: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got form
			err := DecodeForm(strings.NewReader(tt.body), required, &got)

			if tt.wantErr != "" {
				var verr *apperr.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("\nwanted:\n*apperr.ValidationError\ngot:\n%T %v", err, err)
				}
				if verr.Error() != tt.wantErr {
					t.Fatalf("\nwanted:\n%s\ngot:\n%s", tt.wantErr, verr.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("\nwanted:\nnil\ngot:\n%v", err)
			}
			if got != tt.want {
				t.Fatalf("\nwanted:\n%+v\ngot:\n%+v", tt.want, got)
			}
		})
	}
}

func TestLogError(t *testing.T) {
	log.SetOutput(io.Discard)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.MissingFields("phone"), http.StatusBadRequest, "Missing required fields"},
		{"storage", apperr.Storage("db.insert_quotes", errors.New("disk I/O error")), http.StatusInternalServerError, "disk I/O error"},
		{"notification", apperr.Notification(errors.New("535 auth failed")), http.StatusInternalServerError, "535 auth failed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/quote", nil)

			LogError(w, r, "test", tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("\nwanted:\n%d\ngot:\n%d", tt.wantStatus, w.Code)
			}
			var body ErrorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body %q: %v", w.Body.String(), err)
			}
			if body.Error != tt.wantMsg {
				t.Fatalf("\nwanted:\n%s\ngot:\n%s", tt.wantMsg, body.Error)
			}
		})
	}
}
