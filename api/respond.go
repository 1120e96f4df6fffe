package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bloghive/backend/errs"
)

const (
	statusSuccess = "SUCCESS"
	statusError   = "Error"

	msgSomethingWentWrong = "Something went wrong!"
)

// envelope is the wire shape of every response: {status, code, data} on
// success, {status, code, message} on error. message is a string or a list of
// field-level validation errors.
type envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
	Message any    `json:"message,omitempty"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a success envelope with the given HTTP status.
func (r Responder) WriteData(w http.ResponseWriter, status int, data any) {
	r.writeJSON(w, status, envelope{Status: statusSuccess, Code: status, Data: data})
}

// WriteError translates err into an error envelope. Domain errors carry their
// own status; anything else is logged and reported as a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var validationErr *errs.ValidationErr
	if errors.As(err, &validationErr) {
		fields := make([]map[string]string, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			fields = append(fields, map[string]string{f.Field: f.Message})
		}
		r.writeJSON(w, validationErr.StatusCode, envelope{
			Status:  statusError,
			Code:    validationErr.StatusCode,
			Message: fields,
		})
		return
	}

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeJSON(w, http.StatusInternalServerError, envelope{
			Status:  statusError,
			Code:    http.StatusInternalServerError,
			Message: msgSomethingWentWrong,
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	r.writeJSON(w, apiErr.StatusCode, envelope{
		Status:  statusError,
		Code:    apiErr.StatusCode,
		Message: apiErr.Error(),
	})
}
