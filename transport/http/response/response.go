package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/logger"
)

type Error struct {
	Error string `json:"error"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// Ack is the body for write operations that return no entity.
type Ack struct {
	OK bool `json:"ok"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as the response body, unwrapped.
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, jsonPayload)
}

// WithOK acknowledges a successful write.
func WithOK(writer http.ResponseWriter) {
	response(writer, http.StatusOK, Ack{OK: true})
}

// WithError sends the error as {"error": message}. The message comes from the
// failure the error wraps; anything else collapses to a generic internal error
// so backing-store detail never reaches the caller.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	msg := "internal server error"

	var fail *failure.Failure
	if errors.As(err, &fail) {
		msg = fail.Message
	}

	response(writer, code, Error{Error: msg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
