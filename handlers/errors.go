package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shortlink/middleware"
	"shortlink/shortener"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Kind       string    `json:"kind,omitempty"`
	Message    string    `json:"message"`
	RequestID  string    `json:"requestId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// statusForKind maps the business error taxonomy to HTTP statuses.
func statusForKind(kind shortener.Kind) int {
	switch kind {
	case shortener.KindInvalidRequest, shortener.KindInvalidCodeFormat:
		return http.StatusBadRequest
	case shortener.KindNotFound:
		return http.StatusNotFound
	case shortener.KindConflict, shortener.KindGenerationExhausted:
		return http.StatusConflict
	case shortener.KindExpired:
		return http.StatusGone
	case shortener.KindLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// renderError writes the JSON error body for err. Business errors keep
// their kind and message; anything else (storage down, driver errors) is
// logged with the correlation id and reported to the client without
// internal detail.
func renderError(c *gin.Context, err error) {
	var businessErr *shortener.Error
	if errors.As(err, &businessErr) {
		status := statusForKind(businessErr.Kind)
		c.JSON(status, ErrorResponse{
			StatusCode: status,
			Kind:       string(businessErr.Kind),
			Message:    businessErr.Message,
			Timestamp:  time.Now(),
		})
		return
	}

	requestID := middleware.GetRequestID(c)
	log.Printf("internal error (request %s): %v", requestID, err)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    "an unexpected error occurred",
		RequestID:  requestID,
		Timestamp:  time.Now(),
	})
}
