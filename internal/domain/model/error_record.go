package model

import (
	"net/http"
	"time"
)

// ErrorRecord is what the error page shows for a failed request.
type ErrorRecord struct {
	StatusCode   int       `json:"status"`
	ReasonPhrase string    `json:"error"`
	Message      string    `json:"message"`
	Path         string    `json:"path"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewErrorRecord(statusCode int, message, path string) ErrorRecord {
	return ErrorRecord{
		StatusCode:   statusCode,
		ReasonPhrase: http.StatusText(statusCode),
		Message:      message,
		Path:         path,
		Timestamp:    time.Now(),
	}
}
