package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"mintkitchen/api/internal/client"
	"mintkitchen/api/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const noLocationDetail = "No Square location found. Please configure a location in your Square account."

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// statusFor maps an error to its HTTP status and client-facing detail.
// action names what the endpoint was doing, e.g. "fetching menu".
func statusFor(action string, err error) (int, string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound, "Item not found"
	case errors.Is(err, service.ErrNotConfigured):
		return http.StatusInternalServerError, "Square API not configured"
	case errors.Is(err, client.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, fmt.Sprintf("Timed out %s", action)
	case errors.Is(err, service.ErrNoLocation):
		return http.StatusInternalServerError, noLocationDetail
	default:
		return http.StatusInternalServerError, fmt.Sprintf("Error %s: %v", action, err)
	}
}

func abortWithError(c *gin.Context, action string, err error) {
	status, detail := statusFor(action, err)
	if status >= http.StatusInternalServerError {
		log.Errorf("Error %s: %v", action, err)
	}
	respond(c, status, ErrorResponse{Detail: detail})
	c.Abort()
}

func abortWithBindError(c *gin.Context, err error) {
	respond(c, http.StatusBadRequest, ErrorResponse{Detail: fmt.Sprintf("Invalid request: %v", err)})
	c.Abort()
}
