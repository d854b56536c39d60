package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
)

var messages = map[string]string{
	httperr.CodeForbidden:            "You are not allowed to do that.",
	httperr.CodeUnauthenticated:      "Authentication required.",
	httperr.CodeInvalidCredentials:   "Invalid email or password.",
	httperr.CodeSlotUnavailable:      "This time slot is no longer available.",
	httperr.CodeAlreadyCancelled:     "The reservation is already cancelled.",
	httperr.CodeInvalidTransition:    "The reservation cannot change to that status.",
	httperr.CodeServiceHasDependents: "The service still has time slots or reservations.",
	httperr.CodeTimeSlotExists:       "A time slot already starts at that time.",
	httperr.CodeEmailTaken:           "That email is already registered.",
	httperr.CodeImageStorageDisabled: "Image storage is not configured.",
	httperr.CodeInvalidImage:         "The file is not a supported image.",
}

// respondError maps a use case error onto the HTTP error contract.
func respondError(c *gin.Context, err error) {
	var ve httperr.ValidationError
	if errors.As(err, &ve) {
		httperr.Invalid(c, ve.Field, ve.Message)
		return
	}

	var nf httperr.NotFoundError
	if errors.As(err, &nf) {
		httperr.NotFound(c, nf.Error(), "The requested "+nf.Entity+" was not found.")
		return
	}

	var be httperr.BusinessError
	if !errors.As(err, &be) {
		_ = c.Error(err)
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	msg := messages[be.Code]
	if msg == "" {
		msg = "Request failed."
	}

	httperr.Write(c, statusFor(be.Code), be.Code, msg)
}

func statusFor(code string) int {
	switch code {
	case httperr.CodeNotFound:
		return http.StatusNotFound
	case httperr.CodeForbidden:
		return http.StatusForbidden
	case httperr.CodeUnauthenticated, httperr.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case httperr.CodeSlotUnavailable,
		httperr.CodeAlreadyCancelled,
		httperr.CodeInvalidTransition,
		httperr.CodeServiceHasDependents,
		httperr.CodeTimeSlotExists,
		httperr.CodeEmailTaken:
		return http.StatusConflict
	case httperr.CodeImageStorageDisabled:
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

// paramID reads a positive numeric path parameter. It writes the 400
// itself and reports false when the value is unusable.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.Invalid(c, name, "must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// queryID reads an optional numeric query parameter.
func queryID(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		httperr.Invalid(c, name, "must be a positive integer")
		return nil, false
	}

	v := uint(id)
	return &v, true
}

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		return false
	}
	return true
}
