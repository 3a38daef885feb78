package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"atria/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequest",
			err:  failure.BadRequest(errors.New("validation failed")),
			code: http.StatusBadRequest,
		},
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("date must be formatted as YYYY-MM-DD"),
			code: http.StatusBadRequest,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("token expired"),
			code: http.StatusUnauthorized,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("appointment not found"),
			code: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("company still has contacts"),
			code: http.StatusConflict,
		},
		{
			name: "Forbidden",
			err:  failure.Forbidden("role not allowed"),
			code: http.StatusForbidden,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) must return nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) must return nil")
	}
}

func TestGetCode_WrappedFailure(t *testing.T) {
	wrapped := fmt.Errorf("failed to get appointment: %w", failure.NotFound("appointment not found"))

	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected wrapped failure code to survive, got %d", got)
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}
}
