package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).WithDetail("field", "reason")
	body := simple.ToHTTPError()
	if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" || body.Details["field"] != "reason" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected message: %s", simple.Error())
	}
}
