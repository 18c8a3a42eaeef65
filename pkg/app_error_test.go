package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	if simple.Unwrap() != nil {
		t.Fatalf("expected nil cause")
	}
	body := simple.ToHTTPError()
	if body.Code != "NOT_FOUND" || body.Message != "Not found" {
		t.Fatalf("unexpected body %+v", body)
	}
}
