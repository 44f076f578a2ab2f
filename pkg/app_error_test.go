package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Document not found", http.StatusNotFound)
		if e.Error() != "NOT_FOUND: Document not found" {
			t.Fatalf("unexpected error string %q", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "NOT_FOUND" || body.Message != "Document not found" || body.Details != nil {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("db down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
	})

	t.Run("details are copied", func(t *testing.T) {
		base := NewDomainErrorSimple("PREFLIGHT_FAILED", "Form has violations", http.StatusUnprocessableEntity)
		details := []string{"a", "b"}
		withDetails := base.WithDetails(details)
		details[0] = "changed"
		if withDetails.Details[0] != "a" {
			t.Fatalf("details should be copied")
		}
		if base.Details != nil {
			t.Fatalf("base error must not be mutated")
		}
	})
}
