package httperr

import (
	"fmt"
	"testing"
)

func TestBusinessErrorRoundTrip(t *testing.T) {
	err := ErrBusinessDetail("missing_field", "patient_name")

	if !IsBusiness(err, "missing_field") {
		t.Fatal("IsBusiness failed on matching code")
	}
	if IsBusiness(err, "other_code") {
		t.Fatal("IsBusiness matched the wrong code")
	}
	if BusinessCode(err) != "missing_field" {
		t.Fatalf("code = %q", BusinessCode(err))
	}
	if BusinessDetail(err) != "patient_name" {
		t.Fatalf("detail = %q", BusinessDetail(err))
	}
}

func TestBusinessErrorThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create booking: %w", ErrBusiness("disallowed_day"))

	if !IsBusiness(err, "disallowed_day") {
		t.Fatal("wrapped business error not recognized")
	}
}

func TestNonBusinessError(t *testing.T) {
	err := fmt.Errorf("plain failure")

	if BusinessCode(err) != "" {
		t.Fatal("plain error reported a business code")
	}
	if IsBusiness(err, "anything") {
		t.Fatal("plain error matched a business code")
	}
}
