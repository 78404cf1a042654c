package errors

import (
	"fmt"
	"testing"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalogError(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3: did not find expected key")
	err := NewCatalogError("failed to parse catalog", cause).WithPath("catalog.yaml")

	want := "catalog error [path=catalog.yaml]: failed to parse catalog: yaml: line 3: did not find expected key"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !Is(err, ErrCatalogInvalid) {
		t.Error("parse failure should match ErrCatalogInvalid")
	}
	if Is(err, ErrCatalogNotFound) {
		t.Error("parse failure should not match ErrCatalogNotFound")
	}

	var catalogErr *CatalogError
	if !As(err, &catalogErr) {
		t.Fatal("As should find *CatalogError")
	}
	if catalogErr.Path != "catalog.yaml" {
		t.Errorf("Path = %q, want %q", catalogErr.Path, "catalog.yaml")
	}
}

func TestCatalogError_NotFound(t *testing.T) {
	err := NewCatalogError("cannot open catalog", ErrCatalogNotFound)

	if !Is(err, ErrCatalogNotFound) {
		t.Error("should match ErrCatalogNotFound through its cause")
	}
	if Is(err, ErrCatalogInvalid) {
		t.Error("missing file should not be reported as invalid")
	}
	if err.Error() != "catalog error: cannot open catalog: catalog not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("size", "XL").WithCause(ErrOptionNotFound)

	if err.Error() != "size 'XL' not found: option not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !Is(err, ErrOptionNotFound) {
		t.Error("should match ErrOptionNotFound")
	}
	if !Is(err, &NotFoundError{}) {
		t.Error("should match any *NotFoundError")
	}
	if !IsUserFacing(err) {
		t.Error("NotFoundError should be user facing")
	}
	if GetSeverity(err) != SeverityWarning {
		t.Errorf("GetSeverity() = %v, want warning", GetSeverity(err))
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("bad value"),
			want: "validation error: bad value",
		},
		{
			name: "field and value",
			err:  NewValidationError("must be positive").WithField("filters.price_step").WithValue(-5),
			want: "validation error [field=filters.price_step, value=-5]: must be positive",
		},
		{
			name: "with cause",
			err:  NewValidationError("bad hex").WithCause(New("parse failure")),
			want: "validation error: bad hex: parse failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !Is(tt.err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}
		})
	}
}

func TestClassification_PlainErrors(t *testing.T) {
	plain := New("boom")

	if IsUserFacing(plain) {
		t.Error("plain errors are not user facing")
	}
	if GetSeverity(plain) != SeverityError {
		t.Error("plain errors default to SeverityError")
	}
	if IsUserFacing(nil) {
		t.Error("nil is not user facing")
	}
	if GetSeverity(nil) != SeverityDebug {
		t.Error("nil severity should be debug")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	if Wrapf(nil, "ctx %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}

	base := NewNotFoundError("color", "teal")
	wrapped := Wrapf(base, "selecting on %s", "product-1")
	if wrapped.Error() != "selecting on product-1: color 'teal' not found" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}

	var nf *NotFoundError
	if !As(wrapped, &nf) {
		t.Error("wrapped error should still unwrap to *NotFoundError")
	}
	if !IsUserFacing(Wrap(base, "ctx")) {
		t.Error("wrapping should preserve user-facing classification")
	}
}
