package http

import (
	"errors"
	"strings"
	"testing"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		ReviewerID string `validate:"hex32"`
	}
	cv := NewValidator()

	// valid: 32-char lowercase hex
	ok := P{ReviewerID: strings.Repeat("a", 32)}
	if err := cv.Validate(ok); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	// invalid samples
	for _, s := range []string{
		"",                                  // empty
		strings.Repeat("A", 32),             // uppercase
		"deadbeef",                          // too short
		strings.Repeat("g", 32),             // non-hex char
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",   // 31 chars
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x", // 33 with extra
	} {
		bad := P{ReviewerID: s}
		err := cv.Validate(bad)
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "ReviewerID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Amount float64 `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{24000, 1499.99, 2.00, 0.9} {
		if err := cv.Validate(P{Amount: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999, 1000.005} {
		err := cv.Validate(P{Amount: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestLoanCategoryValidation(t *testing.T) {
	type P struct {
		Category string `validate:"loancategory"`
	}
	cv := NewValidator()

	for _, s := range []string{"personal", "mortgage", "auto", "business"} {
		if err := cv.Validate(P{Category: s}); err != nil {
			t.Fatalf("expected loancategory OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"", "yacht", "Personal", "student"} {
		err := cv.Validate(P{Category: s})
		if err == nil {
			t.Fatalf("expected loancategory error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Category", "personal, mortgage, auto, business") {
			t.Fatalf("expected category message for %q, got %+v", s, fe)
		}
	}
}

func TestLoanDurationValidation(t *testing.T) {
	type P struct {
		DurationMonths int `validate:"loanduration"`
	}
	cv := NewValidator()

	for _, m := range []int{6, 12, 24, 48, 84} {
		if err := cv.Validate(P{DurationMonths: m}); err != nil {
			t.Fatalf("expected loanduration OK for %d, got %v", m, err)
		}
	}
	for _, m := range []int{0, 5, 7, 25, 90, -6} {
		err := cv.Validate(P{DurationMonths: m})
		if err == nil {
			t.Fatalf("expected loanduration error for %d", m)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "DurationMonths", "steps of 6") {
			t.Fatalf("expected duration message for %d, got %+v", m, fe)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name   string  `validate:"required"`
		Min    int     `validate:"gte=10"`
		Max    int     `validate:"lte=5"`
		Amount float64 `validate:"dec2,gte=1000,lte=100000"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name:   "",    // required
		Min:    9,     // gte=10
		Max:    6,     // lte=5
		Amount: 1.333, // dec2 triggers before gte
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	if !containsFieldMsg(fe, "Name", "is required") {
		t.Fatalf("missing 'is required' for Name: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
	if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
		t.Fatalf("missing dec2 message for Amount: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
