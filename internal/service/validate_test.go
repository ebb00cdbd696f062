package service

import (
	"strings"
	"testing"
)

func TestValidateSubmission_Valid(t *testing.T) {
	in := SubmitInput{
		Name:    "Grace Hopper",
		Email:   "grace@example.com",
		Message: "Please schedule a demo next week",
	}
	if errs := validateSubmission(in); errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateSubmission_Bounds(t *testing.T) {
	valid := SubmitInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Message: "I would like more information",
	}

	tests := []struct {
		name   string
		mutate func(in *SubmitInput)
		field  string
	}{
		{"name too short", func(in *SubmitInput) { in.Name = "A" }, "name"},
		{"name too long", func(in *SubmitInput) { in.Name = strings.Repeat("a", 101) }, "name"},
		{"email invalid", func(in *SubmitInput) { in.Email = "not-an-email" }, "email"},
		{"email with display name", func(in *SubmitInput) { in.Email = "Ada <ada@example.com>" }, "email"},
		{"email too long", func(in *SubmitInput) { in.Email = strings.Repeat("a", 95) + "@ex.com" }, "email"},
		{"message too short", func(in *SubmitInput) { in.Message = "too short" }, "message"},
		{"message too long", func(in *SubmitInput) { in.Message = strings.Repeat("x", 5001) }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			errs := validateSubmission(in)
			if errs == nil {
				t.Fatal("expected validation errors, got nil")
			}
			if len(errs[tt.field]) == 0 {
				t.Errorf("expected an error on field %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestValidateSubmission_BoundaryLengths(t *testing.T) {
	in := SubmitInput{
		Name:    strings.Repeat("n", 100),
		Email:   "a@b.co",
		Message: strings.Repeat("m", 5000),
	}
	if errs := validateSubmission(in); errs != nil {
		t.Errorf("expected max-length fields to pass, got %v", errs)
	}

	in = SubmitInput{
		Name:    "Al",
		Email:   "a@b.co",
		Message: strings.Repeat("m", 10),
	}
	if errs := validateSubmission(in); errs != nil {
		t.Errorf("expected min-length fields to pass, got %v", errs)
	}
}

func TestValidateSubmission_MultipleFields(t *testing.T) {
	errs := validateSubmission(SubmitInput{Name: "", Email: "", Message: ""})
	if errs == nil {
		t.Fatal("expected validation errors, got nil")
	}
	for _, field := range []string{"name", "email", "message"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected an error on field %q", field)
		}
	}
}

func TestValidateSubmission_RuneCounting(t *testing.T) {
	// 2 multi-byte runes must satisfy the 2-character name minimum.
	in := SubmitInput{
		Name:    "ÁÉ",
		Email:   "a@b.co",
		Message: "0123456789",
	}
	if errs := validateSubmission(in); errs != nil {
		t.Errorf("expected multi-byte name to pass, got %v", errs)
	}
}
