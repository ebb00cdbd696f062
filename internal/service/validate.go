package service

import (
	netmail "net/mail"
	"unicode/utf8"
)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	emailMaxLen   = 100
	messageMinLen = 10
	messageMaxLen = 5000
)

// validateSubmission checks the form bounds and returns per-field error
// messages, or nil when everything passes. A field can carry more than one
// message.
func validateSubmission(in SubmitInput) FieldErrors {
	errs := FieldErrors{}

	if n := utf8.RuneCountInString(in.Name); n < nameMinLen {
		errs["name"] = append(errs["name"], "Name must be at least 2 characters")
	} else if n > nameMaxLen {
		errs["name"] = append(errs["name"], "Name must be less than 100 characters")
	}

	if !validEmail(in.Email) {
		errs["email"] = append(errs["email"], "Please enter a valid email")
	}
	if utf8.RuneCountInString(in.Email) > emailMaxLen {
		errs["email"] = append(errs["email"], "Email must be less than 100 characters")
	}

	if n := utf8.RuneCountInString(in.Message); n < messageMinLen {
		errs["message"] = append(errs["message"], "Message must be at least 10 characters")
	} else if n > messageMaxLen {
		errs["message"] = append(errs["message"], "Message must be less than 5000 characters")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validEmail reports whether s is a bare, parseable email address. Addresses
// with a display name ("A <a@b.c>") are rejected; the form field must hold
// the address alone.
func validEmail(s string) bool {
	addr, err := netmail.ParseAddress(s)
	return err == nil && addr.Address == s
}
