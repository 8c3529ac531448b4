// Package contact validates and screens contact form submissions.
//
// The validators mirror the client-side checks on the contact page so a
// submission rejected here would also have been rejected in the browser;
// the server side is the authoritative pass.
package contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxEmailLength is the RFC 5321 maximum length for an email address
const maxEmailLength = 254

// emailPattern is a permissive shape check that catches most invalid
// addresses; there is intentionally no DNS or MX verification
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// linkedInPattern matches a LinkedIn profile URL and nothing else: scheme,
// optional www, /in/<handle>, optional trailing slash
var linkedInPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+/?$`)

// Form holds one untrusted contact form submission
type Form struct {
	Name     string
	Email    string
	LinkedIn string
	Message  string
	Honeypot string
}

// FieldResult is the outcome of validating a single field
type FieldResult struct {
	Valid bool
	Error string
}

// FormResult aggregates per-field validation outcomes. Valid is true iff
// Errors is empty; passing fields are absent from the map.
type FormResult struct {
	Valid  bool
	Errors map[string]string
}

// ValidateRequired checks that a value is not empty after trimming whitespace
func ValidateRequired(value, fieldName string) FieldResult {
	if strings.TrimSpace(value) == "" {
		return FieldResult{Error: fmt.Sprintf("%s is required", fieldName)}
	}

	return FieldResult{Valid: true}
}

// ValidateEmail checks that a value looks like an email address
func ValidateEmail(value string) FieldResult {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return FieldResult{Error: "Email is required"}
	}

	if utf8.RuneCountInString(trimmed) > maxEmailLength {
		return FieldResult{Error: "Email address is too long"}
	}

	if !emailPattern.MatchString(trimmed) {
		return FieldResult{Error: "Please enter a valid email address"}
	}

	return FieldResult{Valid: true}
}

// ValidateLength checks that the trimmed value length, in characters rather
// than bytes, is within min and max
func ValidateLength(value, fieldName string, min, max int) FieldResult {
	length := utf8.RuneCountInString(strings.TrimSpace(value))

	if length < min {
		return FieldResult{Error: fmt.Sprintf("%s must be at least %d characters", fieldName, min)}
	}

	if length > max {
		return FieldResult{Error: fmt.Sprintf("%s must be %d characters or less", fieldName, max)}
	}

	return FieldResult{Valid: true}
}

// ValidateLinkedIn checks that a value is a LinkedIn profile URL
func ValidateLinkedIn(value string) FieldResult {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return FieldResult{Error: "LinkedIn URL is required"}
	}

	if !linkedInPattern.MatchString(trimmed) {
		return FieldResult{Error: "Please enter a valid LinkedIn profile URL (e.g., https://linkedin.com/in/yourname)"}
	}

	return FieldResult{Valid: true}
}

// ValidateForm validates every field independently and collects per-field
// errors keyed by the form field name. The honeypot field is never validated;
// it is screened at the pipeline level, not here.
func ValidateForm(form Form) FormResult {
	errs := make(map[string]string)

	if res := ValidateRequired(form.Name, "Name"); !res.Valid {
		errs["name"] = res.Error
	} else if res := ValidateLength(form.Name, "Name", 1, 100); !res.Valid {
		errs["name"] = res.Error
	}

	if res := ValidateEmail(form.Email); !res.Valid {
		errs["email"] = res.Error
	}

	if res := ValidateLinkedIn(form.LinkedIn); !res.Valid {
		errs["linkedin"] = res.Error
	}

	if res := ValidateRequired(form.Message, "Message"); !res.Valid {
		errs["message"] = res.Error
	} else if res := ValidateLength(form.Message, "Message", 1, 2000); !res.Valid {
		errs["message"] = res.Error
	}

	return FormResult{Valid: len(errs) == 0, Errors: errs}
}
