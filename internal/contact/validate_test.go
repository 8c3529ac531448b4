package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired_WhitespaceOnly(t *testing.T) {
	for _, value := range []string{"", " ", "   ", "\t", "\n", " \t\n "} {
		res := ValidateRequired(value, "Name")

		assert.False(t, res.Valid, "value %q should be invalid", value)
		assert.Equal(t, "Name is required", res.Error)
	}
}

func TestValidateRequired_Present(t *testing.T) {
	res := ValidateRequired("  Blake  ", "Name")

	assert.True(t, res.Valid)
	assert.Empty(t, res.Error)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr string
	}{
		{name: "valid", email: "blake@example.com"},
		{name: "valid with surrounding whitespace", email: "  blake@example.com  "},
		{name: "empty", email: "", wantErr: "Email is required"},
		{name: "whitespace only", email: "   ", wantErr: "Email is required"},
		{name: "missing at sign", email: "blakeexample.com", wantErr: "Please enter a valid email address"},
		{name: "missing domain", email: "blake@", wantErr: "Please enter a valid email address"},
		{name: "missing tld", email: "blake@example", wantErr: "Please enter a valid email address"},
		{name: "embedded whitespace", email: "blake yoder@example.com", wantErr: "Please enter a valid email address"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateEmail(tc.email)

			if tc.wantErr == "" {
				assert.True(t, res.Valid)
			} else {
				assert.False(t, res.Valid)
				assert.Equal(t, tc.wantErr, res.Error)
			}
		})
	}
}

func TestValidateEmail_TooLong(t *testing.T) {
	// 263 characters total, shape itself is valid
	email := strings.Repeat("a", 250) + "@example.com"
	require.Greater(t, len(email), 254)

	res := ValidateEmail(email)

	assert.False(t, res.Valid)
	assert.Equal(t, "Email address is too long", res.Error)
}

func TestValidateLength(t *testing.T) {
	res := ValidateLength("Hi", "Message", 3, 100)
	assert.False(t, res.Valid)
	assert.Equal(t, "Message must be at least 3 characters", res.Error)

	res = ValidateLength("Hello World", "Message", 1, 5)
	assert.False(t, res.Valid)
	assert.Equal(t, "Message must be 5 characters or less", res.Error)

	res = ValidateLength("Hello", "Message", 1, 100)
	assert.True(t, res.Valid)
}

func TestValidateLength_CountsCharactersNotBytes(t *testing.T) {
	// 700 characters of 3-byte runes is 2100 bytes but well under the cap
	message := strings.Repeat("你", 700)

	res := ValidateLength(message, "Message", 1, 2000)
	assert.True(t, res.Valid)

	res = ValidateLength(strings.Repeat("你", 2001), "Message", 1, 2000)
	assert.False(t, res.Valid)
	assert.Equal(t, "Message must be 2000 characters or less", res.Error)
}

func TestValidateEmail_LengthCountsCharactersNotBytes(t *testing.T) {
	// 142 characters with multibyte runes exceeds 254 bytes but not 254 characters
	email := strings.Repeat("ü", 130) + "@example.com"
	require.Greater(t, len(email), 254)

	res := ValidateEmail(email)

	assert.True(t, res.Valid)
}

func TestValidateLength_TrimsBeforeMeasuring(t *testing.T) {
	// five characters plus padding still fits a max of 5
	res := ValidateLength("  Hello  ", "Message", 1, 5)

	assert.True(t, res.Valid)
}

func TestValidateLinkedIn(t *testing.T) {
	valid := []string{
		"https://linkedin.com/in/blakeyoder",
		"https://www.linkedin.com/in/blakeyoder",
		"http://linkedin.com/in/blake-yoder_2/",
	}

	for _, url := range valid {
		res := ValidateLinkedIn(url)
		assert.True(t, res.Valid, "url %q should be valid", url)
	}

	invalid := []string{
		"not-a-linkedin-url",
		"https://linkedin.com/company/acme",
		"https://linkedin.com/in/",
		"https://linkedin.com/in/blake yoder",
		"https://linkedin.com/in/blakeyoder/extra",
		"ftp://linkedin.com/in/blakeyoder",
	}

	for _, url := range invalid {
		res := ValidateLinkedIn(url)

		assert.False(t, res.Valid, "url %q should be invalid", url)
		assert.Equal(t, "Please enter a valid LinkedIn profile URL (e.g., https://linkedin.com/in/yourname)", res.Error)
	}

	res := ValidateLinkedIn("")
	assert.False(t, res.Valid)
	assert.Equal(t, "LinkedIn URL is required", res.Error)
}

func TestValidateForm_AllEmpty(t *testing.T) {
	result := ValidateForm(Form{})

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 4)
	assert.Equal(t, "Name is required", result.Errors["name"])
	assert.Equal(t, "Email is required", result.Errors["email"])
	assert.Equal(t, "LinkedIn URL is required", result.Errors["linkedin"])
	assert.Equal(t, "Message is required", result.Errors["message"])
}

func TestValidateForm_SingleFieldFailure(t *testing.T) {
	result := ValidateForm(Form{
		Name:     "Blake",
		Email:    "blake@example.com",
		LinkedIn: "not-a-linkedin-url",
		Message:  "Hello there",
	})

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Please enter a valid LinkedIn profile URL (e.g., https://linkedin.com/in/yourname)", result.Errors["linkedin"])
}

func TestValidateForm_Valid(t *testing.T) {
	result := ValidateForm(Form{
		Name:     "Blake",
		Email:    "blake@example.com",
		LinkedIn: "https://linkedin.com/in/blakeyoder",
		Message:  "Hello there",
	})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateForm_HoneypotIgnored(t *testing.T) {
	form := Form{
		Name:     "Blake",
		Email:    "blake@example.com",
		LinkedIn: "https://linkedin.com/in/blakeyoder",
		Message:  "Hello there",
	}

	clean := ValidateForm(form)

	form.Honeypot = "I am a bot"
	trapped := ValidateForm(form)

	// the honeypot is screened at the pipeline level, never by the validator
	assert.True(t, clean.Valid)
	assert.True(t, trapped.Valid)
}

func TestValidateForm_MessageTooLong(t *testing.T) {
	result := ValidateForm(Form{
		Name:     "Blake",
		Email:    "blake@example.com",
		LinkedIn: "https://linkedin.com/in/blakeyoder",
		Message:  strings.Repeat("a", 2001),
	})

	assert.False(t, result.Valid)
	assert.Equal(t, "Message must be 2000 characters or less", result.Errors["message"])
}
