package validation

import (
	"testing"
)

func TestValidateEmail_Valid(t *testing.T) {
	validEmails := []string{
		"a@b.co",
		"user@example.com",
		"first.last@example.com",
		"user+tag@example.co.uk",
		"user_name@sub.example.org",
		"  padded@example.com  ",
	}

	for _, email := range validEmails {
		err := ValidateEmail(email)
		if err != nil {
			t.Errorf("expected '%s' to be valid, got error: %v", email, err)
		}
	}
}

func TestValidateEmail_Required(t *testing.T) {
	emptyEmails := []string{"", "   "}

	for _, email := range emptyEmails {
		err := ValidateEmail(email)
		if err != ErrEmailRequired {
			t.Errorf("expected ErrEmailRequired for '%s', got: %v", email, err)
		}
	}
}

func TestValidateEmail_Invalid(t *testing.T) {
	invalidEmails := []string{
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user example@example.com",
		"user@exam ple.com",
	}

	for _, email := range invalidEmails {
		err := ValidateEmail(email)
		if err != ErrEmailInvalid {
			t.Errorf("expected ErrEmailInvalid for '%s', got: %v", email, err)
		}
	}
}

func TestValidateEmail_TooLong(t *testing.T) {
	local := make([]byte, 250)
	for i := range local {
		local[i] = 'a'
	}
	longEmail := string(local) + "@example.com"

	err := ValidateEmail(longEmail)
	if err != ErrEmailTooLong {
		t.Errorf("expected ErrEmailTooLong, got: %v", err)
	}
}

func TestValidatePassword_Valid(t *testing.T) {
	validPasswords := []string{"secret1", "123456", "a much longer passphrase"}

	for _, password := range validPasswords {
		err := ValidatePassword(password)
		if err != nil {
			t.Errorf("expected '%s' to be valid, got error: %v", password, err)
		}
	}
}

func TestValidatePassword_Required(t *testing.T) {
	err := ValidatePassword("")
	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got: %v", err)
	}
}

func TestValidatePassword_TooShort(t *testing.T) {
	shortPasswords := []string{"a", "12345", "abcde"}

	for _, password := range shortPasswords {
		err := ValidatePassword(password)
		if err != ErrPasswordTooShort {
			t.Errorf("expected ErrPasswordTooShort for '%s', got: %v", password, err)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	normalized := NormalizeEmail("  user@example.com ")
	if normalized != "user@example.com" {
		t.Errorf("expected trimmed email, got '%s'", normalized)
	}
}
