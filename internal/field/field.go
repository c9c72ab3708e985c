package field

import (
	"regexp"

	"github.com/hpungsan/satchel/internal/errors"
)

var (
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.[a-zA-Z]{2,}$`)
)

// Phone is a validated 10-digit phone number.
type Phone string

// Email is a validated email address.
type Email string

// Address is a validated free-text postal address.
type Address string

// ValidatePhone reports whether s is exactly 10 ASCII digits.
func ValidatePhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// ValidateEmail reports whether s matches the local@domain.tld pattern.
func ValidateEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidateAddress reports whether s is at least 2 characters long.
// The raw length is checked; no trimming is applied.
func ValidateAddress(s string) bool {
	return len(s) >= 2
}

// NewPhone constructs a Phone, failing with a VALIDATION error on bad input.
func NewPhone(s string) (Phone, error) {
	if !ValidatePhone(s) {
		return "", errors.NewValidation("phone number must be 10 digits")
	}
	return Phone(s), nil
}

// NewEmail constructs an Email, failing with a VALIDATION error on bad input.
func NewEmail(s string) (Email, error) {
	if !ValidateEmail(s) {
		return "", errors.NewValidation("invalid email format")
	}
	return Email(s), nil
}

// NewAddress constructs an Address, failing with a VALIDATION error on bad input.
func NewAddress(s string) (Address, error) {
	if !ValidateAddress(s) {
		return "", errors.NewValidation("address must be at least 2 characters long")
	}
	return Address(s), nil
}

func (p Phone) String() string   { return string(p) }
func (e Email) String() string   { return string(e) }
func (a Address) String() string { return string(a) }
