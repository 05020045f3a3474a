package kernel

import (
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// PhoneDigits is the number of significant digits a phone number carries
// after normalization. Matching is performed on these digits only, so the
// same number is recognized whether it was entered with or without the
// country prefix.
const PhoneDigits = 9

// CountryPrefix is the country code stripped from phone numbers during
// normalization and prepended again when formatting for display.
const CountryPrefix = "998"

// ErrPhoneIsNotConstructed is returned when attempting to use an improperly initialized Phone.
// Phones must be created using the NewPhone constructor to ensure validity.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError(
	"phone must be created via the NewPhone constructor")

// Phone represents a normalized phone number.
// Phone is an immutable value object. The constructor accepts free-form user
// input ("+998 90 123-45-67", "901234567", "998901234567") and reduces it to
// the nine significant digits, so two representations of the same number
// always compare equal. The zero value of Phone is invalid and will fail
// validation - use the constructor to create instances.
//
// Example:
//
//	phone, err := kernel.NewPhone("+998 90 123-45-67")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(phone.Digits()) // Output: 901234567
//	fmt.Println(phone)          // Output: +998901234567
type Phone struct { //nolint:recvcheck //using for validation
	digits string
	guard  guard.ConstructorGuard
}

// NewPhone creates a new Phone from free-form user input.
// All non-digit characters are discarded, and a leading country prefix is
// stripped when present. The remaining digits must be exactly PhoneDigits long.
//
// Parameters:
//   - raw: The phone number as entered by a user, in any common format
//
// Returns:
//   - Phone: A valid normalized phone instance
//   - error: Validation error if the input does not reduce to PhoneDigits digits
func NewPhone(raw string) (Phone, error) {
	phone := Phone{
		guard: guard.NewConstructorGuard(),
	}

	if err := phone.setDigits(raw); err != nil {
		return Phone{}, err
	}

	return phone, nil
}

// Validate checks if the Phone was properly constructed using the constructor.
// The zero value of Phone is invalid and will fail this validation.
//
// Returns:
//   - error: ErrPhoneIsNotConstructed if the phone was not properly initialized, nil otherwise
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// Digits returns the nine significant digits of the phone number,
// without the country prefix.
func (p Phone) Digits() string {
	return p.digits
}

// String returns the phone number in international format, with the country
// prefix and a leading plus sign. This method implements the fmt.Stringer interface.
func (p Phone) String() string {
	return "+" + CountryPrefix + p.digits
}

// IsEqual compares two phone numbers for equality.
// Two phones are considered equal if they normalize to the same significant digits.
// Both phones must be properly constructed (pass validation) for the comparison to succeed.
//
// Parameters:
//   - other: The Phone to compare with
//
// Returns:
//   - bool: true if phones are equal, false otherwise
//   - error: Validation error if either phone is improperly constructed
func (p Phone) IsEqual(other Phone) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return p.digits == other.digits, nil
}

// setDigits normalizes the raw input and stores the significant digits with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *Phone) setDigits(raw string) error {
	var builder strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}

	digits := builder.String()
	if len(digits) > PhoneDigits && strings.HasPrefix(digits, CountryPrefix) {
		digits = digits[len(CountryPrefix):]
	}

	if len(digits) != PhoneDigits {
		return errs.NewValueIsInvalidError("phone")
	}

	p.digits = digits
	return nil
}
