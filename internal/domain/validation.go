package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidPartyName      = errors.New("invalid party name")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrInvalidDocumentNumber = errors.New("invalid document number")
	ErrAmountTooLarge        = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxPartyNameLength = 255
	MinPartyNameLength = 1
	MaxDocumentAmount  = "1000000000000" // 1 trillion
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidatePartyName validates a client or supplier display name.
func ValidatePartyName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinPartyNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidPartyName)
	}

	if len(name) > MaxPartyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidPartyName, MaxPartyNameLength)
	}

	return nil
}

// ValidateAmount validates an invoice total or voucher amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxDocumentAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxDocumentAmount)
	}

	return nil
}

// ValidateEmail validates email format. Empty is allowed: party contact
// fields are optional and render as a placeholder.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil
	}

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateDocumentNumber validates invoice and voucher reference numbers.
func ValidateDocumentNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return fmt.Errorf("%w: number cannot be empty", ErrInvalidDocumentNumber)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
