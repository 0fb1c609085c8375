// Package validate checks user-supplied input before it reaches the
// services. Each function returns the normalized value alongside the error
// so callers can store exactly what was validated.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

const (
	MinYear = 1500

	MinCopies = 1
	MaxCopies = 1000

	MinAmount = 0.01
	MaxAmount = 10000.00
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Text accepts letters and spaces only, within the given length bounds.
func Text(field, value string, minLen, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) < minLen {
		return "", fmt.Errorf("%s must have at least %d characters", field, minLen)
	}
	if len(value) > maxLen {
		return "", fmt.Errorf("%s cannot exceed %d characters", field, maxLen)
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", fmt.Errorf("%s must contain only letters and spaces", field)
		}
	}
	return value, nil
}

func Email(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !emailPattern.MatchString(value) {
		return "", fmt.Errorf("invalid email address: %q", value)
	}
	return value, nil
}

// Phone accepts 8 to 15 digits, nothing else.
func Phone(value string) (string, error) {
	value = strings.TrimSpace(value)
	if len(value) < 8 || len(value) > 15 || !digitsOnly(value) {
		return "", fmt.Errorf("invalid phone number: must contain 8 to 15 digits")
	}
	return value, nil
}

// ISBN strips separators and accepts the 10 and 13 digit forms. The
// returned value is the normalized digit string.
func ISBN(value string) (string, error) {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, "-", "")
	value = strings.ReplaceAll(value, " ", "")
	if !digitsOnly(value) || (len(value) != 10 && len(value) != 13) {
		return "", fmt.Errorf("invalid ISBN: must contain 10 or 13 digits")
	}
	return value, nil
}

func Year(value int) (int, error) {
	current := time.Now().Year()
	if value < MinYear || value > current {
		return 0, fmt.Errorf("published year must be between %d and %d", MinYear, current)
	}
	return value, nil
}

func Copies(value int) (int, error) {
	if value < MinCopies || value > MaxCopies {
		return 0, fmt.Errorf("copies must be between %d and %d", MinCopies, MaxCopies)
	}
	return value, nil
}

// Amount rounds to two decimal places before checking bounds, so an input
// like 0.004 is rejected rather than stored as zero.
func Amount(value float64) (float64, error) {
	value = math.Round(value*100) / 100
	if value < MinAmount || value > MaxAmount {
		return 0, fmt.Errorf("amount must be between %.2f and %.2f", MinAmount, MaxAmount)
	}
	return value, nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
