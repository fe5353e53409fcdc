package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/tunde/campusfound/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Password min length
	PasswordMinLength = 8

	// PhoneDigits is the required digit count after normalization
	PhoneDigits = 11

	// MatricNoLength is the fixed matric number length
	MatricNoLength = 10
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidateEmail checks email format.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.NewValidationError("email", "email cannot be empty")
	}
	if !CompiledPatterns.Email.MatchString(strings.ToLower(email)) {
		return apperrors.NewValidationError("email", "invalid email format")
	}
	return nil
}

// ValidatePassword checks if password meets requirements: at least 8 characters
// with one letter and one digit.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLength {
		return apperrors.NewValidationError("password", fmt.Sprintf("password must be at least %d characters long", PasswordMinLength))
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}
	if !hasLetter {
		return apperrors.NewValidationError("password", "password must contain at least one letter")
	}
	if !hasDigit {
		return apperrors.NewValidationError("password", "password must contain at least one digit")
	}

	return nil
}

// NormalizePhone strips non-digit characters and validates the result: exactly
// 11 digits, starting with "0". Returns the normalized digit string.
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, char := range phone {
		if unicode.IsDigit(char) {
			digits.WriteRune(char)
		}
	}

	normalized := digits.String()
	if len(normalized) != PhoneDigits {
		return "", fmt.Errorf("%w: must be exactly %d digits", apperrors.ErrInvalidPhoneNumber, PhoneDigits)
	}
	if normalized[0] != '0' {
		return "", fmt.Errorf("%w: must start with 0", apperrors.ErrInvalidPhoneNumber)
	}

	return normalized, nil
}

// NormalizeMatricNo uppercases and validates a matric number against the selected
// department's code. Format: U + year (2 digits) + department code (3 uppercase
// letters) + serial (4 digits), e.g. U25CYS2001. A department-code mismatch is a
// rejection, not a correction. Returns the normalized matric number.
func NormalizeMatricNo(matricNo, departmentCode string) (string, error) {
	matricNo = strings.ToUpper(strings.TrimSpace(matricNo))

	if len(matricNo) != MatricNoLength {
		return "", fmt.Errorf("%w: must be exactly %d characters", apperrors.ErrInvalidMatricNo, MatricNoLength)
	}
	if matricNo[0] != 'U' {
		return "", fmt.Errorf("%w: must start with \"U\"", apperrors.ErrInvalidMatricNo)
	}
	if !isDigits(matricNo[1:3]) {
		return "", fmt.Errorf("%w: characters 2-3 must be year digits", apperrors.ErrInvalidMatricNo)
	}

	deptSegment := matricNo[3:6]
	if !isUpperLetters(deptSegment) {
		return "", fmt.Errorf("%w: characters 4-6 must be uppercase department code letters", apperrors.ErrInvalidMatricNo)
	}
	if !isDigits(matricNo[6:]) {
		return "", fmt.Errorf("%w: characters 7-10 must be numeric", apperrors.ErrInvalidMatricNo)
	}

	if deptSegment != strings.ToUpper(departmentCode) {
		return "", fmt.Errorf("%w: matric code %q does not belong to department %q", apperrors.ErrDepartmentMismatch, deptSegment, departmentCode)
	}

	return matricNo, nil
}

func isDigits(s string) bool {
	for _, char := range s {
		if !unicode.IsDigit(char) {
			return false
		}
	}
	return len(s) > 0
}

func isUpperLetters(s string) bool {
	for _, char := range s {
		if char < 'A' || char > 'Z' {
			return false
		}
	}
	return len(s) > 0
}
