package validation

import (
	"errors"
	"testing"

	"github.com/tunde/campusfound/internal/pkg/apperrors"
)

func TestNormalizeMatricNo(t *testing.T) {
	tests := []struct {
		name     string
		matricNo string
		deptCode string
		want     string
		wantErr  bool
	}{
		{"valid", "U25CYS2001", "CYS", "U25CYS2001", false},
		{"valid lowercase input", "u25cys2001", "CYS", "U25CYS2001", false},
		{"valid lowercase dept code", "U25CYS2001", "cys", "U25CYS2001", false},
		{"department mismatch", "U25CSC2001", "CYS", "", true},
		{"too short", "U25CYS200", "CYS", "", true},
		{"too long", "U25CYS20011", "CYS", "", true},
		{"missing U prefix", "X25CYS2001", "CYS", "", true},
		{"year not digits", "UXXCYS2001", "CYS", "", true},
		{"dept segment not letters", "U25C1S2001", "CYS", "", true},
		{"serial not digits", "U25CYS200X", "CYS", "", true},
		{"empty", "", "CYS", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMatricNo(tt.matricNo, tt.deptCode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeMatricNo(%q, %q) error = %v, wantErr %v", tt.matricNo, tt.deptCode, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeMatricNo(%q, %q) = %q, want %q", tt.matricNo, tt.deptCode, got, tt.want)
			}
		})
	}
}

func TestNormalizeMatricNoErrorKinds(t *testing.T) {
	_, err := NormalizeMatricNo("U25CSC2001", "CYS")
	if !errors.Is(err, apperrors.ErrDepartmentMismatch) {
		t.Errorf("department mismatch error = %v, want ErrDepartmentMismatch", err)
	}

	_, err = NormalizeMatricNo("X25CYS2001", "CYS")
	if !errors.Is(err, apperrors.ErrInvalidMatricNo) {
		t.Errorf("format error = %v, want ErrInvalidMatricNo", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{"valid", "08012345678", "08012345678", false},
		{"valid with separators", "0801-234-5678", "08012345678", false},
		{"valid with spaces", "080 1234 5678", "08012345678", false},
		{"ten digits", "8012345678", "", true},
		{"fourteen digits", "09012345678910", "", true},
		{"does not start with zero", "18012345678", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizePhone(%q) error = %v, wantErr %v", tt.phone, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"secret12", false},
		{"short1", true},
		{"onlyletters", true},
		{"12345678", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("name@afit.edu.ng"); err != nil {
		t.Errorf("expected valid email, got %v", err)
	}
	if err := ValidateEmail("not-an-email"); err == nil {
		t.Error("expected error for malformed email")
	}
	if err := ValidateEmail(""); err == nil {
		t.Error("expected error for empty email")
	}
}
