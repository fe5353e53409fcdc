package models

// Level values for student year of study
const (
	Level100 = "100"
	Level200 = "200"
	Level300 = "300"
	Level400 = "400"
	Level500 = "500"
)

// Levels is the canonical set of student levels.
var Levels = []string{Level100, Level200, Level300, Level400, Level500}

// IsValidLevel reports whether level is one of the declared levels.
func IsValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

// Student defines the student profile, one-to-one with a User. The student row
// cannot outlive its user (FK cascade).
type Student struct {
	UserID       int64  `json:"userId" db:"user_id"`
	MatricNo     string `json:"matricNo" db:"matric_no"` // unique, immutable once validated
	DepartmentID int64  `json:"departmentId" db:"department_id"`
	Level        string `json:"level" db:"level"`

	// Relations (populated when needed)
	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}
