package dto

// RegisterStudentRequest represents the student registration form
type RegisterStudentRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=150"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	FirstName    string `json:"firstName" binding:"required,min=2,max=150"`
	LastName     string `json:"lastName" binding:"required,min=2,max=150"`
	PhoneNumber  string `json:"phoneNumber" binding:"omitempty"`
	MatricNo     string `json:"matricNo" binding:"required,len=10"`
	DepartmentID int64  `json:"departmentId" binding:"required,min=1"`
	Level        string `json:"level" binding:"required,oneof=100 200 300 400 500"`
}

// LoginRequest represents a credential submission. Identifier may be a username
// or an email, matched case-insensitively.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh submission
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the presented refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents the response after successful authentication
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
	UserType     string `json:"userType"` // clients route to the student or admin dashboard on this
}

// StudentProfile represents the student part of a profile
type StudentProfile struct {
	MatricNo       string `json:"matricNo"`
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	DepartmentCode string `json:"departmentCode"`
	Level          string `json:"level"`
}

// ProfileResponse represents the authenticated user's profile. Student is nil
// for admin accounts.
type ProfileResponse struct {
	UserID      int64           `json:"userId"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
	UserType    string          `json:"userType"`
	IsVerified  bool            `json:"isVerified"`
	Student     *StudentProfile `json:"student,omitempty"`
}

// RegisterResponse represents the response after successful registration
type RegisterResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	MatricNo string `json:"matricNo"`
}
