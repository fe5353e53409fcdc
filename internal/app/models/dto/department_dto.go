package dto

import "github.com/tunde/campusfound/internal/app/models"

// CreateDepartmentRequest represents a new department submission
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=150"`
	Code string `json:"code" binding:"required,len=3"`
}

// DepartmentResponse represents a department
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// FromDepartment converts a models.Department to a DepartmentResponse
func FromDepartment(d *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:   d.ID,
		Name: d.Name,
		Code: d.Code,
	}
}

// FromDepartments converts a slice of departments
func FromDepartments(departments []*models.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, FromDepartment(d))
	}
	return responses
}
