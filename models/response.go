package models

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User created"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

type LoginSuccessResponse struct {
	Message   string `json:"message" example:"Login successful"`
	Token     string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID    string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	Role      string `json:"role" example:"user"`
	ExpiresAt string `json:"expires_at" example:"2025-01-02T10:00:00Z"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Password changed"`
}

type GetUserSuccessResponse struct {
	Message string `json:"message" example:"User found"`
	User    User   `json:"user"`
}

type GetAllUsersSuccessResponse struct {
	Message string `json:"message" example:"Users retrieved"`
	Users   []User `json:"users"`
	Total   int    `json:"total" example:"10"`
}

type AttendanceResponse struct {
	Message    string     `json:"message" example:"Clock-in recorded"`
	Attendance Attendance `json:"attendance"`
}

type AttendanceListResponse struct {
	Attendances []Attendance `json:"attendances"`
	Total       int          `json:"total" example:"20"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type ValidationErrorResponse struct {
	Error  string `json:"error" example:"Validation failed"`
	Errors any    `json:"errors"`
}
