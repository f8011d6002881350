package models

// Student represents a row of the StudentInfo table.
type Student struct {
	Username     string `db:"username"`
	PasswordHash string `db:"user_password"`
}

// CreateStudentPayload is the raw body of a create-student request.
type CreateStudentPayload struct {
	Usernames string `json:"usernames"`
	Password  string `json:"password"`
}

// StudentInput is a create-student request that passed validation.
type StudentInput struct {
	Username string `validate:"required,notblank"`
	Password string `validate:"required,notblank"`
}
