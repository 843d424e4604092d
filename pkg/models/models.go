package models

// Domain models matching the database schema in db/migrations/0001_init.sql

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	Created      int64  `json:"created" db:"created"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type AdminUser struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	IsAdmin      bool   `json:"is_admin" db:"is_admin"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type Company struct {
	ID                  int64  `json:"id" db:"id"`
	Name                string `json:"name" db:"name"`
	Country             string `json:"country" db:"country"`
	Description         string `json:"description" db:"description"`
	CertificationStatus string `json:"certification_status" db:"certification_status"`
}

type Product struct {
	ID                int64   `json:"id" db:"id"`
	CompanyID         int64   `json:"company_id" db:"company_id"`
	ModelName         string  `json:"model_name" db:"model_name"`
	MaxRange          float64 `json:"max_range" db:"max_range"`
	MaxSpeed          float64 `json:"max_speed" db:"max_speed"`
	PassengerCapacity int     `json:"passenger_capacity" db:"passenger_capacity"`
}

// Job is a posting on the job board. Company is free text, deliberately not
// a foreign key into companies.
type Job struct {
	ID           int64  `json:"id" db:"id"`
	Title        string `json:"title" db:"title"`
	Company      string `json:"company" db:"company"`
	Location     string `json:"location" db:"location"`
	Description  string `json:"description" db:"description"`
	Requirements string `json:"requirements" db:"requirements"`
	SalaryRange  string `json:"salary_range" db:"salary_range"`
	ContactEmail string `json:"contact_email" db:"contact_email"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
	UserID       *int64 `json:"user_id,omitempty" db:"user_id"`
}

// Session is one server-side session row. UserID and IsAdmin are independent:
// a session may carry a signed-in user, an admin flag, both, or neither.
type Session struct {
	Token     string `json:"token" db:"token"`
	UserID    *int64 `json:"user_id,omitempty" db:"user_id"`
	IsAdmin   bool   `json:"is_admin" db:"is_admin"`
	ExpiresAt int64  `json:"expires_at" db:"expires_at"`
}
