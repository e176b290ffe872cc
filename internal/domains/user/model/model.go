package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldFullName  = "full_name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldPhone     = "phone"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string     `db:"id"`
	FullName  string     `db:"full_name"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	Phone     string     `db:"phone"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
