package models

import "gorm.io/gorm"

// Role is the closed set of access levels. New roles must be added here and
// handled at the role gate.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Role     Role   `json:"role" gorm:"type:varchar(16);not null;default:user"`
}
