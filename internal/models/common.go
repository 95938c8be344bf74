// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. Identifiers are server-assigned
// sequential integers.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRef is the projection of a user embedded in joined reads. It
// deliberately carries no email and no password hash.
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Enums
type UserRole string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleSeller UserRole = "seller"
	UserRoleBoth   UserRole = "both"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleBuyer, UserRoleSeller, UserRoleBoth:
		return true
	}
	return false
}

// CanSell reports whether the role allows listing projects.
func (r UserRole) CanSell() bool {
	return r == UserRoleSeller || r == UserRoleBoth
}

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}
