package models

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// SuperAdminUserName owns a cart that is never listed.
const SuperAdminUserName = "superadmin"

type User struct {
	ID           string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserName     string    `gorm:"uniqueIndex;size:255;not null" bson:"userName" json:"userName"`
	Email        string    `gorm:"size:255" bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `gorm:"type:VARCHAR(20);default:'USER'" bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
