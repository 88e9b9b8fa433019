package model

import (
	"time"
)

const (
	RoleTenant = "tenant"
	RoleOwner  = "owner"
)

// Account is the generic credential record created by POST /register. It
// shadows a role-specific Owner or Tenant document; the email is duplicated
// here so login can resolve that record without a foreign key.
type Account struct {
	ID             string    `bson:"_id" json:"id"`
	Username       string    `bson:"username" json:"username"`
	Email          string    `bson:"email" json:"email"`
	HashedPassword string    `bson:"hashed_password" json:"-"` // Not exposed
	Role           string    `bson:"role" json:"role"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
