package model

import (
	"time"
)

// Tenant is a renter looking for a property. Tenants initiate contact
// requests against owners; nothing on the document tracks those requests.
type Tenant struct {
	ID             string    `bson:"_id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	HashedPassword string    `bson:"hashed_password" json:"-"` // Not exposed
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// TenantUpdate carries the optional fields of PUT /tenants/{id}.
type TenantUpdate struct {
	Name           *string
	Email          *string
	HashedPassword *string
}
