package model

import (
	"time"
)

// Owner is a property owner document. ContactRequestedBy holds the id of the
// tenant with a pending contact request; absent means no request is pending.
type Owner struct {
	ID                 string    `bson:"_id" json:"id"`
	Name               string    `bson:"name" json:"name"`
	Email              string    `bson:"email" json:"email"`
	HashedPassword     string    `bson:"hashed_password" json:"-"` // Not exposed
	ContactRequestedBy *string   `bson:"contact_requested_by,omitempty" json:"contact_requested_by,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at" json:"updated_at"`
}

// OwnerUpdate carries the optional fields of PUT /property-owners/{id}.
// Password, when set, arrives already hashed from the service layer.
type OwnerUpdate struct {
	Name           *string
	Email          *string
	HashedPassword *string
}
