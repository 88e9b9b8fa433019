package model

import (
	"time"
)

type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "Available"
	StatusOccupied  PropertyStatus = "Occupied"
)

// Property is a rental listing owned by exactly one Owner. The owner id is a
// plain reference checked at creation time only; deleting an owner (which no
// endpoint does) would leave it dangling. Contact is kept as a string so
// phone numbers survive leading zeros and "+" prefixes.
type Property struct {
	ID        string         `bson:"_id" json:"id"`
	OwnerID   string         `bson:"owner_id" json:"owner_id"`
	Slug      string         `bson:"slug" json:"slug"`
	Rent      int            `bson:"rent" json:"rent"`
	Contact   string         `bson:"contact" json:"contact"`
	Area      string         `bson:"area" json:"area"`
	Place     string         `bson:"place" json:"place"`
	Amenities []string       `bson:"amenities" json:"amenities"`
	Status    PropertyStatus `bson:"status" json:"status"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

// PropertyUpdate carries the optional fields of the property update routes.
type PropertyUpdate struct {
	Rent      *int
	Contact   *string
	Area      *string
	Place     *string
	Amenities *[]string
	Status    *PropertyStatus
}
