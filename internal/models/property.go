package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertySource records how a directory entry entered the system
type PropertySource string

const (
	SourcePortal PropertySource = "portal"
	SourceLegacy PropertySource = "legacy_import"
)

// PropertyFilter narrows a public directory search. Zero-valued fields
// are ignored.
type PropertyFilter struct {
	District string   `json:"district,omitempty" form:"district"`
	Tehsil   string   `json:"tehsil,omitempty" form:"tehsil"`
	Category Category `json:"category,omitempty" form:"category"`
}

// Property is a public directory entry for a registered homestay. Entries
// are created when an application is approved or imported from the legacy
// register.
type Property struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RegistrationNo string             `bson:"registrationNo" json:"registrationNo"`
	Name           string             `bson:"name" json:"name"`
	OwnerName      string             `bson:"ownerName" json:"ownerName"`
	District       string             `bson:"district" json:"district"`
	Tehsil         string             `bson:"tehsil" json:"tehsil"`
	Village        string             `bson:"village,omitempty" json:"village,omitempty"`
	LocationType   LocationType       `bson:"locationType" json:"locationType"`
	Category       Category           `bson:"category" json:"category"`
	Rooms          int                `bson:"rooms" json:"rooms"`
	Beds           int                `bson:"beds" json:"beds"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Source         PropertySource     `bson:"source" json:"source"`
	ValidUntil     time.Time          `bson:"validUntil,omitempty" json:"validUntil,omitempty"`
	ApprovedAt     time.Time          `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
