package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApplicationStatus represents the lifecycle state of an application
type ApplicationStatus string

const (
	StatusDraft              ApplicationStatus = "draft"
	StatusSubmitted          ApplicationStatus = "submitted"
	StatusUnderReview        ApplicationStatus = "under_review"
	StatusCorrectionRequired ApplicationStatus = "correction_required"
	StatusApproved           ApplicationStatus = "approved"
	StatusRejected           ApplicationStatus = "rejected"
)

// Gender of the property owner, as declared on the application
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

// OwnershipType of the property
type OwnershipType string

const (
	OwnershipSelf      OwnershipType = "self_owned"
	OwnershipAncestral OwnershipType = "ancestral"
	OwnershipLeasehold OwnershipType = "leasehold"
)

// DocumentType identifies a required upload slot on the documents step
type DocumentType string

const (
	DocOwnershipProof DocumentType = "ownership_proof"
	DocIDProof        DocumentType = "id_proof"
	DocAffidavit      DocumentType = "affidavit"
	DocFireNOC        DocumentType = "fire_noc"
	DocGSTCertificate DocumentType = "gst_certificate"
	DocPropertyPhoto  DocumentType = "property_photo"
)

// PropertyDetails holds the step-1 property and location fields
type PropertyDetails struct {
	Name         string       `bson:"name" json:"name"`
	Address      string       `bson:"address" json:"address"`
	Village      string       `bson:"village,omitempty" json:"village,omitempty"`
	District     string       `bson:"district" json:"district"`
	Tehsil       string       `bson:"tehsil" json:"tehsil"`
	LocationType LocationType `bson:"locationType" json:"locationType"`
	PinCode      string       `bson:"pinCode" json:"pinCode"`
}

// OwnerDetails holds the step-2 owner identity fields
type OwnerDetails struct {
	FullName      string        `bson:"fullName" json:"fullName"`
	Gender        Gender        `bson:"gender" json:"gender"`
	Phone         string        `bson:"phone" json:"phone"`
	Email         string        `bson:"email,omitempty" json:"email,omitempty"`
	IDNumber      string        `bson:"idNumber" json:"idNumber"`
	OwnershipType OwnershipType `bson:"ownershipType" json:"ownershipType"`
	GSTIN         string        `bson:"gstin,omitempty" json:"gstin,omitempty"`
}

// DistanceDetails holds the optional step-4 distance fields, in kilometres
type DistanceDetails struct {
	AirportKM  float64 `bson:"airportKm,omitempty" json:"airportKm,omitempty"`
	RailwayKM  float64 `bson:"railwayKm,omitempty" json:"railwayKm,omitempty"`
	BusStandKM float64 `bson:"busStandKm,omitempty" json:"busStandKm,omitempty"`
	HospitalKM float64 `bson:"hospitalKm,omitempty" json:"hospitalKm,omitempty"`
	MarketKM   float64 `bson:"marketKm,omitempty" json:"marketKm,omitempty"`
}

// DocumentRef is the stored metadata for one uploaded file. The file itself
// lives in object storage; the portal keeps only the reference.
type DocumentRef struct {
	Type       DocumentType `bson:"type" json:"type"`
	FileName   string       `bson:"fileName" json:"fileName"`
	ObjectKey  string       `bson:"objectKey" json:"objectKey"`
	SizeBytes  int64        `bson:"sizeBytes,omitempty" json:"sizeBytes,omitempty"`
	UploadedAt time.Time    `bson:"uploadedAt" json:"uploadedAt"`
}

// CountDocuments returns how many uploaded documents have the given type
func CountDocuments(docs []DocumentRef, t DocumentType) int {
	n := 0
	for _, d := range docs {
		if d.Type == t {
			n++
		}
	}
	return n
}

// HomestayApplication is the full multi-step application record. Drafts are
// saved freely at any step; the step gate is enforced only on forward
// navigation and final submission.
type HomestayApplication struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ApplicationNo  string             `bson:"applicationNo" json:"applicationNo"`
	ApplicantID    primitive.ObjectID `bson:"applicantId" json:"applicantId"`
	Status         ApplicationStatus  `bson:"status" json:"status"`
	CurrentStep    int                `bson:"currentStep" json:"currentStep"`
	MaxStepReached int                `bson:"maxStepReached" json:"maxStepReached"`

	Property PropertyDetails `bson:"property" json:"property"`
	Owner    OwnerDetails    `bson:"owner" json:"owner"`

	Rooms             []RoomRow `bson:"rooms" json:"rooms"`
	Category          Category  `bson:"category,omitempty" json:"category,omitempty"`
	ValidityYears     int       `bson:"validityYears" json:"validityYears"`
	AttachedWashrooms int       `bson:"attachedWashrooms" json:"attachedWashrooms"`
	HasCCTV           bool      `bson:"hasCctv" json:"hasCctv"`
	HasFireSafety     bool      `bson:"hasFireSafety" json:"hasFireSafety"`

	Distances DistanceDetails `bson:"distances,omitempty" json:"distances,omitempty"`
	Documents []DocumentRef   `bson:"documents,omitempty" json:"documents,omitempty"`

	Fee *FeeBreakdown `bson:"fee,omitempty" json:"fee,omitempty"`

	CorrectionMode         bool   `bson:"correctionMode" json:"correctionMode"`
	CorrectionAcknowledged bool   `bson:"correctionAcknowledged" json:"correctionAcknowledged"`
	ReviewComment          string `bson:"reviewComment,omitempty" json:"reviewComment,omitempty"`
	ReviewedBy             string `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`

	SubmittedAt time.Time `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
	ReviewedAt  time.Time `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
