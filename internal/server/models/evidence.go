package models

import (
	"time"

	"github.com/google/uuid"
)

// Evidence type values.
const (
	EvidenceTypePhysical  = "Physical"
	EvidenceTypeDigital   = "Digital"
	EvidenceTypeDocument  = "Document"
	EvidenceTypeTestimony = "Testimony"
	EvidenceTypeForensic  = "Forensic"
)

// Admissibility status values.
const (
	AdmissibilityAdmissible   = "Admissible"
	AdmissibilityChallenged   = "Challenged"
	AdmissibilityInadmissible = "Inadmissible"
	AdmissibilityPending      = "Pending"
)

// EvidenceItem is a tracked piece of evidence. Items are hard-deleted and
// carry a tracking UUID assigned at intake, separate from the row ID.
type EvidenceItem struct {
	ID             uuid.UUID `json:"id"`
	CaseID         uuid.UUID `json:"case_id"`
	Title          string    `json:"title"`
	EvidenceType   string    `json:"type"`
	Description    string    `json:"description"`
	CollectionDate time.Time `json:"collection_date"`
	CollectedBy    string    `json:"collected_by"`
	Custodian      string    `json:"custodian"`
	Location       string    `json:"location"`
	Admissibility  string    `json:"admissibility"`
	Tags           Tags      `json:"tags"`
	TrackingUUID   uuid.UUID `json:"tracking_uuid"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
