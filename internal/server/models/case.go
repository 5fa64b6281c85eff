package models

import (
	"time"

	"github.com/google/uuid"
)

// Case status values.
const (
	CaseStatusPreFiling   = "Pre-Filing"
	CaseStatusDiscovery   = "Discovery"
	CaseStatusTrial       = "Trial"
	CaseStatusSettled     = "Settled"
	CaseStatusClosed      = "Closed"
	CaseStatusAppeal      = "Appeal"
	CaseStatusTransferred = "Transferred"
)

// Matter type values.
const (
	MatterTypeLitigation = "Litigation"
	MatterTypeMA         = "M&A"
	MatterTypeIP         = "IP"
	MatterTypeRealEstate = "Real Estate"
	MatterTypeGeneral    = "General"
	MatterTypeAppeal     = "Appeal"
)

// Billing model values.
const (
	BillingModelHourly      = "Hourly"
	BillingModelFixed       = "Fixed"
	BillingModelContingency = "Contingency"
	BillingModelHybrid      = "Hybrid"
)

// Case is a legal matter. Deleted cases keep their row with deleted_at set.
type Case struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Client          string     `json:"client"`
	ClientID        *uuid.UUID `json:"client_id"`
	MatterType      string     `json:"matter_type"`
	MatterSubType   *string    `json:"matter_sub_type"`
	Status          string     `json:"status"`
	FilingDate      time.Time  `json:"filing_date"`
	Description     *string    `json:"description"`
	Value           *float64   `json:"value"`
	Jurisdiction    *string    `json:"jurisdiction"`
	Court           *string    `json:"court"`
	Judge           *string    `json:"judge"`
	MagistrateJudge *string    `json:"magistrate_judge"`
	OpposingCounsel *string    `json:"opposing_counsel"`
	BillingModel    *string    `json:"billing_model"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Version         int        `json:"version"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// CaseWithParties is the detail view returned for a single case.
type CaseWithParties struct {
	Case
	Parties []Party `json:"parties"`
}
