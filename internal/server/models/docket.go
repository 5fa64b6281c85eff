package models

import (
	"time"

	"github.com/google/uuid"
)

// Docket entry type values.
const (
	DocketEntryTypeFiling      = "Filing"
	DocketEntryTypeOrder       = "Order"
	DocketEntryTypeNotice      = "Notice"
	DocketEntryTypeMinuteEntry = "Minute Entry"
	DocketEntryTypeExhibit     = "Exhibit"
	DocketEntryTypeHearing     = "Hearing"
)

// DocketEntry is a line on a case docket. Entries are hard-deleted.
type DocketEntry struct {
	ID             uuid.UUID `json:"id"`
	CaseID         uuid.UUID `json:"case_id"`
	SequenceNumber int       `json:"sequence_number"`
	Date           time.Time `json:"date"`
	EntryType      string    `json:"type"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	FiledBy        *string   `json:"filed_by"`
	IsSealed       bool      `json:"is_sealed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
