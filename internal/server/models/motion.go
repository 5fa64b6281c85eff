package models

import (
	"time"

	"github.com/google/uuid"
)

// Motion type values.
const (
	MotionTypeDismiss         = "Dismiss"
	MotionTypeSummaryJudgment = "Summary Judgment"
	MotionTypeCompelDiscovery = "Compel Discovery"
	MotionTypeInLimine        = "In Limine"
	MotionTypeContinuance     = "Continuance"
	MotionTypeSanctions       = "Sanctions"
)

// Motion status values.
const (
	MotionStatusDraft            = "Draft"
	MotionStatusFiled            = "Filed"
	MotionStatusOppositionServed = "Opposition Served"
	MotionStatusReplyServed      = "Reply Served"
	MotionStatusHearingSet       = "Hearing Set"
	MotionStatusSubmitted        = "Submitted"
	MotionStatusDecided          = "Decided"
	MotionStatusWithdrawn        = "Withdrawn"
)

// Motion outcome values.
const (
	MotionOutcomeGranted   = "Granted"
	MotionOutcomeDenied    = "Denied"
	MotionOutcomeWithdrawn = "Withdrawn"
	MotionOutcomeMoot      = "Moot"
)

// Motion is a filed or draft motion on a case.
type Motion struct {
	ID          uuid.UUID  `json:"id"`
	CaseID      uuid.UUID  `json:"case_id"`
	Title       string     `json:"title"`
	MotionType  string     `json:"type"`
	Status      string     `json:"status"`
	Outcome     *string    `json:"outcome"`
	FilingDate  *time.Time `json:"filing_date"`
	HearingDate *time.Time `json:"hearing_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
