package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/common"
	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
)

// MotionService covers motion practice on a case.
type MotionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMotionService(db *sql.DB, m repomanager.RepositoryManager) *MotionService {
	return &MotionService{db: db, repomanager: m}
}

func (s *MotionService) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Motion, error) {
	return s.repomanager.Motions(s.db).ListByCase(ctx, caseID)
}

func (s *MotionService) Get(ctx context.Context, id uuid.UUID) (*models.Motion, error) {
	return s.repomanager.Motions(s.db).Get(ctx, id)
}

func (s *MotionService) Create(ctx context.Context, m *models.Motion) (*models.Motion, error) {
	if m.Title == "" || m.MotionType == "" {
		return nil, fmt.Errorf("%w: title and type are required", common.ErrorValidation)
	}
	if m.Status == "" {
		m.Status = models.MotionStatusDraft
	}
	if _, err := s.repomanager.Cases(s.db).Get(ctx, m.CaseID); err != nil {
		return nil, err
	}
	return s.repomanager.Motions(s.db).Create(ctx, m)
}

func (s *MotionService) Update(ctx context.Context, m *models.Motion) (*models.Motion, error) {
	if m.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repomanager.Motions(s.db).Update(ctx, m)
}

func (s *MotionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repomanager.Motions(s.db).SoftDelete(ctx, id)
}

// DocketService covers docket entries on a case.
type DocketService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewDocketService(db *sql.DB, m repomanager.RepositoryManager) *DocketService {
	return &DocketService{db: db, repomanager: m}
}

func (s *DocketService) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.DocketEntry, error) {
	return s.repomanager.Docket(s.db).ListByCase(ctx, caseID)
}

func (s *DocketService) Get(ctx context.Context, id uuid.UUID) (*models.DocketEntry, error) {
	return s.repomanager.Docket(s.db).Get(ctx, id)
}

func (s *DocketService) Create(ctx context.Context, e *models.DocketEntry) (*models.DocketEntry, error) {
	if e.Title == "" || e.EntryType == "" {
		return nil, fmt.Errorf("%w: title and type are required", common.ErrorValidation)
	}
	if _, err := s.repomanager.Cases(s.db).Get(ctx, e.CaseID); err != nil {
		return nil, err
	}
	return s.repomanager.Docket(s.db).Create(ctx, e)
}

func (s *DocketService) Update(ctx context.Context, e *models.DocketEntry) (*models.DocketEntry, error) {
	if e.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repomanager.Docket(s.db).Update(ctx, e)
}

func (s *DocketService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repomanager.Docket(s.db).Delete(ctx, id)
}

// EvidenceService covers evidence intake and chain-of-custody fields.
type EvidenceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEvidenceService(db *sql.DB, m repomanager.RepositoryManager) *EvidenceService {
	return &EvidenceService{db: db, repomanager: m}
}

func (s *EvidenceService) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.EvidenceItem, error) {
	return s.repomanager.Evidence(s.db).ListByCase(ctx, caseID)
}

func (s *EvidenceService) Get(ctx context.Context, id uuid.UUID) (*models.EvidenceItem, error) {
	return s.repomanager.Evidence(s.db).Get(ctx, id)
}

// Create registers an item, assigning a tracking UUID and defaulting
// admissibility to Pending.
func (s *EvidenceService) Create(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error) {
	if e.Title == "" || e.EvidenceType == "" {
		return nil, fmt.Errorf("%w: title and type are required", common.ErrorValidation)
	}
	if e.Admissibility == "" {
		e.Admissibility = models.AdmissibilityPending
	}
	e.TrackingUUID = uuid.New()
	if _, err := s.repomanager.Cases(s.db).Get(ctx, e.CaseID); err != nil {
		return nil, err
	}
	return s.repomanager.Evidence(s.db).Create(ctx, e)
}

func (s *EvidenceService) Update(ctx context.Context, e *models.EvidenceItem) (*models.EvidenceItem, error) {
	if e.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repomanager.Evidence(s.db).Update(ctx, e)
}

func (s *EvidenceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repomanager.Evidence(s.db).Delete(ctx, id)
}
