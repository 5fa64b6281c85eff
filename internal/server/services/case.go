package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/akorchak/caseflow/internal/common"
	"github.com/akorchak/caseflow/internal/server/models"
	"github.com/akorchak/caseflow/internal/server/repositories/cases"
	"github.com/akorchak/caseflow/internal/server/repositories/repomanager"
)

// CaseService covers cases and their parties.
type CaseService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCaseService(db *sql.DB, m repomanager.RepositoryManager) *CaseService {
	return &CaseService{db: db, repomanager: m}
}

func (s *CaseService) List(ctx context.Context, filter cases.ListFilter) ([]models.Case, error) {
	return s.repomanager.Cases(s.db).List(ctx, filter)
}

// Get returns the case with its non-deleted parties attached.
func (s *CaseService) Get(ctx context.Context, id uuid.UUID) (*models.CaseWithParties, error) {
	c, err := s.repomanager.Cases(s.db).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	parties, err := s.repomanager.Parties(s.db).ListByCase(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CaseWithParties{Case: *c, Parties: parties}, nil
}

func (s *CaseService) Create(ctx context.Context, c *models.Case) (*models.Case, error) {
	if c.Title == "" || c.Client == "" {
		return nil, fmt.Errorf("%w: title and client are required", common.ErrorValidation)
	}
	if c.MatterType == "" {
		return nil, fmt.Errorf("%w: matter_type is required", common.ErrorValidation)
	}
	if c.Status == "" {
		c.Status = models.CaseStatusPreFiling
	}
	return s.repomanager.Cases(s.db).Create(ctx, c)
}

func (s *CaseService) Update(ctx context.Context, c *models.Case) (*models.Case, error) {
	if c.Title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	return s.repomanager.Cases(s.db).Update(ctx, c)
}

func (s *CaseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repomanager.Cases(s.db).SoftDelete(ctx, id)
}

// ListParties returns the parties of an existing case. A missing case yields
// ErrorNotFound rather than an empty list.
func (s *CaseService) ListParties(ctx context.Context, caseID uuid.UUID) ([]models.Party, error) {
	if _, err := s.repomanager.Cases(s.db).Get(ctx, caseID); err != nil {
		return nil, err
	}
	return s.repomanager.Parties(s.db).ListByCase(ctx, caseID)
}

// AddParty attaches a party to an existing case.
func (s *CaseService) AddParty(ctx context.Context, p *models.Party) (*models.Party, error) {
	if p.Name == "" || p.Role == "" {
		return nil, fmt.Errorf("%w: name and role are required", common.ErrorValidation)
	}
	if _, err := s.repomanager.Cases(s.db).Get(ctx, p.CaseID); err != nil {
		return nil, err
	}
	return s.repomanager.Parties(s.db).Create(ctx, p)
}
