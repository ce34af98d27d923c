package decisionmock

import (
	"context"

	domain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/decision"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, d *domain.Decision) error
	GetByApplicationIDFn func(ctx context.Context, applicationID uint64) (*domain.Decision, error)
	GetByDecisionIDFn    func(ctx context.Context, decisionID string) (*domain.Decision, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Decision) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID uint64) (*domain.Decision, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByDecisionID(ctx context.Context, decisionID string) (*domain.Decision, error) {
	if m.GetByDecisionIDFn != nil {
		return m.GetByDecisionIDFn(ctx, decisionID)
	}
	return nil, context.Canceled
}
