package mysql

import (
	"context"

	"gorm.io/gorm"

	decisionDomain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/decision"
)

type DecisionRepository struct{ db *gorm.DB }

func NewDecisionRepository(db *gorm.DB) *DecisionRepository { return &DecisionRepository{db: db} }

func (r *DecisionRepository) Create(ctx context.Context, d *decisionDomain.Decision) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DecisionRepository) GetByApplicationID(ctx context.Context, applicationNumericID uint64) (*decisionDomain.Decision, error) {
	var out decisionDomain.Decision
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationNumericID).
		First(&out)
	return &out, res.Error
}

func (r *DecisionRepository) GetByDecisionID(ctx context.Context, decisionID string) (*decisionDomain.Decision, error) {
	var out decisionDomain.Decision
	res := r.db.WithContext(ctx).
		Where("decision_id = ?", decisionID).
		First(&out)
	return &out, res.Error
}
