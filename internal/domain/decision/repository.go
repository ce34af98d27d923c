package decision

import "context"

type Repository interface {
	// Create a new decision (DB uniqueness ensures at most one per application)
	Create(ctx context.Context, d *Decision) error

	// Get decision by the application's numeric id
	GetByApplicationID(ctx context.Context, applicationID uint64) (*Decision, error)

	// Get by public decision_id
	GetByDecisionID(ctx context.Context, decisionID string) (*Decision, error)
}
