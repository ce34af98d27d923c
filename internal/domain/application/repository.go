package application

import "context"

type Repository interface {
	// Create persists a new application; the only mutation the wizard core
	// ever performs.
	Create(ctx context.Context, a *LoanApplication) error

	// ListByUserID returns the user's applications, newest first.
	ListByUserID(ctx context.Context, userID string) ([]LoanApplication, error)

	// CountByUserID backs the hasPriorApplication read without loading rows.
	CountByUserID(ctx context.Context, userID string) (int64, error)

	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)

	// GetByApplicationIDForUpdate locks the row for the reviewer's decision tx.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)

	Save(ctx context.Context, a *LoanApplication) error
}
