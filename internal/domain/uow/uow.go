package uow

import (
	"context"

	"github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/decision"
)

type Repos struct {
	Applications application.Repository
	Decisions    decision.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.LoanApplication) error) error
}
