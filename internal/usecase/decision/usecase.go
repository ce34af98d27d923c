package decision

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainApp "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	domainDecision "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/decision"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/uow"
	"github.com/andyizyfleyr/banque-web-app-sub000/pkg/id"
)

// Usecase terminalizes applications on behalf of the administrative reviewer.
// The wizard core never calls this; it only observes the resulting status
// through the application list.
type Usecase struct {
	uow    uow.UnitOfWork
	logger *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, logger *zap.Logger) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Usecase{uow: tx, logger: logger}
}

func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	if u.uow == nil {
		return nil, domainApp.ErrInvalidTransition
	}
	if !in.Outcome.Valid() {
		return nil, domainApp.ErrInvalidTransition
	}
	var dto *DecisionDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domainApp.LoanApplication) error {
		// Status guard: only pending_approval is decidable; active and
		// rejected are terminal.
		if a.Status != domainApp.StatusPendingApproval {
			return domainApp.ErrAlreadyDecided
		}

		if _, err := r.Decisions.GetByApplicationID(ctx, a.ID); err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		} else {
			return domainApp.ErrAlreadyDecided
		}

		d := &domainDecision.Decision{
			DecisionID:    id.NewID32(),
			ApplicationID: a.ID, // numeric FK
			ReviewerID:    in.ReviewerID,
			Outcome:       in.Outcome,
			Note:          in.Note,
			DecidedAt:     in.DecidedAt.UTC(),
		}
		if err := r.Decisions.Create(ctx, d); err != nil {
			return err
		}

		if in.Outcome == domainDecision.OutcomeApproved {
			a.Status = domainApp.StatusActive
		} else {
			a.Status = domainApp.StatusRejected
		}
		a.StatusUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		dto = &DecisionDTO{
			DecisionID:    d.DecisionID,
			ApplicationID: a.ApplicationID, // public id
			Outcome:       d.Outcome,
			Status:        string(a.Status),
			DecidedAt:     d.DecidedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	u.logger.Info("application decided",
		zap.String("application_id", dto.ApplicationID),
		zap.String("outcome", string(dto.Outcome)))
	return dto, nil
}
