package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/wizard"
	"github.com/andyizyfleyr/banque-web-app-sub000/pkg/amortization"
	"github.com/andyizyfleyr/banque-web-app-sub000/pkg/id"
)

var ErrIncompleteDraft = errors.New("draft is not submittable")

// ListCache is the per-user application list cache. A nil cache is valid and
// simply forwards every read to the repository.
type ListCache interface {
	Get(ctx context.Context, userID string) ([]domain.LoanApplication, bool)
	Set(ctx context.Context, userID string, apps []domain.LoanApplication)
	Invalidate(ctx context.Context, userID string)
}

type Usecase struct {
	repo   domain.Repository
	cache  ListCache
	logger *zap.Logger
}

// compile-time: the usecase is the wizard's submission adapter
var _ wizard.Submitter = (*Usecase)(nil)

func NewUsecase(repo domain.Repository, cache ListCache, logger *zap.Logger) *Usecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Usecase{repo: repo, cache: cache, logger: logger}
}

type SimulateInput struct {
	Category       domain.Category `json:"category"`
	Amount         float64         `json:"amount"`
	DurationMonths int             `json:"duration_months"`
	MonthlyIncome  float64         `json:"monthly_income"`
}

type SimulationDTO struct {
	Category                  domain.Category          `json:"category"`
	Amount                    float64                  `json:"amount"`
	DurationMonths            int                      `json:"duration_months"`
	InterestRateAnnualPercent float64                  `json:"interest_rate_annual_percent"`
	Quote                     amortization.Quote       `json:"quote"`
	Schedule                  []amortization.Checkpoint `json:"schedule"`
	Eligibility               domain.Eligibility       `json:"eligibility"`
}

// Simulate is the live preview behind the simulation step. SubmitApplication
// quotes through the same engine call, so the figure shown is the figure
// stored.
func (u *Usecase) Simulate(in SimulateInput) (*SimulationDTO, error) {
	rate, err := domain.RateFor(in.Category)
	if err != nil {
		return nil, err
	}
	if !domain.ValidAmount(in.Amount) {
		return nil, wizard.ErrAmountOutOfRange
	}
	if !domain.ValidDuration(in.DurationMonths) {
		return nil, wizard.ErrDurationOutOfRange
	}

	quote, err := amortization.ComputeQuote(in.Amount, rate, in.DurationMonths)
	if err != nil {
		return nil, err
	}
	schedule, err := amortization.Schedule(in.Amount, rate, in.DurationMonths)
	if err != nil {
		return nil, err
	}
	return &SimulationDTO{
		Category:                  in.Category,
		Amount:                    in.Amount,
		DurationMonths:            in.DurationMonths,
		InterestRateAnnualPercent: rate,
		Quote:                     quote,
		Schedule:                  schedule,
		Eligibility:               domain.Classify(quote.MonthlyPayment, in.MonthlyIncome),
	}, nil
}

// SubmitApplication assembles the persisted record from a completed draft and
// issues the single create call. The category rate is denormalized here and
// the stored figures come from the same ComputeQuote as the preview. The
// list cache for the user is only invalidated after the create has completed.
func (u *Usecase) SubmitApplication(ctx context.Context, d wizard.Draft) (*domain.LoanApplication, error) {
	rate, err := domain.RateFor(d.Category)
	if err != nil {
		return nil, err
	}
	if !domain.ValidAmount(d.Amount) || !domain.ValidDuration(d.DurationMonths) || d.Purpose == "" || d.UserID == "" {
		return nil, ErrIncompleteDraft
	}

	quote, err := amortization.ComputeQuote(d.Amount, rate, d.DurationMonths)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &domain.LoanApplication{
		ApplicationID: id.NewID32(),
		UserID:        d.UserID,
		RequestID:     uuid.NewString(),
		Amount:        d.Amount,
		Currency:      d.Currency,
		DurationMonths: d.DurationMonths,
		Category:       d.Category,
		InterestRateAnnualPercent: rate,
		MonthlyPayment:            quote.MonthlyPayment,
		TotalRepayment:            quote.TotalRepayment,
		TotalCost:                 quote.TotalCost,
		MonthlyIncome:             d.MonthlyIncome,
		EmploymentStatus:          d.EmploymentStatus,
		HousingStatus:             d.HousingStatus,
		Purpose:                   d.Purpose,
		PurposeDetail:             d.PurposeDetail,
		IdentityDocumentRef:       d.IdentityDocumentRef,
		AddressDocumentRef:        d.AddressDocumentRef,
		Status:                    domain.StatusPendingApproval,
		StatusUpdatedAt:           now,
	}

	if err := u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	if u.cache != nil {
		u.cache.Invalidate(ctx, d.UserID)
	}
	u.logger.Info("loan application created",
		zap.String("application_id", rec.ApplicationID),
		zap.String("user_id", rec.UserID),
		zap.Float64("amount", rec.Amount))
	return rec, nil
}

// List returns the user's applications, newest first, through the cache.
func (u *Usecase) List(ctx context.Context, userID string) ([]domain.LoanApplication, error) {
	if u.cache != nil {
		if apps, ok := u.cache.Get(ctx, userID); ok {
			return apps, nil
		}
	}
	apps, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		u.cache.Set(ctx, userID, apps)
	}
	return apps, nil
}
