package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	appDomain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	appusecase "github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/application"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/wizard"
)

type LoanHandler struct{ uc *appusecase.Usecase }

func NewLoanHandler(uc *appusecase.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type simulateReq struct {
	Category       string  `json:"category"        validate:"required,loancategory"`
	Amount         float64 `json:"amount"          validate:"required,gte=1000,lte=100000,dec2"`
	DurationMonths int     `json:"duration_months" validate:"required,loanduration"`
	MonthlyIncome  float64 `json:"monthly_income"  validate:"gte=0"`
}

// Simulate returns the live quote, the yearly schedule checkpoints and the
// advisory eligibility label. No side effects.
func (h *LoanHandler) Simulate(c echo.Context) error {
	var req simulateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Simulate(appusecase.SimulateInput{
		Category:       appDomain.Category(req.Category),
		Amount:         req.Amount,
		DurationMonths: req.DurationMonths,
		MonthlyIncome:  req.MonthlyIncome,
	})
	if err != nil {
		var ve *wizard.ValidationError
		if errors.As(err, &ve) || errors.Is(err, appDomain.ErrUnknownCategory) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "simulation failed"})
	}
	return c.JSON(http.StatusOK, dto)
}

// ListApplications returns the user's applications, newest first.
func (h *LoanHandler) ListApplications(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing user_id path param"})
	}
	apps, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "listing failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": apps})
}
