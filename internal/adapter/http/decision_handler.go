package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	appDomain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	decisionDomain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/decision"
	decisionUC "github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/decision"
)

// DecisionHandler is the administrative reviewer's surface; the wizard only
// ever observes the status it flips.
type DecisionHandler struct{ uc *decisionUC.Usecase }

func NewDecisionHandler(uc *decisionUC.Usecase) *DecisionHandler { return &DecisionHandler{uc: uc} }

type decideReq struct {
	ReviewerID string `json:"reviewer_id" validate:"required,hex32"`
	Outcome    string `json:"outcome"     validate:"required,oneof=approved rejected"`
	Note       string `json:"note"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	DecidedAt string `json:"decided_at"  validate:"required,datetime=2006-01-02"`
}

func (h *DecisionHandler) Decide(c echo.Context) error {
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	when, _ := time.Parse("2006-01-02", req.DecidedAt)

	dto, err := h.uc.Decide(c.Request().Context(), decisionUC.DecideInput{
		ApplicationID: applicationID,
		ReviewerID:    req.ReviewerID,
		Outcome:       decisionDomain.Outcome(req.Outcome),
		Note:          req.Note,
		DecidedAt:     when,
	})
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, dto)
	case errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, appDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "application not found"})
	case errors.Is(err, appDomain.ErrAlreadyDecided):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, appDomain.ErrInvalidTransition):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "decision failed"})
	}
}
