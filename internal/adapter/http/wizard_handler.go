package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	appDomain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	"github.com/andyizyfleyr/banque-web-app-sub000/internal/usecase/wizard"
)

// WizardHandler drives a single-owner wizard session over HTTP. The session
// itself lives in memory; losing it loses the draft, which mirrors the
// refresh-discards-the-form behavior of the original flow.
type WizardHandler struct {
	mgr             *wizard.Manager
	defaultCurrency string
}

func NewWizardHandler(mgr *wizard.Manager, defaultCurrency string) *WizardHandler {
	return &WizardHandler{mgr: mgr, defaultCurrency: defaultCurrency}
}

// ---- views ----

type draftView struct {
	Category            string  `json:"category,omitempty"`
	Amount              float64 `json:"amount"`
	DurationMonths      int     `json:"duration_months"`
	MonthlyIncome       float64 `json:"monthly_income"`
	EmploymentStatus    string  `json:"employment_status,omitempty"`
	HousingStatus       string  `json:"housing_status,omitempty"`
	Purpose             string  `json:"purpose,omitempty"`
	PurposeDetail       string  `json:"purpose_detail,omitempty"`
	IdentityDocumentRef string  `json:"identity_document_ref,omitempty"`
	AddressDocumentRef  string  `json:"address_document_ref,omitempty"`
}

type sessionView struct {
	SessionID           string    `json:"session_id"`
	Step                int       `json:"step"`
	StepName            string    `json:"step_name"`
	HasPriorApplication bool      `json:"has_prior_application"`
	DocumentsSatisfied  bool      `json:"documents_satisfied"`
	Draft               draftView `json:"draft"`
}

func toView(sid string, s wizard.Session) sessionView {
	return sessionView{
		SessionID:           sid,
		Step:                int(s.Step),
		StepName:            s.Step.String(),
		HasPriorApplication: s.HasPriorApplication,
		DocumentsSatisfied:  wizard.DocumentsSatisfied(s.Draft, s.HasPriorApplication),
		Draft: draftView{
			Category:            string(s.Draft.Category),
			Amount:              s.Draft.Amount,
			DurationMonths:      s.Draft.DurationMonths,
			MonthlyIncome:       s.Draft.MonthlyIncome,
			EmploymentStatus:    s.Draft.EmploymentStatus,
			HousingStatus:       s.Draft.HousingStatus,
			Purpose:             s.Draft.Purpose,
			PurposeDetail:       s.Draft.PurposeDetail,
			IdentityDocumentRef: s.Draft.IdentityDocumentRef,
			AddressDocumentRef:  s.Draft.AddressDocumentRef,
		},
	}
}

// ---- handlers ----

type startWizardReq struct {
	UserID   string `json:"user_id"  validate:"required"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

func (h *WizardHandler) Start(c echo.Context) error {
	var req startWizardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	currency := req.Currency
	if currency == "" {
		currency = h.defaultCurrency
	}
	sid, s, err := h.mgr.Start(c.Request().Context(), req.UserID, currency)
	if err != nil {
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "could not read application history"})
	}
	return c.JSON(http.StatusCreated, toView(sid, s))
}

func (h *WizardHandler) Get(c echo.Context) error {
	sid := c.Param("session_id")
	s, err := h.mgr.Get(sid)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
	}
	return c.JSON(http.StatusOK, toView(sid, s))
}

type wizardEventReq struct {
	Type string `json:"type" validate:"required"`

	Category         string  `json:"category,omitempty"`
	Amount           float64 `json:"amount,omitempty"`
	DurationMonths   int     `json:"duration_months,omitempty"`
	MonthlyIncome    float64 `json:"monthly_income,omitempty"`
	EmploymentStatus string  `json:"employment_status,omitempty"`
	HousingStatus    string  `json:"housing_status,omitempty"`
	Purpose          string  `json:"purpose,omitempty"`
	PurposeDetail    string  `json:"purpose_detail,omitempty"`
	Slot             string  `json:"slot,omitempty"`
	Ref              string  `json:"ref,omitempty"`
}

func decodeEvent(req wizardEventReq) (wizard.Event, error) {
	switch req.Type {
	case "select_category":
		return wizard.SelectCategory{Category: appDomain.Category(req.Category)}, nil
	case "set_terms":
		return wizard.SetTerms{Amount: req.Amount, DurationMonths: req.DurationMonths}, nil
	case "set_financial_situation":
		return wizard.SetFinancialSituation{
			MonthlyIncome:    req.MonthlyIncome,
			EmploymentStatus: req.EmploymentStatus,
			HousingStatus:    req.HousingStatus,
		}, nil
	case "set_purpose":
		return wizard.SetPurpose{Purpose: req.Purpose, Detail: req.PurposeDetail}, nil
	case "attach_document":
		return wizard.AttachDocument{Slot: wizard.DocumentSlot(req.Slot), Ref: req.Ref}, nil
	case "clear_document":
		return wizard.ClearDocument{Slot: wizard.DocumentSlot(req.Slot)}, nil
	case "next":
		return wizard.Next{}, nil
	case "back":
		return wizard.Back{}, nil
	case "restart":
		return wizard.Restart{}, nil
	}
	return nil, fmt.Errorf("unknown event type %q", req.Type)
}

func (h *WizardHandler) ApplyEvent(c echo.Context) error {
	sid := c.Param("session_id")
	var req wizardEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	ev, err := decodeEvent(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	s, err := h.mgr.Apply(sid, ev)
	if err != nil {
		var ve *wizard.ValidationError
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		case errors.As(err, &ve):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ve.Reason})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "event failed"})
		}
	}
	return c.JSON(http.StatusOK, toView(sid, s))
}

// Submit is guard 5 -> 6: only a successful create advances the session. On
// failure the caller gets a recoverable error and the draft is untouched, so
// the user can retry as-is.
func (h *WizardHandler) Submit(c echo.Context) error {
	sid := c.Param("session_id")
	created, err := h.mgr.Submit(c.Request().Context(), sid)
	if err != nil {
		var ve *wizard.ValidationError
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		case errors.Is(err, wizard.ErrSubmissionInFlight):
			return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.As(err, &ve):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: ve.Reason})
		default:
			// PersistenceError: recoverable, the draft is preserved
			return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "submission failed, please retry"})
		}
	}
	s, _ := h.mgr.Get(sid)
	return c.JSON(http.StatusCreated, map[string]any{
		"application": created,
		"session":     toView(sid, s),
	})
}
