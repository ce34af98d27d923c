// Package wizard implements the six-step loan application flow as a pure
// state machine: an immutable-per-step Session value plus Apply, the
// transition function. Side effects (the submission call) live in Manager.
package wizard

import (
	domain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
)

type Step int

const (
	StepCategorySelection Step = iota + 1
	StepSimulation
	StepFinancialSituation
	StepDocumentsAndPurpose
	StepSummaryConfirmation
	StepSuccess
)

var stepNames = map[Step]string{
	StepCategorySelection:   "category_selection",
	StepSimulation:          "simulation",
	StepFinancialSituation:  "financial_situation",
	StepDocumentsAndPurpose: "documents_and_purpose",
	StepSummaryConfirmation: "summary_confirmation",
	StepSuccess:             "success",
}

func (s Step) String() string {
	if n, ok := stepNames[s]; ok {
		return n
	}
	return "unknown"
}

// DocumentSlot names one of the two independent attachment slots.
type DocumentSlot string

const (
	SlotIdentity DocumentSlot = "identity"
	SlotAddress  DocumentSlot = "address"
)

// Draft is the in-memory application being edited. It is carried by value:
// every accepted event produces a new Session with a new Draft, which keeps
// guards and replay trivial.
type Draft struct {
	UserID   string
	Currency string

	Category       domain.Category
	Amount         float64
	DurationMonths int

	MonthlyIncome    float64
	EmploymentStatus string
	HousingStatus    string

	Purpose       string
	PurposeDetail string

	IdentityDocumentRef string
	AddressDocumentRef  string
}

// Session is the full machine state. HasPriorApplication is read from the
// repository when the session starts; first-ever applicants must attach both
// documents before reaching the summary.
type Session struct {
	Step                Step
	Draft               Draft
	HasPriorApplication bool
}

// NewSession seeds the draft the way the simulation screen does: the sliders
// start mid-range rather than empty.
func NewSession(userID, currency string, hasPrior bool) Session {
	return Session{
		Step: StepCategorySelection,
		Draft: Draft{
			UserID:         userID,
			Currency:       currency,
			Amount:         10000,
			DurationMonths: 24,
		},
		HasPriorApplication: hasPrior,
	}
}

// ---- events ----

type Event interface{ event() }

type SelectCategory struct{ Category domain.Category }

type SetTerms struct {
	Amount         float64
	DurationMonths int
}

type SetFinancialSituation struct {
	MonthlyIncome    float64
	EmploymentStatus string
	HousingStatus    string
}

type SetPurpose struct {
	Purpose string
	Detail  string
}

type AttachDocument struct {
	Slot DocumentSlot
	Ref  string
}

type ClearDocument struct{ Slot DocumentSlot }

type Next struct{}
type Back struct{}
type Restart struct{}

func (SelectCategory) event()        {}
func (SetTerms) event()              {}
func (SetFinancialSituation) event() {}
func (SetPurpose) event()            {}
func (AttachDocument) event()        {}
func (ClearDocument) event()         {}
func (Next) event()                  {}
func (Back) event()                  {}
func (Restart) event()               {}

// Apply is the pure transition function (session, event) -> session'. A
// rejected event returns the session unchanged alongside the validation
// error; nothing is ever half-applied.
func Apply(s Session, ev Event) (Session, error) {
	switch e := ev.(type) {
	case SelectCategory:
		if s.Step != StepCategorySelection {
			return s, ErrEventNotAllowed
		}
		if !e.Category.Valid() {
			return s, ErrUnknownCategory
		}
		s.Draft.Category = e.Category
		return s, nil

	case SetTerms:
		if s.Step != StepSimulation {
			return s, ErrEventNotAllowed
		}
		if !domain.ValidAmount(e.Amount) {
			return s, ErrAmountOutOfRange
		}
		if !domain.ValidDuration(e.DurationMonths) {
			return s, ErrDurationOutOfRange
		}
		s.Draft.Amount = e.Amount
		s.Draft.DurationMonths = e.DurationMonths
		return s, nil

	case SetFinancialSituation:
		if s.Step != StepFinancialSituation {
			return s, ErrEventNotAllowed
		}
		s.Draft.MonthlyIncome = e.MonthlyIncome
		s.Draft.EmploymentStatus = e.EmploymentStatus
		s.Draft.HousingStatus = e.HousingStatus
		return s, nil

	case SetPurpose:
		if s.Step != StepDocumentsAndPurpose {
			return s, ErrEventNotAllowed
		}
		s.Draft.Purpose = e.Purpose
		s.Draft.PurposeDetail = e.Detail
		return s, nil

	case AttachDocument:
		if s.Step != StepDocumentsAndPurpose {
			return s, ErrEventNotAllowed
		}
		return setSlot(s, e.Slot, e.Ref)

	case ClearDocument:
		if s.Step != StepDocumentsAndPurpose {
			return s, ErrEventNotAllowed
		}
		return setSlot(s, e.Slot, "")

	case Next:
		return advance(s)

	case Back:
		if s.Step <= StepCategorySelection || s.Step == StepSuccess {
			return s, ErrEventNotAllowed
		}
		s.Step--
		return s, nil

	case Restart:
		if s.Step != StepSuccess {
			return s, ErrEventNotAllowed
		}
		return NewSession(s.Draft.UserID, s.Draft.Currency, s.HasPriorApplication), nil
	}
	return s, ErrEventNotAllowed
}

// setSlot replaces one attachment slot; re-attaching overwrites, an empty ref
// clears.
func setSlot(s Session, slot DocumentSlot, ref string) (Session, error) {
	switch slot {
	case SlotIdentity:
		s.Draft.IdentityDocumentRef = ref
	case SlotAddress:
		s.Draft.AddressDocumentRef = ref
	default:
		return s, ErrUnknownSlot
	}
	return s, nil
}

func advance(s Session) (Session, error) {
	switch s.Step {
	case StepCategorySelection:
		if s.Draft.Category == "" {
			return s, ErrCategoryRequired
		}
	case StepSimulation, StepFinancialSituation:
		// unconditional forward moves
	case StepDocumentsAndPurpose:
		if err := summaryGuard(s); err != nil {
			return s, err
		}
	case StepSummaryConfirmation:
		// 5 -> 6 only happens through a successful submission
		return s, ErrSubmitRequired
	default:
		return s, ErrEventNotAllowed
	}
	s.Step++
	return s, nil
}

// summaryGuard is the 4 -> 5 gate: purpose declared, and either a prior
// application on record or both document slots filled.
func summaryGuard(s Session) error {
	if s.Draft.Purpose == "" {
		return ErrPurposeRequired
	}
	if !DocumentsSatisfied(s.Draft, s.HasPriorApplication) {
		return ErrDocumentsRequired
	}
	return nil
}

// DocumentsSatisfied reports whether the attachment requirement is met.
// Documents are only demanded from first-ever applicants; repeat applicants
// were vetted on their first application.
func DocumentsSatisfied(d Draft, hasPrior bool) bool {
	if hasPrior {
		return true
	}
	return d.IdentityDocumentRef != "" && d.AddressDocumentRef != ""
}
