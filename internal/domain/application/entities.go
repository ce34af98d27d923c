package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusActive          Status = "active"
	StatusRejected        Status = "rejected"
)

type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryMortgage Category = "mortgage"
	CategoryAuto     Category = "auto"
	CategoryBusiness Category = "business"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrUnknownCategory   = errors.New("unknown loan category")
	ErrAlreadyDecided    = errors.New("application already decided")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Requested principal and term bounds enforced by the wizard inputs.
const (
	MinAmount = 1000.0
	MaxAmount = 100000.0

	MinDurationMonths  = 6
	MaxDurationMonths  = 84
	DurationMonthsStep = 6
)

// categoryRates fixes the nominal annual rate (percent) quoted per category.
// The rate is denormalized onto every application at submission time, so a
// later change here never retroactively alters an existing record.
var categoryRates = map[Category]float64{
	CategoryPersonal: 2.0,
	CategoryMortgage: 1.8,
	CategoryAuto:     3.2,
	CategoryBusiness: 4.5,
}

func (c Category) Valid() bool {
	_, ok := categoryRates[c]
	return ok
}

// RateFor returns the nominal annual rate in percent for a category.
func RateFor(c Category) (float64, error) {
	r, ok := categoryRates[c]
	if !ok {
		return 0, ErrUnknownCategory
	}
	return r, nil
}

func ValidAmount(amount float64) bool {
	return amount >= MinAmount && amount <= MaxAmount
}

func ValidDuration(months int) bool {
	return months >= MinDurationMonths && months <= MaxDurationMonths && months%DurationMonthsStep == 0
}

// LoanApplication is the persisted record, immutable once submitted except for
// the status flip performed by the administrative reviewer.
type LoanApplication struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApplicationID string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_applications_application_id" json:"application_id"`
	UserID        string `gorm:"column:user_id;size:32;index:idx_applications_user" json:"user_id"`
	// Client-generated request id; unique so an ambiguous-failure retry
	// carrying the same id cannot create a second record.
	RequestID string `gorm:"column:request_id;type:char(36);uniqueIndex:ux_applications_request_id" json:"request_id"`

	Amount                    float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Currency                  string  `gorm:"size:3" json:"currency"`
	DurationMonths            int     `gorm:"column:duration_months" json:"duration_months"`
	Category                  Category `gorm:"size:16" json:"category"`
	InterestRateAnnualPercent float64 `gorm:"column:interest_rate_annual_percent;type:decimal(6,4)" json:"interest_rate_annual_percent"`

	// Engine output stored verbatim at submission time, never recomputed
	// server-side.
	MonthlyPayment float64 `gorm:"column:monthly_payment;type:decimal(18,6)" json:"monthly_payment"`
	TotalRepayment float64 `gorm:"column:total_repayment;type:decimal(18,6)" json:"total_repayment"`
	TotalCost      float64 `gorm:"column:total_cost;type:decimal(18,6)" json:"total_cost"`

	MonthlyIncome    float64 `gorm:"column:monthly_income;type:decimal(18,2)" json:"monthly_income"`
	EmploymentStatus string  `gorm:"column:employment_status;size:32" json:"employment_status"`
	HousingStatus    string  `gorm:"column:housing_status;size:32" json:"housing_status"`

	Purpose       string `gorm:"size:64" json:"purpose"`
	PurposeDetail string `gorm:"column:purpose_detail;type:text" json:"purpose_detail,omitempty"`

	IdentityDocumentRef string `gorm:"column:identity_document_ref;type:text" json:"identity_document_ref,omitempty"`
	AddressDocumentRef  string `gorm:"column:address_document_ref;type:text" json:"address_document_ref,omitempty"`

	Status          Status         `gorm:"size:32;default:'pending_approval'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanApplication) TableName() string { return "loan_applications" }
