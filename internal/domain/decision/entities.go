package decision

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("decision not found")

type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
)

func (o Outcome) Valid() bool {
	return o == OutcomeApproved || o == OutcomeRejected
}

// Decision is the immutable record of an administrative reviewer terminalizing
// an application. DB uniqueness on the application FK ensures at most one.
type Decision struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	DecisionID string `gorm:"column:decision_id;type:char(32);not null;uniqueIndex:ux_decisions_decision_id"`
	// FK to loan_applications.id (numeric)
	ApplicationID uint64         `gorm:"column:application_id;not null;uniqueIndex:ux_decisions_application"`
	ReviewerID    string         `gorm:"column:reviewer_id;type:char(32);not null"`
	Outcome       Outcome        `gorm:"column:outcome;size:16;not null"`
	Note          string         `gorm:"column:note;type:text"`
	DecidedAt     time.Time      `gorm:"column:decided_at;not null"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Decision) TableName() string { return "decisions" }
