package decision

import (
	"time"

	domainDecision "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/decision"
)

type DecideInput struct {
	ApplicationID string
	ReviewerID    string // 32-char hex
	Outcome       domainDecision.Outcome
	Note          string
	DecidedAt     time.Time // stored .UTC()
}

type DecisionDTO struct {
	DecisionID    string                 `json:"decision_id"`
	ApplicationID string                 `json:"application_id"`
	Outcome       domainDecision.Outcome `json:"outcome"`
	Status        string                 `json:"status"`
	DecidedAt     time.Time              `json:"decided_at"`
}
