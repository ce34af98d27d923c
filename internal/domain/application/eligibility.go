package application

type Eligibility string

const (
	EligibilityOptimal     Eligibility = "optimal"
	EligibilityUnderReview Eligibility = "under_review"
)

// Debt-to-income cutoff. Strict less-than: a ratio of exactly 0.35 is
// classified under_review.
const comfortableRatio = 0.35

// Classify labels the affordability of a monthly payment against a declared
// monthly income. Advisory only; it never blocks a submission. A non-positive
// income makes the ratio undefined and falls back to the cautious outcome.
func Classify(monthlyPayment, monthlyIncome float64) Eligibility {
	if monthlyIncome <= 0 {
		return EligibilityUnderReview
	}
	if monthlyPayment/monthlyIncome < comfortableRatio {
		return EligibilityOptimal
	}
	return EligibilityUnderReview
}
