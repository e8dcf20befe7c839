package assessment

// UrgencyTier buckets a risk score into a consultation urgency.
type UrgencyTier string

const (
	TierLow      UrgencyTier = "LOW"
	TierModerate UrgencyTier = "MODERATE"
	TierUrgent   UrgencyTier = "URGENT"
)

// Classify derives the urgency tier from the score alone. Thresholds are
// fixed; there is no configuration surface.
func Classify(score int) UrgencyTier {
	switch {
	case score >= 7:
		return TierUrgent
	case score >= 4:
		return TierModerate
	default:
		return TierLow
	}
}

// Reasoning returns the fixed clinical reasoning text for the tier.
func (t UrgencyTier) Reasoning() string {
	switch t {
	case TierUrgent:
		return "High-risk symptoms and factors present; immediate specialist consultation recommended."
	case TierModerate:
		return "Several risk factors identified; consultation within 2-4 weeks recommended."
	default:
		return "Routine follow-up recommended."
	}
}

// Action returns the tier-specific action sentence used in the urgency
// statement section.
func (t UrgencyTier) Action() string {
	switch t {
	case TierUrgent:
		return "Please arrange to see a cardiologist within the next 24 hours."
	case TierModerate:
		return "Please schedule a consultation with your doctor within the next 2-4 weeks."
	default:
		return "Continue routine annual cardiac screening with your primary care provider."
	}
}
