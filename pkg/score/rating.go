package score

const (
	RatingExcellent        = "Excellent"
	RatingGood             = "Good"
	RatingNeedsImprovement = "Needs Improvement"

	ExcellentThreshold = 750
	GoodThreshold      = 650
)

// Thresholds describes the rating bands.
type Thresholds struct {
	Excellent string `json:"excellent" yaml:"excellent"`
	Good      string `json:"good" yaml:"good"`
	Poor      string `json:"poor" yaml:"poor"`
}

// RatingFor maps a score onto its rating. Bands are inclusive at the lower
// bound: 750 and up is Excellent, 650-749 is Good.
func RatingFor(score int) string {
	switch {
	case score >= ExcellentThreshold:
		return RatingExcellent
	case score >= GoodThreshold:
		return RatingGood
	default:
		return RatingNeedsImprovement
	}
}

// RatingThresholds returns the fixed description of the rating bands.
func RatingThresholds() Thresholds {
	return Thresholds{
		Excellent: ">= 750",
		Good:      "650-749",
		Poor:      "< 650",
	}
}
