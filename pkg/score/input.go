package score

import (
	"errors"
	"fmt"
	"log/slog"
)

const (
	// Input ranges (inclusive).
	MinIncome  = 0
	MaxIncome  = 1_000_000  // thousands per year
	MinAssets  = 0
	MaxAssets  = 10_000_000 // thousands
	MinHistory = 0
	MaxHistory = 100

	// Field weights.
	incomeWeight  = 0.5
	assetsWeight  = 0.3
	historyWeight = 0.2

	scoreDivisor = 100
	MaxScore     = 1000

	msgIncomeRange  = "Income must be 0-1,000,000 (thousands)"
	msgAssetsRange  = "Assets must be 0-10,000,000 (thousands)"
	msgHistoryRange = "History must be 0-100"
	msgValid        = "Valid"
)

// ErrOutOfRange is wrapped by CreditInput.Err when a field is outside its range.
var ErrOutOfRange = errors.New("input out of range")

// CreditInput holds the three raw scoring inputs.
type CreditInput struct {
	Income  int `json:"income" yaml:"income"`
	Assets  int `json:"assets" yaml:"assets"`
	History int `json:"history" yaml:"history"`
}

// Summary is the structured view of an input together with its derived score.
type Summary struct {
	Income          int    `json:"income" yaml:"income"`
	Assets          int    `json:"assets" yaml:"assets"`
	History         int    `json:"history" yaml:"history"`
	CalculatedScore int    `json:"calculated_score" yaml:"calculated_score"`
	Rating          string `json:"rating" yaml:"rating"`
}

// Contributions are the weighted per-field terms of the score.
type Contributions struct {
	Income  float64
	Assets  float64
	History float64
}

// NewCreditInput returns an unvalidated input.
func NewCreditInput(income, assets, history int) CreditInput {
	return CreditInput{
		Income:  income,
		Assets:  assets,
		History: history,
	}
}

// Validate reports whether every field is within range. Fields are checked in
// the order income, assets, history and only the first violation is reported.
func (c CreditInput) Validate() (bool, string) {
	switch {
	case c.Income < MinIncome || c.Income > MaxIncome:
		return false, msgIncomeRange
	case c.Assets < MinAssets || c.Assets > MaxAssets:
		return false, msgAssetsRange
	case c.History < MinHistory || c.History > MaxHistory:
		return false, msgHistoryRange
	}
	return true, msgValid
}

// Err is Validate expressed as an error wrapping ErrOutOfRange.
func (c CreditInput) Err() error {
	if ok, msg := c.Validate(); !ok {
		return fmt.Errorf("%w: %s", ErrOutOfRange, msg)
	}
	return nil
}

// Contributions returns the weighted value of each field.
func (c CreditInput) Contributions() Contributions {
	// explicit conversions round each product and rule out fused multiply-add
	return Contributions{
		Income:  float64(float64(c.Income) * incomeWeight),
		Assets:  float64(float64(c.Assets) * assetsWeight),
		History: float64(float64(c.History) * historyWeight),
	}
}

// WeightedSum returns income*0.5 + assets*0.3 + history*0.2.
func (c CreditInput) WeightedSum() float64 {
	w := c.Contributions()
	return w.Income + w.Assets + w.History
}

// Score returns the weighted sum divided by 100, truncated and capped at
// MaxScore. It does not validate; callers outside Calculate must do that.
func (c CreditInput) Score() int {
	sum := c.WeightedSum()
	s := int(sum / scoreDivisor)
	slog.Debug("score", "income", c.Income, "assets", c.Assets, "history", c.History,
		"weighted_sum", sum, "raw", s)
	return min(s, MaxScore)
}

// Rating returns the rating label for the input's score.
func (c CreditInput) Rating() string {
	return RatingFor(c.Score())
}

// Summary returns the inputs along with the derived score and rating.
func (c CreditInput) Summary() Summary {
	s := c.Score()
	return Summary{
		Income:          c.Income,
		Assets:          c.Assets,
		History:         c.History,
		CalculatedScore: s,
		Rating:          RatingFor(s),
	}
}
