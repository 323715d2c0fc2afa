package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   CreditInput
		valid   bool
		message string
	}{
		{"all zero", NewCreditInput(0, 0, 0), true, msgValid},
		{"upper bounds", NewCreditInput(MaxIncome, MaxAssets, MaxHistory), true, msgValid},
		{"typical", NewCreditInput(150, 500, 85), true, msgValid},
		{"negative income", NewCreditInput(-1, 0, 0), false, msgIncomeRange},
		{"income over", NewCreditInput(MaxIncome+1, 0, 0), false, msgIncomeRange},
		{"negative assets", NewCreditInput(0, -1, 0), false, msgAssetsRange},
		{"assets over", NewCreditInput(0, MaxAssets+1, 0), false, msgAssetsRange},
		{"negative history", NewCreditInput(0, 0, -1), false, msgHistoryRange},
		{"history over", NewCreditInput(0, 0, MaxHistory+1), false, msgHistoryRange},
		{"income reported first", NewCreditInput(-1, -1, -1), false, msgIncomeRange},
		{"assets before history", NewCreditInput(10, MaxAssets+1, 101), false, msgAssetsRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := tt.input.Validate()
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.message, msg)

			err := tt.input.Err()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		input CreditInput
		sum   float64
		score int
	}{
		{"zero", NewCreditInput(0, 0, 0), 0, 0},
		{"small", NewCreditInput(150, 500, 85), 242, 2},
		{"fractional", NewCreditInput(51, 33, 7), 36.8, 0},
		{"truncated not rounded", NewCreditInput(199, 0, 0), 99.5, 0},
		{"exact boundary", NewCreditInput(200, 0, 0), 100, 1},
		{"capped", NewCreditInput(150000, 500000, 95), 225019, MaxScore},
		{"max inputs capped", NewCreditInput(MaxIncome, MaxAssets, MaxHistory), 3500020, MaxScore},
		{"just under cap", NewCreditInput(199998, 0, 0), 99999, 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.sum, tt.input.WeightedSum(), 1e-9)
			assert.Equal(t, tt.score, tt.input.Score())
		})
	}
}

func TestScore_MatchesFormula(t *testing.T) {
	for income := 0; income <= MaxIncome; income += 99_991 {
		for assets := 0; assets <= MaxAssets; assets += 999_983 {
			for history := 0; history <= MaxHistory; history += 7 {
				c := NewCreditInput(income, assets, history)
				sum := float64(float64(income)*0.5) + float64(float64(assets)*0.3) + float64(float64(history)*0.2)
				assert.Equal(t, min(int(sum/100), 1000), c.Score(), "input %+v", c)
			}
		}
	}
}

func TestScore_Unvalidated(t *testing.T) {
	// no guard: out-of-range input still produces a number
	c := NewCreditInput(-1000, 0, 0)
	assert.Equal(t, -5, c.Score())
	assert.Equal(t, RatingNeedsImprovement, c.Rating())
}

func TestContributions(t *testing.T) {
	w := NewCreditInput(51, 33, 7).Contributions()
	assert.Equal(t, 25.5, w.Income)
	assert.Equal(t, 9.9, w.Assets)
	assert.Equal(t, 1.4000000000000001, w.History)
}

func TestSummary(t *testing.T) {
	s := NewCreditInput(150000, 0, 0).Summary()
	assert.Equal(t, Summary{
		Income:          150000,
		Assets:          0,
		History:         0,
		CalculatedScore: 750,
		Rating:          RatingExcellent,
	}, s)
}
