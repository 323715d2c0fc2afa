package score

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Calculate validates the inputs and, when they are in range, returns the
// full score breakdown. Out-of-range input is reported in the result rather
// than as an error.
func Calculate(income, assets, history int) *Result {
	c := NewCreditInput(income, assets, history)
	if ok, msg := c.Validate(); !ok {
		slog.Debug("invalid input", "income", income, "assets", assets, "history", history, "reason", msg)
		return &Result{
			Error: msg,
			Valid: false,
		}
	}

	w := c.Contributions()
	summary := c.Summary()
	t := RatingThresholds()

	return &Result{
		Valid:  true,
		Inputs: &summary,
		Calculation: &Calculation{
			IncomeContribution:  Float(w.Income),
			AssetsContribution:  Float(w.Assets),
			HistoryContribution: Float(w.History),
			WeightedSum:         Float(c.WeightedSum()),
			FinalScore:          summary.CalculatedScore,
		},
		Rating:     summary.Rating,
		Thresholds: &t,
	}
}

// BatchCalculate runs Calculate for each input. Results are returned in input
// order and one invalid input does not affect the others.
func BatchCalculate(inputs []CreditInput) []*Result {
	list := make([]*Result, 0, len(inputs))
	for _, in := range inputs {
		list = append(list, Calculate(in.Income, in.Assets, in.History))
	}
	return list
}

// BatchCalculateContext is BatchCalculate evaluated concurrently, with at most
// limit calculations in flight (limit <= 0 means no limit). Results keep input
// order. It returns an error only when ctx is done before all inputs are scored.
func BatchCalculateContext(ctx context.Context, inputs []CreditInput, limit int) ([]*Result, error) {
	list := make([]*Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			list[i] = Calculate(in.Income, in.Assets, in.History)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch calculation interrupted: %w", err)
	}

	slog.Debug("batch calculated", "count", len(list), "limit", limit)
	return list, nil
}
