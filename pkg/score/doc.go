// Package score computes a toy credit score from income, assets and credit
// history using a fixed linear weighting.
//
// The model is deterministic: each field is range checked, weighted, summed,
// scaled down by 100 and capped at 1000. The capped score maps onto one of
// three ratings (Excellent, Good, Needs Improvement).
package score
