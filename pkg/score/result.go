package score

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result is the outcome of a single calculation. Invalid input yields a
// result with Valid false and Error set; every other field is then empty.
type Result struct {
	Error       string       `json:"error,omitempty" yaml:"error,omitempty"`
	Valid       bool         `json:"valid" yaml:"valid"`
	Inputs      *Summary     `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Calculation *Calculation `json:"calculation,omitempty" yaml:"calculation,omitempty"`
	Rating      string       `json:"rating,omitempty" yaml:"rating,omitempty"`
	Thresholds  *Thresholds  `json:"thresholds,omitempty" yaml:"thresholds,omitempty"`
}

// Calculation is the breakdown of a valid score.
type Calculation struct {
	IncomeContribution  Float `json:"income_contribution" yaml:"income_contribution"`
	AssetsContribution  Float `json:"assets_contribution" yaml:"assets_contribution"`
	HistoryContribution Float `json:"history_contribution" yaml:"history_contribution"`
	WeightedSum         Float `json:"weighted_sum" yaml:"weighted_sum"`
	FinalScore          int   `json:"final_score" yaml:"final_score"`
}

// Float is a float64 that always serializes with a fractional part
// (75 is written as 75.0).
type Float float64

func (f Float) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (f Float) MarshalJSON() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f Float) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
		Value: f.String(),
	}, nil
}

// JSON returns the result as 2-space indented JSON without a trailing newline.
func (r *Result) JSON() ([]byte, error) {
	var buf bytes.Buffer
	e := json.NewEncoder(&buf)
	e.SetEscapeHTML(false)
	e.SetIndent("", "  ")
	if err := e.Encode(r); err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
