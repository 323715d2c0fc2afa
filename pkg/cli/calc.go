package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mchmarny/creditscore/pkg/score"
	urfave "github.com/urfave/cli/v3"
)

var integerLiteral = regexp.MustCompile(`^[+-]?\d+(_\d+)*$`)

const (
	exitCodeFailure = 1

	msgNotIntegers = "Error: All inputs must be integers"
)

func usageText(name string) string {
	return fmt.Sprintf("Usage: %s <income> <assets> <history>\nExample: %s 150 500 85", name, name)
}

func cmdCalculate(_ context.Context, cmd *urfave.Command) error {
	cfg := getConfig(cmd)

	args := make([]string, 0, cmd.Args().Len())
	for _, a := range cmd.Args().Slice() {
		if a == "--" {
			continue
		}
		args = append(args, a)
	}

	if len(args) < 3 {
		slog.Debug("not enough arguments", "count", len(args))
		return urfave.Exit(usageText(cmd.Root().Name), exitCodeFailure)
	}

	vals := make([]int, 3)
	for i, a := range args[:3] {
		v, err := parseInt(a)
		if err != nil {
			slog.Debug("invalid argument", "position", i+1, "value", a, "error", err)
			return urfave.Exit(msgNotIntegers, exitCodeFailure)
		}
		vals[i] = v
	}

	r := score.Calculate(vals[0], vals[1], vals[2])
	slog.Info("calculated", "valid", r.Valid, "rating", r.Rating)

	if err := encode(cfg.Stdout, cfg.Format, r); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

// parseInt parses a base-10 integer, allowing single underscores between
// digit groups (1_000). Values beyond the int range saturate to the nearest
// bound so they are reported by range validation instead.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !integerLiteral.MatchString(s) {
		return 0, fmt.Errorf("invalid integer: %q", s)
	}

	v, err := strconv.ParseInt(strings.ReplaceAll(s, "_", ""), 10, 0)
	if err == nil {
		return int(v), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if v < 0 {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}
	return 0, err
}
