package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-hockey/internal/usecase"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"

	defaultRedraftRounds = 1
)

type draftOptions struct {
	Rounds int `validate:"gte=0"`
}

type redraftOptions struct {
	Rounds   int    `validate:"gte=0"`
	Strategy string `validate:"required,oneof=vor total adjusted value-over-replacement total-points adjusted-value"`
	Format   string `validate:"required,oneof=table csv"`
	Strict   bool

	GoalieMultiplier float64 `validate:"gt=0,lte=10"`
}

func newFlagSet(verb string) *flag.FlagSet {
	fs := flag.NewFlagSet(verb, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseStandingsOptions(args []string) error {
	return parseFlags(newFlagSet("standings"), args)
}

func parseDraftOptions(args []string) (draftOptions, error) {
	fs := newFlagSet("draft")
	opts := draftOptions{}
	fs.IntVar(&opts.Rounds, "rounds", 0, "number of rounds to show (default: all)")
	if err := parseFlags(fs, args); err != nil {
		return draftOptions{}, err
	}
	if err := checkExplicitRounds(fs, opts.Rounds); err != nil {
		return draftOptions{}, err
	}
	return opts, nil
}

func parseRedraftOptions(args []string) (redraftOptions, error) {
	fs := newFlagSet("redraft")
	opts := redraftOptions{}
	fs.IntVar(&opts.Rounds, "rounds", defaultRedraftRounds, "number of rounds to compare")
	fs.StringVar(&opts.Strategy, "strategy", string(ranking.DefaultStrategy), "ranking strategy")
	fs.StringVar(&opts.Format, "format", FormatTable, "output format")
	fs.BoolVar(&opts.Strict, "strict", false, "fail on players missing season data")
	fs.Float64Var(&opts.GoalieMultiplier, "goalie-multiplier", ranking.DefaultGoalieMultiplier, "goalie weight for the adjusted strategy")
	if err := parseFlags(fs, args); err != nil {
		return redraftOptions{}, err
	}
	if err := checkExplicitRounds(fs, opts.Rounds); err != nil {
		return redraftOptions{}, err
	}
	opts.Strategy = strings.ToLower(strings.TrimSpace(opts.Strategy))
	opts.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	return opts, nil
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", usecase.ErrInvalidInput, rest[0])
	}
	return nil
}

// checkExplicitRounds rejects --rounds values below one. Leaving the flag out
// keeps the verb default.
func checkExplicitRounds(fs *flag.FlagSet, rounds int) error {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "rounds" {
			given = true
		}
	})
	if given && rounds <= 0 {
		return fmt.Errorf("%w: --rounds must be a positive integer, got %d", usecase.ErrInvalidInput, rounds)
	}
	return nil
}

func (a *App) validateOptions(ctx context.Context, payload any) error {
	if err := a.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, describeValidation(err))
	}
	return nil
}

func describeValidation(err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := flagName(fe.Field())
		switch fe.Tag() {
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s %q is not one of: %s", name, fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", name, fe.Tag()))
		}
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}

// flagName maps an options field to its flag, GoalieMultiplier -> --goalie-multiplier.
func flagName(field string) string {
	var b strings.Builder
	b.WriteString("--")
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
