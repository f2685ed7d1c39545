package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/standing"
	"github.com/riskibarqy/fantasy-hockey/internal/interfaces/render"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hockey/internal/usecase"
)

const (
	VerbStandings = "standings"
	VerbDraft     = "draft"
	VerbRedraft   = "redraft"

	defaultVerb = VerbRedraft
)

type StandingsLister interface {
	List(ctx context.Context) ([]standing.TeamStanding, error)
}

type DraftLister interface {
	List(ctx context.Context, rounds int) (usecase.DraftView, error)
}

type RedraftComparer interface {
	Compare(ctx context.Context, input usecase.RedraftInput) (usecase.RedraftView, error)
}

// App dispatches one command line to the matching service and renderer.
type App struct {
	standings StandingsLister
	draft     DraftLister
	redraft   RedraftComparer
	logger    *logging.Logger
	validator *validator.Validate
}

func NewApp(standings StandingsLister, draft DraftLister, redraft RedraftComparer, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.Default()
	}
	return &App{
		standings: standings,
		draft:     draft,
		redraft:   redraft,
		logger:    logger,
		validator: validator.New(),
	}
}

// Run executes args (without the program name) and returns the process exit
// code. Command output goes to stdout in a single write; diagnostics go to stderr.
func (a *App) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	verb, _ := splitVerb(args)
	ctx, span := startCommandSpan(ctx, verb)
	defer span.End()

	inv, err := a.parse(ctx, args)
	if err == nil && inv.help {
		PrintUsage(stdout)
		return ExitOK
	}
	if err == nil {
		err = a.execute(ctx, inv, stdout)
	}
	if err == nil {
		return ExitOK
	}

	recordSpanError(span, err)
	return a.report(ctx, verb, err, stderr)
}

// Preflight parses and validates args without touching any service, so usage
// and argument errors are reported before credentials are loaded. proceed is
// false when the process should exit with code.
func Preflight(args []string, stdout, stderr io.Writer) (code int, proceed bool) {
	a := NewApp(nil, nil, nil, logging.NewNop())
	ctx := context.Background()

	inv, err := a.parse(ctx, args)
	switch {
	case err != nil:
		verb, _ := splitVerb(args)
		return a.report(ctx, verb, err, stderr), false
	case inv.help:
		PrintUsage(stdout)
		return ExitOK, false
	default:
		return ExitOK, true
	}
}

func (a *App) report(ctx context.Context, verb string, err error, stderr io.Writer) int {
	mapped := mapError(err)
	a.logger.DebugContext(ctx, "command failed", "verb", verb, "exit_code", mapped.ExitCode, "error", err)

	fmt.Fprintf(stderr, "error: %v\n", err)
	if mapped.Hint != "" {
		fmt.Fprintf(stderr, "hint: %s\n", mapped.Hint)
	}
	if mapped.ShowUsage {
		fmt.Fprintln(stderr)
		PrintUsage(stderr)
	}
	return mapped.ExitCode
}

func splitVerb(args []string) (string, []string) {
	if len(args) == 0 {
		return defaultVerb, nil
	}
	first := strings.TrimSpace(args[0])
	switch first {
	case "help", "-h", "-help", "--help":
		return "help", nil
	}
	if strings.HasPrefix(first, "-") {
		return defaultVerb, args
	}
	return strings.ToLower(first), args[1:]
}

// invocation is a parsed and validated command line.
type invocation struct {
	verb    string
	help    bool
	draft   draftOptions
	redraft redraftOptions
}

func (a *App) parse(ctx context.Context, args []string) (invocation, error) {
	verb, rest := splitVerb(args)
	if verb == "help" {
		return invocation{help: true}, nil
	}

	inv := invocation{verb: verb}
	var err error
	switch verb {
	case VerbStandings:
		err = parseStandingsOptions(rest)
	case VerbDraft:
		inv.draft, err = parseDraftOptions(rest)
		if err == nil {
			err = a.validateOptions(ctx, inv.draft)
		}
	case VerbRedraft:
		inv.redraft, err = parseRedraftOptions(rest)
		if err == nil {
			err = a.validateOptions(ctx, inv.redraft)
		}
	default:
		err = fmt.Errorf("%w: unknown command %q", usecase.ErrInvalidInput, verb)
	}
	if errors.Is(err, flag.ErrHelp) {
		return invocation{help: true}, nil
	}
	if err != nil {
		return invocation{}, err
	}
	return inv, nil
}

func (a *App) execute(ctx context.Context, inv invocation, stdout io.Writer) error {
	switch inv.verb {
	case VerbStandings:
		return a.runStandings(ctx, stdout)
	case VerbDraft:
		return a.runDraft(ctx, inv.draft, stdout)
	default:
		return a.runRedraft(ctx, inv.redraft, stdout)
	}
}

func (a *App) runStandings(ctx context.Context, stdout io.Writer) error {
	rows, err := a.standings.List(ctx)
	if err != nil {
		return err
	}
	return render.Standings(stdout, rows)
}

func (a *App) runDraft(ctx context.Context, opts draftOptions, stdout io.Writer) error {
	view, err := a.draft.List(ctx, opts.Rounds)
	if err != nil {
		return err
	}
	return render.Draft(stdout, view.Board.Picks, view.Rounds)
}

func (a *App) runRedraft(ctx context.Context, opts redraftOptions, stdout io.Writer) error {
	view, err := a.redraft.Compare(ctx, usecase.RedraftInput{
		Strategy:         opts.Strategy,
		Rounds:           opts.Rounds,
		Strict:           opts.Strict,
		GoalieMultiplier: opts.GoalieMultiplier,
	})
	if err != nil {
		return err
	}

	if opts.Format == FormatCSV {
		return render.RedraftCSV(stdout, view.Result)
	}
	return render.Redraft(stdout, view.Result)
}
