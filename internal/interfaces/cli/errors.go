package cli

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-hockey/internal/domain/ranking"
	"github.com/riskibarqy/fantasy-hockey/internal/usecase"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

type mappedError struct {
	ExitCode  int
	ShowUsage bool
	Hint      string
}

func mapError(err error) mappedError {
	switch {
	case crerr.Is(err, usecase.ErrInvalidInput):
		return mappedError{ExitCode: ExitUsage, ShowUsage: true}
	case crerr.Is(err, usecase.ErrConfiguration):
		return mappedError{ExitCode: ExitFailure, Hint: "set the ESPN_* variables in the environment or the .env file"}
	case crerr.Is(err, usecase.ErrUnauthorized):
		return mappedError{ExitCode: ExitFailure, Hint: "the ESPN_SWID/ESPN_S2 cookies were rejected; copy fresh values from a logged-in browser session"}
	case crerr.Is(err, usecase.ErrNotFound):
		return mappedError{ExitCode: ExitFailure, Hint: "check ESPN_LEAGUE_ID and ESPN_YEAR"}
	case crerr.Is(err, ranking.ErrIncompleteData):
		return mappedError{ExitCode: ExitFailure, Hint: "rerun without --strict to score missing values as zero"}
	case crerr.Is(err, context.Canceled), crerr.Is(err, context.DeadlineExceeded):
		return mappedError{ExitCode: ExitFailure, Hint: "the request was interrupted or timed out (ESPN_TIMEOUT)"}
	default:
		return mappedError{ExitCode: ExitFailure}
	}
}
