package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/fantasy-hockey/external/espn"
	"github.com/riskibarqy/fantasy-hockey/internal/config"
	"github.com/riskibarqy/fantasy-hockey/internal/interfaces/cli"
	"github.com/riskibarqy/fantasy-hockey/internal/observability"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
	"github.com/riskibarqy/fantasy-hockey/internal/usecase"
)

// NewCLI wires the ESPN client, the services and the dispatcher. The returned
// shutdown flushes telemetry and is safe to call when tracing is disabled.
func NewCLI(cfg config.Config, logger *logging.Logger) (*cli.App, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	shutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init uptrace: %w", err)
	}

	provider := espn.NewClient(espn.ClientConfig{
		BaseURL:  cfg.ESPNBaseURL,
		LeagueID: cfg.LeagueID,
		Season:   cfg.Season,
		SWID:     cfg.SWID,
		S2:       cfg.ESPNS2,
		Timeout:  cfg.ESPNTimeout,
		Logger:   logger,
	})

	standingsSvc := usecase.NewStandingsService(provider, logger)
	draftSvc := usecase.NewDraftService(provider, logger)
	redraftSvc := usecase.NewRedraftService(provider, logger)

	return cli.NewApp(standingsSvc, draftSvc, redraftSvc, logger), shutdown, nil
}
