package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/fantasy-hockey/internal/config"
	"github.com/riskibarqy/fantasy-hockey/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "fantasy-hockey",
		ServiceVersion: "dev",
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	t.Parallel()

	cfg := config.Config{UptraceEnabled: true, ServiceName: "fantasy-hockey"}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}
