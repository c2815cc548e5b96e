package bootstrap

import (
	"log/slog"

	"dormgate/internal/gateway"
	"dormgate/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGateway,
	),
)

// NewGateway assembles the upstream GraphQL client with the reference-data
// cache in front of it.
func NewGateway(cfg config.Config, logger *slog.Logger) gateway.Gateway {
	client := gateway.NewClient(cfg.Upstream, logger)
	return gateway.NewCachedGateway(client, cfg.Upstream)
}
