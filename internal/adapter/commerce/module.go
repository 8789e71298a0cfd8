package commerce

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/config"
)

// Module exposes the commerce client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.APIRootURL, p.Config.RequestTimeout, p.Logger)
}
