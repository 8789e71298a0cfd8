package di

import (
	"go.uber.org/fx"

	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/action"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/adapter/commerce"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/app"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/config"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/logger"
	"github.com/mhd-aziz/chatbot-actions-ayambakarnusantara/internal/server/http/router"
)

// Module assembles the full application graph. Options passed by callers
// are appended last, so tests can replace providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		commerce.Module,
		action.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
