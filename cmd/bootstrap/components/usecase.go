package components

import (
	"quotation-portal/internal/pkg/clock"
	"quotation-portal/internal/pkg/config"
	"quotation-portal/internal/usecase"
	"quotation-portal/internal/usecase/commands"
	"quotation-portal/internal/usecase/queries"
	"quotation-portal/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuotationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAccessResolver,
		func(
			u shared.UnitOfWork,
			access commands.AccessResolver,
			notifier commands.Notifier,
			q queries.QuotationQueries,
			clk clock.Clock,
			cfg config.Config,
		) commands.QuotationActionCommands {
			return commands.NewQuotationActionCommands(u, access, notifier, q, clk, cfg.OTP.TTL)
		},
	),
)
