package components

import (
	"facility-parking/internal/domain/parking"
	"facility-parking/internal/pkg/clock"
	"facility-parking/internal/pkg/config"
	"facility-parking/internal/pkg/password"
	"facility-parking/internal/usecase"
	"facility-parking/internal/usecase/commands"
	"facility-parking/internal/usecase/queries"

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
	func(cfg config.Config) config.ReceiptConfig { return cfg.Receipt },
	fx.Annotate(
		NewFeeCalculator,
		fx.As(new(parking.FeeCalculator)),
	),
	fx.Annotate(
		func() *password.Hasher { return password.NewHasher(password.DefaultCost) },
		fx.As(new(commands.PasswordVerifier)),
	),
)

// NewFeeCalculator builds the pricing engine from the configured daily-pass coverage.
func NewFeeCalculator(cfg config.Config) *parking.Engine {
	minutes := int(cfg.Tariff.DailyPassCoverage.Minutes())
	return parking.NewEngine(parking.DefaultCatalog().WithDailyCoverage(minutes))
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReceiptCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewParkingQueries,
		queries.NewReceiptQueries,
		queries.NewAdminQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
