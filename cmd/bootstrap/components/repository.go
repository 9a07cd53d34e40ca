package components

import (
	"pos-core/internal/infra/repository"
	"pos-core/internal/usecase/commands"
	"pos-core/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			repository.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
			fx.As(new(queries.PromotionReader)),
		),
		fx.Annotate(
			repository.NewVoucherRepository,
			fx.As(new(commands.VoucherRepository)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewStatsRepository,
			fx.As(new(commands.StatsRepository)),
		),
		fx.Annotate(
			repository.NewOperatorRepository,
			fx.As(new(commands.OperatorRepository)),
		),
	),
)
