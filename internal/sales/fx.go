package sales

import (
	"github.com/openretail/salesboard/internal/sales/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("sales.store",
	fx.Provide(repository.Provide),
)
