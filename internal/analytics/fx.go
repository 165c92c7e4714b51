package analytics

import (
	"github.com/openretail/salesboard/internal/analytics/repository"
	"github.com/openretail/salesboard/internal/analytics/service"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
