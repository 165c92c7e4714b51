package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/openretail/salesboard/internal/analytics"
	"github.com/openretail/salesboard/internal/config"
	"github.com/openretail/salesboard/internal/ingest"
	"github.com/openretail/salesboard/internal/migration"
	"github.com/openretail/salesboard/internal/sales"
	"github.com/openretail/salesboard/internal/server"
	"github.com/openretail/salesboard/pkg/db"
	"github.com/openretail/salesboard/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		log.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// Functional domains
		sales.Module,
		ingest.Module,
		analytics.Module,
		server.Module,
	)

	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
