package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	analyticsdomain "github.com/openretail/salesboard/internal/analytics/domain"
	"github.com/openretail/salesboard/internal/config"
	ingestdomain "github.com/openretail/salesboard/internal/ingest/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(New),
	fx.Invoke(run),
)

type Params struct {
	fx.In
	Config    config.Config
	Log       *zap.Logger
	Ingest    ingestdomain.Service
	Analytics analyticsdomain.Service
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	log       *zap.Logger
	ingest    ingestdomain.Service
	analytics analyticsdomain.Service
}

func New(p Params) *Server {
	s := &Server{
		cfg:       p.Config,
		log:       p.Log,
		ingest:    p.Ingest,
		analytics: p.Analytics,
	}
	s.engine = s.newEngine()
	return s
}

func (s *Server) newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(s.log))
	r.Use(MetricsMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/upload", s.uploadCSV)
	r.GET("/api/charts/:question", s.chartData)

	return r
}

func run(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Fatal("http server failed", zap.Error(err))
				}
			}()
			s.log.Info("http server listening", zap.String("addr", srv.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
