package server

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"ops360/providers"
	"ops360/providers/configprovider"
	"ops360/providers/databaseprovider"
	"ops360/providers/loggerprovider"
	"ops360/providers/redisprovider"
	assetservice "ops360/services/asset"
	ticketservice "ops360/services/ticket"
)

type Server struct {
	Config        providers.ConfigProvider
	DB            providers.DBProvider
	Cache         providers.RedisProvider
	Logger        providers.ZapLoggerProvider
	TicketHandler *ticketservice.TicketHandler
	AssetHandler  *assetservice.AssetHandler
	httpServer    *http.Server
}

func SrvInit() *Server {
	cfg := configprovider.NewConfigProvider()
	cfg.LoadEnv()

	logger := loggerprovider.NewLogProvider()
	logger.InitLogger()

	db := databaseprovider.NewDBProvider(cfg.GetDatabaseString())

	// Redis is optional: without it the stats aggregate is computed on
	// every request instead of being cached.
	var cache providers.RedisProvider
	if addr := cfg.GetRedisAddr(); addr != "" {
		cache = redisprovider.NewRedisProvider(addr)
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cache.Ping(pingCtx); err != nil {
			logrus.Warnf("redis unreachable at %s, stats caching disabled: %v", addr, err)
			cache.Close()
			cache = nil
		}
		cancel()
	}

	// repositories
	ticketRepo := ticketservice.NewTicketRepository(db.DB())
	assetRepo := assetservice.NewAssetRepository(db.DB())

	// services
	ticketService := ticketservice.NewTicketService(ticketRepo, logger, cfg.GetOrgID(), cfg.GetRequesterEmail())
	assetService := assetservice.NewAssetService(assetRepo, cache, logger)

	// handlers
	ticketHandler := ticketservice.NewTicketHandler(ticketService)
	assetHandler := assetservice.NewAssetHandler(assetService)

	return &Server{
		Config:        cfg,
		DB:            db,
		Cache:         cache,
		Logger:        logger,
		TicketHandler: ticketHandler,
		AssetHandler:  assetHandler,
	}
}

func (s *Server) Start() {
	addr := ":" + s.Config.GetServerPort()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.InjectRoutes(),
		ReadTimeout:  2 * time.Minute,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  2 * time.Minute,
	}

	logrus.Infof("server running on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("server error: %v", err)
	}
}

func (s *Server) Stop() {
	logrus.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logrus.Errorf("error shutting down server: %v", err)
	}

	if s.Cache != nil {
		if err := s.Cache.Close(); err != nil {
			logrus.Errorf("error closing redis: %v", err)
		}
	}

	if err := s.DB.Close(); err != nil {
		logrus.Errorf("error closing DB: %v", err)
	}

	s.Logger.SyncLogger()
	logrus.Info("Server shutdown complete.")
}
