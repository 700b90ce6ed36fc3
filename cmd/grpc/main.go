package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-stock-service/config"
	"github.com/fekuna/omnipos-stock-service/internal/attribute"
	"github.com/fekuna/omnipos-stock-service/internal/inventory"
	"github.com/fekuna/omnipos-stock-service/internal/location"
	"github.com/fekuna/omnipos-stock-service/internal/notice"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/cache"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/httpserver"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/postgres"
	"github.com/fekuna/omnipos-stock-service/internal/pkg/search"
	"github.com/fekuna/omnipos-stock-service/internal/product"
	"github.com/fekuna/omnipos-stock-service/internal/seed"
	"github.com/fekuna/omnipos-stock-service/internal/session"
	"github.com/fekuna/omnipos-stock-service/internal/transfer"
	"github.com/fekuna/omnipos-stock-service/internal/transport/grpcjson"
	"github.com/fekuna/omnipos-stock-service/internal/transport/reply"
	"github.com/fekuna/omnipos-stock-service/migrations"
	stockv1 "github.com/fekuna/omnipos-stock-service/proto/stock/v1"

	attrRepoPkg "github.com/fekuna/omnipos-stock-service/internal/attribute/repository"
	attrUCPkg "github.com/fekuna/omnipos-stock-service/internal/attribute/usecase"

	invH "github.com/fekuna/omnipos-stock-service/internal/inventory/handler"
	invListenerPkg "github.com/fekuna/omnipos-stock-service/internal/inventory/listener"
	invRepoPkg "github.com/fekuna/omnipos-stock-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-stock-service/internal/inventory/usecase"

	locH "github.com/fekuna/omnipos-stock-service/internal/location/handler"
	locRepoPkg "github.com/fekuna/omnipos-stock-service/internal/location/repository"
	locUCPkg "github.com/fekuna/omnipos-stock-service/internal/location/usecase"

	prodH "github.com/fekuna/omnipos-stock-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-stock-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-stock-service/internal/product/usecase"

	trH "github.com/fekuna/omnipos-stock-service/internal/transfer/handler"
	trRepoPkg "github.com/fekuna/omnipos-stock-service/internal/transfer/repository"
	trUCPkg "github.com/fekuna/omnipos-stock-service/internal/transfer/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type repositories struct {
	products   product.Repository
	locations  location.Repository
	inventory  inventory.Repository
	attributes attribute.Repository
	drafts     transfer.DraftRepository
}

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Localized notices
	notices, err := notice.New()
	if err != nil {
		appLogger.Fatal("Could not load notice catalogues", zap.Error(err))
	}

	// 4. Initialize Repositories
	var repos repositories
	switch cfg.Server.DataSource {
	case "memory":
		data := seed.Demo()
		repos = repositories{
			products:   prodRepoPkg.NewMemoryRepository(data.Products),
			locations:  locRepoPkg.NewMemoryRepository(data.Locations),
			inventory:  invRepoPkg.NewMemoryRepository(data.Inventory, data.Movements),
			attributes: attrRepoPkg.NewMemoryRepository(data.Attributes, data.Options, data.Values),
		}
		appLogger.Info("Serving demo catalogue from memory", zap.Int("products", len(data.Products)))
	default:
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(db, migrations.FS, "."); err != nil {
				appLogger.Fatal("Could not apply migrations", zap.Error(err))
			}
		}
		repos = repositories{
			products:   prodRepoPkg.NewPGRepository(db),
			locations:  locRepoPkg.NewPGRepository(db),
			inventory:  invRepoPkg.NewPGRepository(db),
			attributes: attrRepoPkg.NewPGRepository(db),
		}
	}

	// 5. Initialize Redis
	var redisClient *cache.RedisClient
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, running without cache", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}
	if redisClient != nil {
		repos.drafts = trRepoPkg.NewRedisRepository(redisClient)
	} else {
		repos.drafts = trRepoPkg.NewMemoryRepository()
	}

	// 6. Initialize Elasticsearch
	var esClient *search.Client
	if cfg.ElasticEnabled() {
		esClient, err = search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch, search narrowing disabled", zap.Error(err))
			esClient = nil
		} else {
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 7. Initialize UseCases
	locUC := locUCPkg.NewLocationUseCase(repos.locations, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(repos.inventory, repos.locations, invUCPkg.Options{
		Thresholds: inventory.Thresholds{
			Critical: cfg.Stock.CriticalThreshold,
			Low:      cfg.Stock.LowThreshold,
		},
		FetchConcurrency: cfg.Stock.FetchConcurrency,
		Products:         repos.products,
	}, appLogger)
	attrUC := attrUCPkg.NewAttributeUseCase(repos.attributes, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(repos.products, invUC, attrUC, prodUCPkg.Options{
		Cache:    redisClient,
		Search:   esClient,
		CacheTTL: cfg.Cache.ProductListTTL,
	}, appLogger)

	trOpts := trUCPkg.Options{Lock: redisClient, DraftTTL: cfg.Stock.DraftTTL}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 8. Kafka producer and transfer listener
	if cfg.KafkaEnabled() {
		kafkaCfg := &broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		}
		producer := broker.NewProducer(kafkaCfg)
		defer producer.Close()
		trOpts.Publisher = producer

		consumer := broker.NewConsumer(kafkaCfg)
		defer consumer.Close()
		listener := invListenerPkg.NewTransferListener(consumer, invUC, repos.locations, appLogger)
		go listener.Start(ctx)
		appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}
	trUC := trUCPkg.NewTransferUseCase(repos.drafts, repos.products, invUC, repos.locations, trOpts, appLogger)

	if esClient != nil {
		// Listing ignores the index until a full sync succeeds, and again after
		// any failed index write until the next one.
		go func() {
			resync := func() {
				syncCtx, syncCancel := context.WithTimeout(ctx, time.Minute)
				defer syncCancel()
				if err := prodUC.SyncSearchIndex(syncCtx); err != nil {
					appLogger.Warn("Search index sync failed", zap.Error(err))
				}
			}
			resync()
			if cfg.Elastic.ResyncInterval <= 0 {
				return
			}
			ticker := time.NewTicker(cfg.Elastic.ResyncInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					resync()
				}
			}
		}()
	}

	// 9. Initialize Handlers
	responder := reply.NewResponder(notices, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, attrUC, responder, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, responder, appLogger)
	locHandler := locH.NewLocationHandler(locUC, responder, appLogger)
	trHandler := trH.NewTransferHandler(trUC, responder, appLogger)

	// 10. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.ForceServerCodec(grpcjson.Codec{}),
		grpc.UnaryInterceptor(session.UnaryServerInterceptor()),
	)
	stockv1.RegisterProductServiceServer(grpcServer, prodHandler)
	stockv1.RegisterInventoryServiceServer(grpcServer, invHandler)
	stockv1.RegisterLocationServiceServer(grpcServer, locHandler)
	stockv1.RegisterTransferServiceServer(grpcServer, trHandler)

	appLogger.Info("Starting gRPC server", zap.String("port", port))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 11. Health and metrics
	httpSrv := httpserver.New(cfg.Server.HTTPAddr, true)
	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("http server stopped", zap.Error(err))
		}
	}()
	appLogger.Info("Serving health and metrics", zap.String("addr", cfg.Server.HTTPAddr))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpSrv.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
