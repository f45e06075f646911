package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	grpcadapter "github.com/simaogato/marketfolio-backend/internal/adapter/grpc"
	marketv1 "github.com/simaogato/marketfolio-backend/internal/adapter/grpc/market/v1"
	"github.com/simaogato/marketfolio-backend/internal/adapter/notify"
	"github.com/simaogato/marketfolio-backend/internal/adapter/pricefeed"
	"github.com/simaogato/marketfolio-backend/internal/adapter/repository"
	"github.com/simaogato/marketfolio-backend/internal/adapter/rest"
	"github.com/simaogato/marketfolio-backend/internal/domain"
	"github.com/simaogato/marketfolio-backend/internal/usecase/dashboard"
	"github.com/simaogato/marketfolio-backend/internal/usecase/investment"
	"github.com/simaogato/marketfolio-backend/internal/usecase/market"
	"github.com/simaogato/marketfolio-backend/internal/usecase/seeder"
)

const (
	defaultAPIToken      = "dev-token"
	defaultGRPCPort      = "8080"
	defaultHTTPPort      = "8081"
	defaultPriceFeedURL  = "http://localhost:8090"
	defaultPriceCacheTTL = time.Minute
	priceFeedTimeout     = 5 * time.Second
)

func main() {
	ctx := context.Background()

	// 1. Setup Storage
	backend := getEnv("STORAGE_BACKEND", repository.BackendPostgres)
	var dbConnStr string
	if backend == repository.BackendPostgres {
		dbConnStr = databaseURL()
		// Add 2-second delay to ensure Postgres is up (Simple retry)
		time.Sleep(2 * time.Second)
	}

	repos, err := repository.Open(ctx, backend, dbConnStr)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", backend, err)
	}
	defer repos.Close()
	log.Printf("Using %s storage", repos.Backend)

	// 2. Seed the item catalog
	if path := os.Getenv("ITEM_CATALOG_FILE"); path != "" {
		items, err := seeder.LoadCatalogFile(path)
		if err != nil {
			log.Fatalf("Failed to load item catalog: %v", err)
		}
		created, err := seeder.NewCatalogSeeder(repos.Catalog).Seed(ctx, items)
		if err != nil {
			log.Fatalf("Failed to seed item catalog: %v", err)
		}
		log.Printf("Item catalog seeded: %d new of %d items", created, len(items))
	}

	// 3. Price feed and event publishing (Redis is optional)
	var priceFeed domain.PriceFeed = pricefeed.NewHTTPFeed(getEnv("PRICE_FEED_URL", defaultPriceFeedURL), priceFeedTimeout)
	var notifier domain.Notifier
	var effects domain.EffectTrigger

	redisClient := newRedisClient(ctx)
	if redisClient != nil {
		defer redisClient.Close()
		priceFeed = pricefeed.NewCachedFeed(redisClient, priceFeed, priceCacheTTL())
		publisher := notify.NewRedisPublisher(redisClient)
		notifier, effects = publisher, publisher
	} else {
		publisher := notify.NewLogPublisher(nil)
		notifier, effects = publisher, publisher
	}

	// 4. Initialize Services (Use Cases)
	marketService := market.NewMarketService(repos.Accounts, repos.Catalog, notifier, effects)
	investmentService := investment.NewInvestmentService(repos.Accounts, repos.Catalog, priceFeed)
	dashboardService := dashboard.NewDashboardService(repos.Accounts, investmentService)

	// 5. Start gRPC Server
	apiToken := getEnv("API_TOKEN", defaultAPIToken)

	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(),
			grpcadapter.AuthInterceptor(apiToken, grpcadapter.HealthCheckMethod),
		),
	)

	grpcAdapter := grpcadapter.NewServer(marketService, investmentService, dashboardService)
	marketv1.RegisterMarketServiceServer(grpcServer, grpcAdapter)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(marketv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	addr := ":" + getEnv("GRPC_PORT", defaultGRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", addr, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", addr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// 6. Start the HTTP/JSON gateway for browser clients
	httpApp := rest.NewGateway(grpcAdapter, apiToken).NewApp()
	httpAddr := ":" + getEnv("HTTP_PORT", defaultHTTPPort)
	go func() {
		log.Printf("HTTP gateway listening on %s", httpAddr)
		if err := httpApp.Listen(httpAddr); err != nil {
			log.Fatalf("Failed to serve HTTP gateway: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, healthServer, httpApp)
}

// databaseURL returns DB_CONN_STR or builds it from the individual DB_* vars (Docker friendly)
func databaseURL() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "marketfolio"),
	)
}

// newRedisClient connects to REDIS_ADDR, or returns nil when unset or unreachable
func newRedisClient(ctx context.Context) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set; price cache and event publishing disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Redis unavailable at %s: %v; continuing without it", addr, err)
		client.Close()
		return nil
	}

	log.Printf("Connected to Redis at %s", addr)
	return client
}

func priceCacheTTL() time.Duration {
	raw := os.Getenv("PRICE_CACHE_TTL")
	if raw == "" {
		return defaultPriceCacheTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		log.Printf("Invalid PRICE_CACHE_TTL %q, using %s", raw, defaultPriceCacheTTL)
		return defaultPriceCacheTTL
	}
	return ttl
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server, healthServer *health.Server, httpApp *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpApp.ShutdownWithContext(ctx); err != nil {
		log.Printf("HTTP gateway shutdown: %v", err)
	}
	log.Println("HTTP gateway stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
