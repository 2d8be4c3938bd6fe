// Package bootstrap assembles the application: configuration, the
// document store, cache, storage, queue workers, the middleware stack
// and the route table.
//
// Handler() is lazy and idempotent so process-reuse environments
// (serverless) pay the connection cost once per container, while the
// standalone server calls it exactly once at boot.
package bootstrap

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/jobs"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/cache"
	"github.com/shashiranjanraj/vastra/pkg/database"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/queue"
	"github.com/shashiranjanraj/vastra/pkg/reqid"
	"github.com/shashiranjanraj/vastra/pkg/router"
	"github.com/shashiranjanraj/vastra/pkg/storage"
	"github.com/shashiranjanraj/vastra/pkg/workerpool"
)

// App holds everything built at boot that later needs a clean shutdown.
type App struct {
	Router *router.Router
	Mongo  *database.Mongo

	pool       *workerpool.Pool
	workCancel context.CancelFunc
	logSink    *logger.MongoHandler
}

var (
	bootOnce sync.Once
	app      *App
	bootErr  error
)

// Handler returns the fully wired HTTP handler, building the
// application on first call.
func Handler() (http.Handler, error) {
	a, err := Boot()
	if err != nil {
		return nil, err
	}
	return a.Router.Handler(), nil
}

// Boot builds the application once and returns it on every later call.
func Boot() (*App, error) {
	bootOnce.Do(func() {
		app, bootErr = build()
	})
	return app, bootErr
}

func build() (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongo, err := database.Connect(ctx, config.MongoURI(), config.MongoDB())
	if err != nil {
		return nil, err
	}

	a := &App{Mongo: mongo}

	// Optional MongoDB log sink alongside stdout.
	if config.Get("LOG_MONGO", "") != "" {
		a.logSink = logger.NewMongoHandler(mongo.Logs())
		stdout := logger.L.Handler()
		logger.SetHandler(logger.NewMultiHandler(stdout, a.logSink))
	}

	// Cache and storage are best effort; the catalog works without them.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache disabled", "error", err)
	}
	storage.Connect()

	a.startQueue()

	// Stores and services, injected top-down.
	products := repositories.NewProductRepository(mongo.Products())
	users := repositories.NewUserRepository(mongo.Users())

	catalog := services.NewCatalogService(products)
	accounts := services.NewAccountService(users, services.VerifierFromConfig())
	carts := services.NewCartService(users)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	if limit := config.RateLimitPerMin(); limit > 0 {
		r.Use(middleware.RateLimit(limit, time.Minute))
	}

	routes.Register(r, routes.Controllers{
		Products: controllers.NewProductController(catalog),
		Auth:     controllers.NewAuthController(accounts),
		Cart:     controllers.NewCartController(carts),
		Upload:   controllers.NewUploadController(),
	})

	a.Router = r
	logger.Info("application booted",
		"env", config.AppEnv(),
		"db", config.MongoDB(),
		"queue", config.QueueDriver(),
	)
	return a, nil
}

// startQueue registers jobs, picks the queue driver and starts the
// worker loop on a bounded pool.
func (a *App) startQueue() {
	jobs.RegisterAll()

	if config.QueueDriver() == "redis" && cache.RDB != nil {
		queue.UseDriver(queue.NewRedisDriver(cache.RDB))
	}

	size, err := strconv.Atoi(config.Get("QUEUE_WORKERS", "4"))
	if err != nil || size <= 0 {
		size = 4
	}
	a.pool = workerpool.New(size)

	ctx, cancel := context.WithCancel(context.Background())
	a.workCancel = cancel
	go queue.Work(ctx, a.pool)
}

// Shutdown stops the queue worker, flushes the log sink and closes the
// document store connection.
func (a *App) Shutdown(ctx context.Context) {
	if a.workCancel != nil {
		a.workCancel()
	}
	if a.pool != nil {
		a.pool.Shutdown()
	}
	if a.logSink != nil {
		a.logSink.Close()
	}
	if a.Mongo != nil {
		if err := a.Mongo.Close(ctx); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}
}
