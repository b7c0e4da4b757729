// @title         signup-service API
// @version       1.0
// @description   Account registration service.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "github.com/artem13815/signup/docs"

	// internal imports
	"github.com/artem13815/signup/api/http"
	"github.com/artem13815/signup/api/http/handlers"
	"github.com/artem13815/signup/pkg/account"
	"github.com/artem13815/signup/pkg/config"
	"github.com/artem13815/signup/pkg/controller"
	"github.com/artem13815/signup/pkg/decorators"
	"github.com/artem13815/signup/pkg/emailcheck"
	"github.com/artem13815/signup/pkg/health"
	healthcheck "github.com/artem13815/signup/pkg/health/checkers"
	"github.com/artem13815/signup/pkg/logging"
	pgrepo "github.com/artem13815/signup/pkg/repository/postgres"
	redisrepo "github.com/artem13815/signup/pkg/repository/redis"
	"github.com/artem13815/signup/pkg/security/bcrypt"
	"github.com/artem13815/signup/pkg/storage/postgres"
	redisstore "github.com/artem13815/signup/pkg/storage/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.PoolOptions{MaxConns: int32(cfg.DBMaxConns)})
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	checkers := []health.Checker{healthcheck.NewPostgresChecker(pool)}

	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer redisClient.Close()
		checkers = append(checkers, healthcheck.NewRedisChecker(redisClient))
	}

	// Wire dependencies (Clean Architecture)
	accountRepo, err := pgrepo.NewAccountRepository(pool)
	if err != nil {
		log.Fatalf("init account repo: %v", err)
	}
	var logErrorRepo decorators.LogErrorRepository
	switch cfg.LogSink {
	case config.SinkRedis:
		logErrorRepo = redisrepo.NewLogErrorRepository(redisClient, redisrepo.DefaultKey, int64(cfg.ErrorListMax))
	default:
		logErrorRepo, err = pgrepo.NewLogErrorRepository(pool)
		if err != nil {
			log.Fatalf("init log error repo: %v", err)
		}
	}

	hasher, err := bcrypt.NewHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("init hasher: %v", err)
	}
	addAccount := account.NewService(hasher, accountRepo)
	signUp := controller.NewSignUpController(controller.NewSignUpValidation(emailcheck.New()), addAccount)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	counter, err := decorators.NewResponseCounter(registry)
	if err != nil {
		log.Fatalf("init metrics: %v", err)
	}

	var signUpController controller.Controller = decorators.NewLogController(signUp, logErrorRepo, log.WithField("component", "signup"))
	signUpController = decorators.NewMetricsController(signUpController, "signup", counter)

	readiness := health.NewService(checkers...)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	http.Register(app,
		handlers.NewSignUpHandler(signUpController),
		handlers.NewHealthHandler(readiness),
		handlers.NewMetricsHandler(registry),
	)

	log.WithFields(logrus.Fields{"port": cfg.Port, "log_sink": cfg.LogSink}).Info("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
