package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/incident_board/internal/config"
	v1 "github.com/shenikar/incident_board/internal/handler/http/v1"
	"github.com/shenikar/incident_board/internal/metrics"
	"github.com/shenikar/incident_board/internal/projection"
	"github.com/shenikar/incident_board/internal/repository"
	"github.com/shenikar/incident_board/internal/service"
	"github.com/shenikar/incident_board/internal/source"
	"github.com/shenikar/incident_board/internal/webhook"
	"github.com/shenikar/incident_board/pkg/logger"
	redisclient "github.com/shenikar/incident_board/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/incident_board/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Incident Board API
// @version 1.0
// @description Community incident board: feed, high priority ticker, moderation list and map markers kept in sync with one incident collection.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Приемник событий доски
	publisher, closePublisher, err := newPublisher(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize event sink: %v", err)
	}
	defer closePublisher()

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsRenderer := metrics.NewRenderer(registry)

	// Инициализация хранилища и сервиса
	incidentRepo := repository.NewIncidentRepository()
	engine := projection.NewEngine(projection.RandomPlaceholder)
	incidentService := service.NewIncidentService(incidentRepo, engine, log, cfg, publisher, metricsRenderer)

	// Начальная загрузка: любая ошибка источника дает пустую доску
	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.DataSourceTimeout)
	src, err := source.Open(loadCtx, cfg)
	if err != nil {
		log.WithError(err).Warn("Failed to open data source")
	}
	incidentService.LoadIncidents(loadCtx, source.LoadOrEmpty(loadCtx, src, log))
	loadCancel()

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

// newPublisher создает приемник событий по EVENT_SINK и функцию его закрытия
func newPublisher(ctx context.Context, cfg *config.Config, log *logrus.Logger) (webhook.WebhookPublisher, func(), error) {
	switch cfg.EventSink {
	case config.EventSinkRedis:
		redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to Redis")

		// Воркер доставляет события из очереди на вебхук
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)

		return dispatch(ctx, webhook.NewRedisWebhookPublisher(redisClient), cfg, log), func() {
			if err := redisClient.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Redis client")
			}
		}, nil

	case config.EventSinkKafka:
		publisher := webhook.NewKafkaWebhookPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		log.WithField("topic", cfg.KafkaTopic).Info("Publishing board events to Kafka")
		return dispatch(ctx, publisher, cfg, log), func() {
			if err := publisher.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Kafka writer")
			}
		}, nil

	default:
		return webhook.NopPublisher{}, func() {}, nil
	}
}

// dispatch отвязывает публикацию от запросов: изменения доски не ждут сетевой приемник
func dispatch(ctx context.Context, sink webhook.WebhookPublisher, cfg *config.Config, log *logrus.Logger) webhook.WebhookPublisher {
	async := webhook.NewAsyncPublisher(sink, cfg.EventBuffer, log)
	async.Start(ctx)
	return async
}
