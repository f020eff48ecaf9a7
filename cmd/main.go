package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	changeStatusHandler "github.com/m04kA/RBP-ReservationService/internal/api/handlers/change_status"
	createReservationHandler "github.com/m04kA/RBP-ReservationService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/RBP-ReservationService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/RBP-ReservationService/internal/api/handlers/get_reservation"
	getTenantConfigHandler "github.com/m04kA/RBP-ReservationService/internal/api/handlers/get_tenant_config"
	listReservationsHandler "github.com/m04kA/RBP-ReservationService/internal/api/handlers/list_reservations"
	updateTenantConfigHandler "github.com/m04kA/RBP-ReservationService/internal/api/handlers/update_tenant_config"
	"github.com/m04kA/RBP-ReservationService/internal/api/middleware"
	"github.com/m04kA/RBP-ReservationService/internal/config"
	tenantConfigCache "github.com/m04kA/RBP-ReservationService/internal/infra/cache/tenantconfig"
	reservationRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/reservation"
	tenantcfgRepo "github.com/m04kA/RBP-ReservationService/internal/infra/storage/tenantcfg"
	notifyServiceClient "github.com/m04kA/RBP-ReservationService/internal/integrations/notifyservice"
	reservationsService "github.com/m04kA/RBP-ReservationService/internal/service/reservations"
	tenantConfigService "github.com/m04kA/RBP-ReservationService/internal/service/tenantconfig"
	createReservationUC "github.com/m04kA/RBP-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/RBP-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/RBP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RBP-ReservationService/pkg/logger"
	"github.com/m04kA/RBP-ReservationService/pkg/metrics"
	"github.com/m04kA/RBP-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/RBP-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting RBP-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Кеш конфигураций арендаторов (если включён)
	var cfgCache tenantConfigService.ConfigCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cfgCache = tenantConfigCache.New(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Tenant config cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Клиент сервиса уведомлений (если включён)
	var notifyClient *notifyServiceClient.Client
	if cfg.NotifyService.Enabled {
		notifyClient = notifyServiceClient.NewClient(
			cfg.NotifyService.URL,
			time.Duration(cfg.NotifyService.Timeout)*time.Second,
			log,
		)
		log.Info("NotifyService client initialized (url=%s, timeout=%ds)",
			cfg.NotifyService.URL, cfg.NotifyService.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		configRepository      *tenantcfgRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		configRepository = tenantcfgRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		configRepository = tenantcfgRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	configSvc := tenantConfigService.NewService(configRepository, cfgCache, log)

	// При выключенных уведомлениях в сервисы передаётся nil-интерфейс
	var reservationsNotify reservationsService.NotifyServiceClient
	var createNotify createReservationUC.NotifyServiceClient
	if notifyClient != nil {
		reservationsNotify = notifyClient
		createNotify = notifyClient
	}

	reservationsSvc := reservationsService.NewService(reservationRepository, reservationsNotify, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		configSvc,
		createNotify,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		configSvc,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	changeStatus := changeStatusHandler.NewHandler(reservationsSvc, log)
	getTenantConfig := getTenantConfigHandler.NewHandler(configSvc, log)
	updateTenantConfig := updateTenantConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание бронирования (гостевой сценарий, аутентификация не требуется)
	api.HandleFunc("/tenants/{tenantId}/reservations",
		createReservation.Handle).Methods(http.MethodPost)

	// Доступность окон бронирования на дату
	api.HandleFunc("/tenants/{tenantId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Конфигурация бронирований арендатора
	api.HandleFunc("/tenants/{tenantId}/reservation-config",
		getTenantConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования (административные операции) ---
	// Список бронирований арендатора
	protected.HandleFunc("/tenants/{tenantId}/reservations",
		listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)

	// Смена статуса брони (подтверждение / отмена)
	protected.HandleFunc("/reservations/{id}/status", changeStatus.Handle).Methods(http.MethodPatch)

	// --- Управление конфигурацией арендатора ---
	protected.HandleFunc("/tenants/{tenantId}/reservation-config",
		updateTenantConfig.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
