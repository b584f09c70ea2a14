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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	autofillAppointmentHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/autofill_appointment"
	completeAppointmentHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/create_appointment"
	createCategoryHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/create_category"
	createClientHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/create_client"
	createReadingHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/create_reading"
	deleteAppointmentHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/delete_appointment"
	deleteCategoryHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/delete_category"
	deleteClientHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/delete_client"
	deleteReadingHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/delete_reading"
	getAnalyticsHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/get_analytics"
	getAppointmentHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/get_appointments"
	getCalendarHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/get_calendar"
	getCategoriesHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/get_categories"
	getClientHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/get_client"
	getClientsHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/get_clients"
	healthHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/health"
	importClientsHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/import_clients"
	importSheetDBHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/import_sheetdb"
	previewDeadlineHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/preview_deadline"
	updateAppointmentHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/update_appointment"
	updateCategoryHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/update_category"
	updateClientHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/update_client"
	updateReadingHandler "github.com/m04kA/SMC-ReadingsCRM/internal/api/handlers/update_reading"
	"github.com/m04kA/SMC-ReadingsCRM/internal/api/middleware"
	"github.com/m04kA/SMC-ReadingsCRM/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-ReadingsCRM/internal/infra/storage/client"
	sheetDBClient "github.com/m04kA/SMC-ReadingsCRM/internal/integrations/sheetdb"
	analyticsService "github.com/m04kA/SMC-ReadingsCRM/internal/service/analytics"
	appointmentsService "github.com/m04kA/SMC-ReadingsCRM/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-ReadingsCRM/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-ReadingsCRM/internal/service/clients"
	autofillAppointmentUC "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/autofill_appointment"
	createAppointmentUC "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/create_appointment"
	importClientsUC "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_clients"
	importSheetDBUC "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/import_sheetdb"
	previewDeadlineUC "github.com/m04kA/SMC-ReadingsCRM/internal/usecase/preview_deadline"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/autofill"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/logger"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/metrics"
	"github.com/m04kA/SMC-ReadingsCRM/pkg/txmanager"
)

func main() {
	// Секреты можно положить в .env рядом с config.toml
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Failed to load .env: %v\n", err)
	}

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

	log.Info("Starting SMC-ReadingsCRM...")

	// Часовой пояс календаря уже проверен в config.Validate
	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load calendar timezone: %v", err)
	}

	// Политика поиска даты рождения при автозаполнении
	birthdatePolicy, err := autofill.PolicyByName(cfg.Autofill.BirthdatePolicy)
	if err != nil {
		log.Fatal("Failed to select autofill policy: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории и менеджер транзакций работают через обертку с метриками или напрямую
	var (
		executor   dbmetrics.DBExecutor
		txBeginner txmanager.TxBeginner
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		txBeginner = wrappedDB
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txBeginner = txmanager.FromSQL(db)
	}
	txMgr := txmanager.NewTransactionManager(txBeginner)

	// Инициализируем репозитории
	clientRepository := clientRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	appointmentRepository := appointmentRepo.NewRepository(executor)

	// Клиент старой таблицы
	sheetClient := sheetDBClient.NewClient(
		cfg.SheetDB.URL,
		time.Duration(cfg.SheetDB.Timeout)*time.Second,
		log,
	)
	if cfg.SheetDB.URL == "" {
		log.Warn("SheetDB url is not configured, legacy import is disabled")
	}

	// Инициализируем сервисы
	clientsSvc := clientsService.NewService(clientRepository, appointmentRepository, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, appointmentRepository, txMgr, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		clientRepository,
		catalogRepository,
		txMgr,
		location,
		log,
	)
	analyticsSvc := analyticsService.NewService(appointmentRepository, clientRepository, location, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		catalogRepository,
		txMgr,
		location,
		log,
	)
	autofillUseCase := autofillAppointmentUC.NewUseCase(
		autofill.NewEngine(autofill.WithBirthdatePolicy(birthdatePolicy)),
		clientRepository,
		metricsCollector,
		log,
	)
	importClientsUseCase := importClientsUC.NewUseCase(clientRepository, log)
	importSheetDBUseCase := importSheetDBUC.NewUseCase(
		sheetClient,
		clientRepository,
		catalogRepository,
		appointmentRepository,
		location,
		log,
	)
	previewDeadlineUseCase := previewDeadlineUC.NewUseCase(catalogRepository, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)

	createClient := createClientHandler.NewHandler(clientsSvc, log)
	getClients := getClientsHandler.NewHandler(clientsSvc, log)
	getClient := getClientHandler.NewHandler(clientsSvc, log)
	updateClient := updateClientHandler.NewHandler(clientsSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientsSvc, log)
	importClients := importClientsHandler.NewHandler(importClientsUseCase, log)

	getCategories := getCategoriesHandler.NewHandler(catalogSvc, log)
	createCategory := createCategoryHandler.NewHandler(catalogSvc, log)
	updateCategory := updateCategoryHandler.NewHandler(catalogSvc, log)
	deleteCategory := deleteCategoryHandler.NewHandler(catalogSvc, log)
	createReading := createReadingHandler.NewHandler(catalogSvc, log)
	updateReading := updateReadingHandler.NewHandler(catalogSvc, log)
	deleteReading := deleteReadingHandler.NewHandler(catalogSvc, log)

	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentsSvc, log)
	autofillAppointment := autofillAppointmentHandler.NewHandler(autofillUseCase, log)

	previewDeadline := previewDeadlineHandler.NewHandler(previewDeadlineUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(appointmentsSvc, log)
	getAnalytics := getAnalyticsHandler.NewHandler(analyticsSvc, log)
	importSheetDB := importSheetDBHandler.NewHandler(importSheetDBUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <api_token>)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.APIToken))
	if cfg.Auth.APIToken == "" {
		log.Warn("API token is not configured, authorization is disabled")
	}

	// --- Клиенты ---
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients", getClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/import", importClients.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPut)
	api.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	// --- Категории и расклады ---
	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/categories", createCategory.Handle).Methods(http.MethodPost)
	api.HandleFunc("/categories/{categoryId}", updateCategory.Handle).Methods(http.MethodPut)
	api.HandleFunc("/categories/{categoryId}", deleteCategory.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/categories/{categoryId}/readings", createReading.Handle).Methods(http.MethodPost)
	api.HandleFunc("/readings/{readingId}", updateReading.Handle).Methods(http.MethodPut)
	api.HandleFunc("/readings/{readingId}", deleteReading.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	// Автозаполнение ограничено по частоте для каждого IP
	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimit.AutofillPerMinute,
		cfg.RateLimit.MaxClients,
		time.Duration(cfg.RateLimit.TTL)*time.Second,
	)
	api.Handle("/appointments/autofill",
		rateLimiter.Middleware()(http.HandlerFunc(autofillAppointment.Handle))).Methods(http.MethodPost)

	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	// --- Срок, календарь, аналитика, импорт ---
	api.HandleFunc("/deadline", previewDeadline.Handle).Methods(http.MethodPost)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics", getAnalytics.Handle).Methods(http.MethodGet)
	api.HandleFunc("/import/sheetdb", importSheetDB.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

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
