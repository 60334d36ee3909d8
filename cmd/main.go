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
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	cancelAppointmentHandler "github.com/avora-app/agenda-service/internal/api/handlers/cancel_appointment"
	clearStorageHandler "github.com/avora-app/agenda-service/internal/api/handlers/clear_storage"
	createAppointmentHandler "github.com/avora-app/agenda-service/internal/api/handlers/create_appointment"
	createProfessionalHandler "github.com/avora-app/agenda-service/internal/api/handlers/create_professional"
	deleteProfessionalHandler "github.com/avora-app/agenda-service/internal/api/handlers/delete_professional"
	exportBackupHandler "github.com/avora-app/agenda-service/internal/api/handlers/export_backup"
	getAvailableSlotsHandler "github.com/avora-app/agenda-service/internal/api/handlers/get_available_slots"
	getDayAppointmentsHandler "github.com/avora-app/agenda-service/internal/api/handlers/get_day_appointments"
	getEligibleProfessionalsHandler "github.com/avora-app/agenda-service/internal/api/handlers/get_eligible_professionals"
	getMonthOverviewHandler "github.com/avora-app/agenda-service/internal/api/handlers/get_month_overview"
	importBackupHandler "github.com/avora-app/agenda-service/internal/api/handlers/import_backup"
	listProfessionalsHandler "github.com/avora-app/agenda-service/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/avora-app/agenda-service/internal/api/handlers/list_services"
	loginHandler "github.com/avora-app/agenda-service/internal/api/handlers/login"
	registerHandler "github.com/avora-app/agenda-service/internal/api/handlers/register"
	setProfessionalActiveHandler "github.com/avora-app/agenda-service/internal/api/handlers/set_professional_active"
	storageInfoHandler "github.com/avora-app/agenda-service/internal/api/handlers/storage_info"
	updateProfessionalHandler "github.com/avora-app/agenda-service/internal/api/handlers/update_professional"
	"github.com/avora-app/agenda-service/internal/api/middleware"
	"github.com/avora-app/agenda-service/internal/config"
	appointmentsRepo "github.com/avora-app/agenda-service/internal/infra/storage/appointments"
	"github.com/avora-app/agenda-service/internal/infra/storage/kv"
	rosterRepo "github.com/avora-app/agenda-service/internal/infra/storage/roster"
	usersRepo "github.com/avora-app/agenda-service/internal/infra/storage/users"
	appointmentsService "github.com/avora-app/agenda-service/internal/service/appointments"
	authService "github.com/avora-app/agenda-service/internal/service/auth"
	backupService "github.com/avora-app/agenda-service/internal/service/backup"
	rosterService "github.com/avora-app/agenda-service/internal/service/roster"
	cancelAppointmentUC "github.com/avora-app/agenda-service/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/avora-app/agenda-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/avora-app/agenda-service/internal/usecase/get_available_slots"
	getEligibleProfessionalsUC "github.com/avora-app/agenda-service/internal/usecase/get_eligible_professionals"
	getMonthOverviewUC "github.com/avora-app/agenda-service/internal/usecase/get_month_overview"
	"github.com/avora-app/agenda-service/pkg/logger"
	"github.com/avora-app/agenda-service/pkg/metrics"
)

func main() {
	// .env необязателен: секреты можно передать и напрямую через окружение
	_ = godotenv.Load()

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

	log.Info("Starting agenda-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем key-value хранилище
	ctx := context.Background()
	var store kv.Store

	switch cfg.Storage.Backend {
	case "file":
		fileStore, err := kv.NewFileStore(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("Failed to open file storage: %v", err)
		}
		store = fileStore
		log.Info("Storage backend: file (%s)", cfg.Storage.FilePath)

	case "postgres":
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		pgStore, err := kv.NewPostgresStore(ctx, db)
		if err != nil {
			log.Fatal("Failed to initialize postgres storage: %v", err)
		}
		store = pgStore
		log.Info("Storage backend: postgres (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer client.Close()

		redisStore, err := kv.NewRedisStore(ctx, client, cfg.Storage.Redis.KeyPrefix)
		if err != nil {
			log.Fatal("Failed to initialize redis storage: %v", err)
		}
		store = redisStore
		log.Info("Storage backend: redis (%s)", cfg.Storage.Redis.Addr)

	default:
		log.Fatal("Unknown storage backend: %q", cfg.Storage.Backend)
	}

	// Инициализируем репозитории
	rosterRepository := rosterRepo.NewRepository(store, log)
	appointmentsRepository := appointmentsRepo.NewRepository(store, log)
	usersRepository := usersRepo.NewRepository(store, log)

	// Инициализируем сервисы
	rosterSvc := rosterService.NewService(rosterRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentsRepository, log)
	backupSvc := backupService.NewService(store, log)
	authSvc := authService.NewService(
		usersRepository,
		log,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMin)*time.Minute,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(rosterRepository, appointmentsRepository, log)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(appointmentsRepository, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(rosterRepository, appointmentsRepository, log)
	getEligibleProfessionalsUseCase := getEligibleProfessionalsUC.NewUseCase(rosterRepository, log)
	getMonthOverviewUseCase := getMonthOverviewUC.NewUseCase(appointmentsRepository, log)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEligibleProfessionals := getEligibleProfessionalsHandler.NewHandler(getEligibleProfessionalsUseCase, log)
	getMonthOverview := getMonthOverviewHandler.NewHandler(getMonthOverviewUseCase, log)
	getDayAppointments := getDayAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listServices := listServicesHandler.NewHandler(log)
	listProfessionals := listProfessionalsHandler.NewHandler(rosterSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(rosterSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(rosterSvc, log)
	setProfessionalActive := setProfessionalActiveHandler.NewHandler(rosterSvc, log)
	deleteProfessional := deleteProfessionalHandler.NewHandler(rosterSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	exportBackup := exportBackupHandler.NewHandler(backupSvc, log)
	importBackup := importBackupHandler.NewHandler(backupSvc, log)
	storageInfo := storageInfoHandler.NewHandler(backupSvc, log)
	clearStorage := clearStorageHandler.NewHandler(backupSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Аутентификация
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Календарь и доступность
	api.HandleFunc("/calendar/{year}/{month}", getMonthOverview.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/{year}/{month}/{day}/professionals",
		getEligibleProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/{year}/{month}/{day}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{dateKey}/{id}", cancelAppointment.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/calendar/{year}/{month}/{day}/appointments",
		getDayAppointments.Handle).Methods(http.MethodGet)

	// --- Ростер (чтение доступно всем аутентифицированным) ---
	protected.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (управление ростером и хранилищем)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/professionals/{id}", updateProfessional.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{id}/active", setProfessionalActive.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/professionals/{id}", deleteProfessional.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/backup/export", exportBackup.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/backup/import", importBackup.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/backup/info", storageInfo.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/backup/clear", clearStorage.Handle).Methods(http.MethodPost)

	// Запускаем автоматический бэкап по расписанию (если включен)
	var backupCron *cron.Cron
	if cfg.Backup.Enabled {
		backupCron = cron.New()
		_, err := backupCron.AddFunc(cfg.Backup.Spec, func() {
			if path, err := backupSvc.WriteBackupFile(context.Background(), cfg.Backup.Dir); err != nil {
				log.Error("Scheduled backup failed: %v", err)
			} else {
				log.Info("Scheduled backup written to %s", path)
			}
		})
		if err != nil {
			log.Fatal("Invalid backup schedule %q: %v", cfg.Backup.Spec, err)
		}
		backupCron.Start()
		log.Info("Scheduled backups enabled: spec=%q, dir=%s", cfg.Backup.Spec, cfg.Backup.Dir)
	}

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

	if backupCron != nil {
		cronCtx := backupCron.Stop()
		<-cronCtx.Done()
		log.Info("Scheduled backups stopped")
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
