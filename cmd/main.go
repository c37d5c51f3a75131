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

	"github.com/NachoLedesma33/ReservationSystem/internal/access"
	createAppointmentHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/get_appointment"
	getDaySlotsHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/get_day_slots"
	getProfileHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/get_profile"
	listAppointmentsHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/list_appointments"
	loginUserHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/login_user"
	registerUserHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/register_user"
	updateAppointmentHandler "github.com/NachoLedesma33/ReservationSystem/internal/api/handlers/update_appointment"
	"github.com/NachoLedesma33/ReservationSystem/internal/api/middleware"
	"github.com/NachoLedesma33/ReservationSystem/internal/config"
	appointmentRepo "github.com/NachoLedesma33/ReservationSystem/internal/infra/storage/appointment"
	userRepo "github.com/NachoLedesma33/ReservationSystem/internal/infra/storage/user"
	appointmentsService "github.com/NachoLedesma33/ReservationSystem/internal/service/appointments"
	authService "github.com/NachoLedesma33/ReservationSystem/internal/service/auth"
	createAppointmentUC "github.com/NachoLedesma33/ReservationSystem/internal/usecase/create_appointment"
	getDaySlotsUC "github.com/NachoLedesma33/ReservationSystem/internal/usecase/get_day_slots"
	updateAppointmentUC "github.com/NachoLedesma33/ReservationSystem/internal/usecase/update_appointment"
	"github.com/NachoLedesma33/ReservationSystem/pkg/dbmetrics"
	"github.com/NachoLedesma33/ReservationSystem/pkg/logger"
	"github.com/NachoLedesma33/ReservationSystem/pkg/metrics"
	"github.com/NachoLedesma33/ReservationSystem/pkg/simpletxmanager"
	"github.com/NachoLedesma33/ReservationSystem/pkg/txmanager"
	"github.com/NachoLedesma33/ReservationSystem/pkg/types"
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

	log.Info("Starting ReservationSystem...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		userRepository        *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Проверка прав доступа к бронированиям
	accessChecker := access.NewChecker()

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		cfg.Auth.BcryptCost,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		accessChecker,
		log,
	)

	// Инициализируем use cases
	schedule := getDaySlotsUC.Schedule{
		OpenTime:            types.TimeString(cfg.Schedule.OpenTime),
		CloseTime:           types.TimeString(cfg.Schedule.CloseTime),
		SlotDurationMinutes: cfg.Schedule.SlotDurationMinutes,
	}

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		txMgr,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		accessChecker,
		txMgr,
		log,
	)
	getDaySlotsUseCase := getDaySlotsUC.NewUseCase(
		appointmentRepository,
		schedule,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(authSvc, log)
	loginUser := loginUserHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(authSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(getDaySlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)

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

	// Auth-ручки защищены rate limiter'ом от перебора паролей
	rateLimiter := middleware.NewRateLimiter(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitBurst)

	public := api.PathPrefix("/auth").Subrouter()
	public.Use(rateLimiter.Middleware)

	// Регистрация пользователя
	public.HandleFunc("/register", registerUser.Handle).Methods(http.MethodPost)

	// Вход пользователя
	public.HandleFunc("/login", loginUser.Handle).Methods(http.MethodPost)

	// Сетка слотов дня (занятость слотов не зависит от того, кто спрашивает)
	api.HandleFunc("/availability", getDaySlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// Профиль текущего пользователя
	protected.HandleFunc("/auth/profile", getProfile.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Список бронирований (админ видит все, пользователь - свои)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Обновление бронирования
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)

	// Удаление бронирования
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

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
