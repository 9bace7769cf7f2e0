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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/create_booking"
	createEmployeeHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/create_employee"
	getBookingHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/get_booking"
	getDayDetailsHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/get_day_details"
	getMonthAvailabilityHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/get_month_availability"
	listBookingsHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/list_bookings"
	listEmployeesHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/list_employees"
	updateBookingStatusHandler "github.com/itolstov/FS-BookingService/internal/api/handlers/update_booking_status"
	"github.com/itolstov/FS-BookingService/internal/api/middleware"
	"github.com/itolstov/FS-BookingService/internal/config"
	"github.com/itolstov/FS-BookingService/internal/domain"
	bookingRepo "github.com/itolstov/FS-BookingService/internal/infra/storage/booking"
	employeeRepo "github.com/itolstov/FS-BookingService/internal/infra/storage/employee"
	"github.com/itolstov/FS-BookingService/internal/integrations/telegram"
	bookingsService "github.com/itolstov/FS-BookingService/internal/service/bookings"
	employeesService "github.com/itolstov/FS-BookingService/internal/service/employees"
	createBookingUC "github.com/itolstov/FS-BookingService/internal/usecase/create_booking"
	getDayDetailsUC "github.com/itolstov/FS-BookingService/internal/usecase/get_day_details"
	getMonthAvailabilityUC "github.com/itolstov/FS-BookingService/internal/usecase/get_month_availability"
	"github.com/itolstov/FS-BookingService/pkg/dbmetrics"
	"github.com/itolstov/FS-BookingService/pkg/logger"
	"github.com/itolstov/FS-BookingService/pkg/metrics"
	"github.com/itolstov/FS-BookingService/pkg/simpletxmanager"
	"github.com/itolstov/FS-BookingService/pkg/txmanager"
)

// Notifier интерфейс уведомлений о бронированиях: реализуется
// telegram.Client и telegram.NopNotifier
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, reason string) error
}

// TxManager интерфейс менеджера транзакций: реализуется txmanager
// (с метриками) и simpletxmanager
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting FS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс и сетка слотов студии
	loc, err := time.LoadLocation(cfg.Studio.Timezone)
	if err != nil {
		log.Fatal("Failed to load studio timezone %s: %v", cfg.Studio.Timezone, err)
	}
	grid := domain.NewSlotGrid(cfg.Studio.OpenHour, cfg.Studio.LastSlotHour, loc)
	log.Info("Slot grid initialized: %02d:00-%02d:00 %s (%d slots/day)",
		grid.OpenHour, grid.LastSlotHour+1, cfg.Studio.Timezone, grid.TotalSlots())

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

	// Применяем миграции
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(db, cfg.Database.MigrationsPath); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Клиент уведомлений в Telegram
	var notifier Notifier = telegram.NopNotifier{}

	if cfg.Telegram.Enabled {
		tgClient, err := telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.AdminChatID, loc, log)
		if err != nil {
			log.Fatal("Failed to initialize telegram client: %v", err)
		}
		notifier = tgClient
		log.Info("Telegram notifications enabled (admin_chat_id=%d)", cfg.Telegram.AdminChatID)
	} else {
		log.Info("Telegram notifications disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		employeeRepository *employeeRepo.Repository
	)

	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		employeeRepository = employeeRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		employeeRepository = employeeRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, notifier, log)
	employeeSvc := employeesService.NewService(employeeRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, notifier, grid, log)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(bookingRepository, grid, log)
	getDayDetailsUseCase := getDayDetailsUC.NewUseCase(bookingRepository, grid, log)

	// Инициализируем handlers
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getDayDetails := getDayDetailsHandler.NewHandler(getDayDetailsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listEmployees := listEmployeesHandler.NewHandler(employeeSvc, log)
	createEmployee := createEmployeeHandler.NewHandler(employeeSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарная занятость: пути и формы ответов зафиксированы
	// контрактом фронтенда, без /api префикса
	r.HandleFunc("/month-availability", getMonthAvailability.Handle).Methods(http.MethodGet)
	r.HandleFunc("/day-details", getDayDetails.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Создание бронирования доступно клиентам без аутентификации
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header, для сотрудников)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Сотрудники ---
	protected.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)

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
