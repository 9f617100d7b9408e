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

	createBookingHandler "github.com/mindsettler/booking-backend/internal/api/handlers/create_booking"
	createContactHandler "github.com/mindsettler/booking-backend/internal/api/handlers/create_contact"
	createCorporateHandler "github.com/mindsettler/booking-backend/internal/api/handlers/create_corporate_enquiry"
	getAvailableSlotsHandler "github.com/mindsettler/booking-backend/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/mindsettler/booking-backend/internal/api/handlers/get_booking"
	healthHandler "github.com/mindsettler/booking-backend/internal/api/handlers/health"
	listBookingsHandler "github.com/mindsettler/booking-backend/internal/api/handlers/list_bookings"
	setSlotAvailabilityHandler "github.com/mindsettler/booking-backend/internal/api/handlers/set_slot_availability"
	updateBookingStatusHandler "github.com/mindsettler/booking-backend/internal/api/handlers/update_booking_status"
	"github.com/mindsettler/booking-backend/internal/api/middleware"
	"github.com/mindsettler/booking-backend/internal/app"
	"github.com/mindsettler/booking-backend/internal/config"
	"github.com/mindsettler/booking-backend/internal/domain"
	bookingRepo "github.com/mindsettler/booking-backend/internal/infra/storage/booking"
	contactRepo "github.com/mindsettler/booking-backend/internal/infra/storage/contact"
	corporateRepo "github.com/mindsettler/booking-backend/internal/infra/storage/corporate"
	disabledSlotRepo "github.com/mindsettler/booking-backend/internal/infra/storage/disabledslot"
	bookingsService "github.com/mindsettler/booking-backend/internal/service/bookings"
	intakeService "github.com/mindsettler/booking-backend/internal/service/intake"
	slotsService "github.com/mindsettler/booking-backend/internal/service/slots"
	createBookingUC "github.com/mindsettler/booking-backend/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mindsettler/booking-backend/internal/usecase/get_available_slots"
	"github.com/mindsettler/booking-backend/pkg/dbmetrics"
	"github.com/mindsettler/booking-backend/pkg/logger"
	"github.com/mindsettler/booking-backend/pkg/metrics"
	"github.com/mindsettler/booking-backend/pkg/simpletxmanager"
	"github.com/mindsettler/booking-backend/pkg/txmanager"
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

	log.Info("Starting booking-backend...")
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

	// Применяем миграции
	if err := app.RunMigrations(context.Background(), db, cfg.Migrations.Dir, log); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	// Дневной шаблон слотов
	template, err := domain.NewSlotTemplate(cfg.Slots.DailyTimes)
	if err != nil {
		log.Fatal("Invalid daily slot template: %v", err)
	}
	log.Info("Daily slot template: %v", cfg.Slots.DailyTimes)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		disabledSlotRepository *disabledSlotRepo.Repository
		contactRepository      *contactRepo.Repository
		corporateRepository    *corporateRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		disabledSlotRepository = disabledSlotRepo.NewRepository(wrappedDB)
		contactRepository = contactRepo.NewRepository(wrappedDB)
		corporateRepository = corporateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		disabledSlotRepository = disabledSlotRepo.NewRepository(db)
		contactRepository = contactRepo.NewRepository(db)
		corporateRepository = corporateRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	slotSvc := slotsService.NewService(disabledSlotRepository, log)
	intakeSvc := intakeService.NewService(contactRepository, corporateRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		template,
		bookingRepository,
		disabledSlotRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		template,
		bookingRepository,
		disabledSlotRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	setSlotAvailability := setSlotAvailabilityHandler.NewHandler(slotSvc, log)
	createContact := createContactHandler.NewHandler(intakeSvc, log)
	createCorporate := createCorporateHandler.NewHandler(intakeSvc, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID())
	if cfg.CORS.AllowedOrigin != "" {
		r.Use(middleware.CORS(cfg.CORS.AllowedOrigin))
		// Preflight запросы должны попадать в маршрутизатор, чтобы
		// сработал CORS middleware
		r.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})
		log.Info("CORS enabled for origin %s", cfg.CORS.AllowedOrigin)
	}

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Health check
	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Слоты дня с флагами доступности
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Контактная форма
	api.HandleFunc("/contact", createContact.Handle).Methods(http.MethodPost)

	// Корпоративные заявки
	api.HandleFunc("/corporate", createCorporate.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// Список всех бронирований
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Бронирование по ID
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Решение по бронированию
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отключение/включение слота
	admin.HandleFunc("/slots/disable", setSlotAvailability.Handle).Methods(http.MethodPost)

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
