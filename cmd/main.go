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

	adminDeleteBookingHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/admin_delete_booking"
	adminListBookingsHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/admin_list_bookings"
	cancelBookingHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/create_booking"
	getBookedCourtsHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/get_booked_courts"
	getBookingHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/get_user_bookings"
	listCourtsHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/list_courts"
	listTimeSlotsHandler "github.com/m04kA/Eclipse-BookingService/internal/api/handlers/list_time_slots"
	"github.com/m04kA/Eclipse-BookingService/internal/api/middleware"
	"github.com/m04kA/Eclipse-BookingService/internal/config"
	bookingRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/court"
	timeSlotRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/timeslot"
	userRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/user"
	"github.com/m04kA/Eclipse-BookingService/internal/integrations/verifyservice"
	bookingsService "github.com/m04kA/Eclipse-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/Eclipse-BookingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/Eclipse-BookingService/internal/usecase/create_booking"
	getBookedCourtsUC "github.com/m04kA/Eclipse-BookingService/internal/usecase/get_booked_courts"
	"github.com/m04kA/Eclipse-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Eclipse-BookingService/pkg/logger"
	"github.com/m04kA/Eclipse-BookingService/pkg/metrics"
	"github.com/m04kA/Eclipse-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Eclipse-BookingService/pkg/txmanager"
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

	log.Info("Starting Eclipse-BookingService...")
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

	// Клиент проверки телефонов (опционален)
	var verifier createBookingUC.VerifyClient
	if cfg.Verification.Enabled {
		verifier = verifyservice.NewClient(
			cfg.Verification.URL,
			time.Duration(cfg.Verification.Timeout)*time.Second,
			log,
		)
		log.Info("Phone verification enabled (VerifyService=%s timeout=%ds)",
			cfg.Verification.URL, cfg.Verification.Timeout)
	} else {
		log.Info("Phone verification disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		courtRepository    *courtRepo.Repository
		timeSlotRepository *timeSlotRepo.Repository
		userRepository     *userRepo.Repository
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
		courtRepository = courtRepo.NewRepository(wrappedDB)
		timeSlotRepository = timeSlotRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		timeSlotRepository = timeSlotRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(courtRepository, timeSlotRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		courtRepository,
		timeSlotRepository,
		verifier,
		txMgr,
		log,
	)

	getBookedCourtsUseCase := getBookedCourtsUC.NewUseCase(
		bookingRepository,
		timeSlotRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookedCourts := getBookedCourtsHandler.NewHandler(getBookedCourtsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listCourts := listCourtsHandler.NewHandler(catalogSvc, log)
	listTimeSlots := listTimeSlotsHandler.NewHandler(catalogSvc, log)
	adminListBookings := adminListBookingsHandler.NewHandler(bookingSvc, log)
	adminDeleteBooking := adminDeleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Занятые корты на дату и слот
	api.HandleFunc("/booked-courts", getBookedCourts.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента по телефону
	api.HandleFunc("/users/{phoneNumber}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Справочники
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", listTimeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	// Список бронирований с фильтрацией
	admin.HandleFunc("/bookings", adminListBookings.Handle).Methods(http.MethodGet)

	// Физическое удаление бронирования
	admin.HandleFunc("/bookings/{bookingId}", adminDeleteBooking.Handle).Methods(http.MethodDelete)

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
