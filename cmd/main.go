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

	createBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/export_bookings"
	getBookingsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_bookings"
	getSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_slots"
	updateBookingStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/catalog"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingfile"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingmem"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingpg"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/bookingstore"
	"github.com/m04kA/SMC-AppointmentService/internal/notify"
	bookingsService "github.com/m04kA/SMC-AppointmentService/internal/service/bookings"
	createBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/lockmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище бронирований
	var bookingRepository bookingstore.Repository

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)

		bookingRepository = bookingpg.NewRepository(db)

	case config.BackendMemory:
		bookingRepository = bookingmem.NewRepository()
		log.Info("Using in-memory booking storage")

	default:
		bookingRepository = bookingfile.NewRepository(cfg.Storage.File.Path, log)
		log.Info("Using file booking storage at %s", cfg.Storage.File.Path)
	}

	// Инициализируем каталог слотов.
	// Каталог детерминированно строится от точки отсчета и после
	// создания не меняется.
	slotPolicy := catalog.Policy{
		HorizonDays:     cfg.Slots.HorizonDays,
		DayStartHour:    cfg.Slots.DayStartHour,
		DayEndHour:      cfg.Slots.DayEndHour,
		IntervalMinutes: cfg.Slots.IntervalMinutes,
		WeekStart:       cfg.Slots.WeekStart,
	}
	slotCatalog := catalog.New(time.Now().UTC(), slotPolicy)
	log.Info("Slot catalog built: %d slots (%d days, %02d:00-%02d:00, %d min interval)",
		slotCatalog.Len(), cfg.Slots.HorizonDays, cfg.Slots.DayStartHour,
		cfg.Slots.DayEndHour, cfg.Slots.IntervalMinutes)

	// Заполняем in-memory хранилище демо-данными (если включено)
	if cfg.Storage.Backend == config.BackendMemory && cfg.Storage.Memory.SeedSampleData {
		memRepo := bookingRepository.(*bookingmem.Repository)
		if err := memRepo.SeedSampleData(context.Background(), slotCatalog, time.Now().UTC()); err != nil {
			log.Warn("Failed to seed sample data: %v", err)
		} else {
			log.Info("Sample bookings seeded")
		}
	}

	// Менеджер блокировок сериализует все мутации хранилища,
	// чтобы check-then-create выполнялся атомарно
	lockMgr := lockmanager.New()

	// Уведомления (консольная имитация календаря и почты)
	notifier := notify.NewConsoleNotifier(log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		lockMgr,
		notifier,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotCatalog,
		lockMgr,
		notifier,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		slotCatalog,
		log,
	)

	// Инициализируем handlers
	getSlots := getSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Получение слотов с признаком доступности
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Список всех бронирований
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Экспорт бронирований (csv | xlsx)
	api.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// Обновление статуса бронирования
	api.HandleFunc("/bookings/{bookingId}", updateBookingStatus.Handle).Methods(http.MethodPatch)

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
