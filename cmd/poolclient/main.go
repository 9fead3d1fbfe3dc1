package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/PacificPool/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/PacificPool/internal/api/handlers/create_booking"
	dismissNoticeHandler "github.com/m04kA/PacificPool/internal/api/handlers/dismiss_notice"
	getDayScheduleHandler "github.com/m04kA/PacificPool/internal/api/handlers/get_day_schedule"
	getWeekScheduleHandler "github.com/m04kA/PacificPool/internal/api/handlers/get_week_schedule"
	loginHandler "github.com/m04kA/PacificPool/internal/api/handlers/login"
	registerHandler "github.com/m04kA/PacificPool/internal/api/handlers/register"
	scheduleEventsHandler "github.com/m04kA/PacificPool/internal/api/handlers/schedule_events"
	"github.com/m04kA/PacificPool/internal/api/middleware"
	"github.com/m04kA/PacificPool/internal/config"
	"github.com/m04kA/PacificPool/internal/integrations/authservice"
	"github.com/m04kA/PacificPool/internal/integrations/scheduleservice"
	"github.com/m04kA/PacificPool/internal/service/coordinator"
	cancelBookingUC "github.com/m04kA/PacificPool/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/PacificPool/internal/usecase/create_booking"
	dismissNoticeUC "github.com/m04kA/PacificPool/internal/usecase/dismiss_notice"
	getDayScheduleUC "github.com/m04kA/PacificPool/internal/usecase/get_day_schedule"
	getWeekScheduleUC "github.com/m04kA/PacificPool/internal/usecase/get_week_schedule"
	loginUC "github.com/m04kA/PacificPool/internal/usecase/login"
	registerUC "github.com/m04kA/PacificPool/internal/usecase/register"
	watchScheduleUC "github.com/m04kA/PacificPool/internal/usecase/watch_schedule"
	"github.com/m04kA/PacificPool/pkg/logger"
	"github.com/m04kA/PacificPool/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting PacificPool client API...")
	log.Info("Configuration loaded from %s", *configPath)

	// Метрики (nil - выключены, все методы nil-safe)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интеграционные клиенты
	scheduleClient := scheduleservice.NewClient(
		cfg.ScheduleService.URL,
		cfg.ScheduleService.TimeoutDuration(),
		log,
		scheduleservice.WithConcurrency(cfg.Booking.FetchConcurrency),
		scheduleservice.WithMetrics(metricsCollector),
	)
	authClient := authservice.NewClient(
		cfg.AuthService.URL,
		cfg.AuthService.TimeoutDuration(),
		log,
		authservice.WithMetrics(metricsCollector),
	)
	log.Info("Integration clients initialized (ScheduleService=%s timeout=%ds, AuthService=%s timeout=%ds)",
		cfg.ScheduleService.URL, cfg.ScheduleService.Timeout, cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Координаторы бронирования, по одному на пользователя
	coordinators := coordinator.NewRegistry(func(userID int64) *coordinator.Coordinator {
		return coordinator.New(userID, scheduleClient, scheduleClient, log,
			coordinator.WithRequestTimeout(cfg.Booking.RequestTimeoutDuration()),
			coordinator.WithMetrics(metricsCollector),
		)
	})

	evictionCtx, stopEviction := context.WithCancel(context.Background())
	defer stopEviction()
	go coordinators.RunEviction(evictionCtx, time.Minute, cfg.Booking.IdleTTLDuration(), log)

	// Инициализируем use cases
	loginUseCase := loginUC.NewUseCase(authClient, coordinators, log)
	registerUseCase := registerUC.NewUseCase(authClient, log)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(coordinators, log)
	getWeekScheduleUseCase := getWeekScheduleUC.NewUseCase(coordinators, log)
	createBookingUseCase := createBookingUC.NewUseCase(coordinators, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(coordinators, log)
	dismissNoticeUseCase := dismissNoticeUC.NewUseCase(coordinators, log)
	watchScheduleUseCase := watchScheduleUC.NewUseCase(coordinators, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(loginUseCase, log)
	register := registerHandler.NewHandler(registerUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(getWeekScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	dismissNotice := dismissNoticeHandler.NewHandler(dismissNoticeUseCase, log)
	scheduleEvents := scheduleEventsHandler.NewHandler(watchScheduleUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	defer limiter.Close()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(limiter.Middleware)
	auth.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	auth.HandleFunc("/register", register.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание ---
	protected.HandleFunc("/schedule/day", getDaySchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/week", getWeekSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/events", scheduleEvents.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notice", dismissNotice.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/active", cancelBooking.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер; WriteTimeout 0 держит поток событий открытым
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
