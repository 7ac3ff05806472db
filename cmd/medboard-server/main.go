package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/medboard/medboard/internal/config"
	"github.com/medboard/medboard/internal/domain/appointment"
	"github.com/medboard/medboard/internal/domain/dashboard"
	"github.com/medboard/medboard/internal/domain/doctor"
	"github.com/medboard/medboard/internal/domain/hospital"
	"github.com/medboard/medboard/internal/domain/patient"
	"github.com/medboard/medboard/internal/domain/revenue"
	"github.com/medboard/medboard/internal/platform/auth"
	"github.com/medboard/medboard/internal/platform/middleware"
	"github.com/medboard/medboard/internal/platform/sandbox"
	"github.com/medboard/medboard/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medboard-server",
		Short: "Multi-hospital appointment and revenue API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e, _ := buildServer(cfg, zerolog.Nop())
			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path != routes[j].Path {
					return routes[i].Path < routes[j].Path
				}
				return routes[i].Method < routes[j].Method
			})
			for _, r := range routes {
				fmt.Printf("%-7s %s\n", r.Method, r.Path)
			}
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	e, seeder := buildServer(cfg, logger)

	// Demo data
	if err := seeder.SeedDemo(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed demo data")
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// buildServer wires the store, services, and routes into an echo instance.
// Split out of runServer so the routes command can introspect the router
// without binding a port.
func buildServer(cfg *config.Config, logger zerolog.Logger) (*echo.Echo, *sandbox.Seeder) {
	st := store.New()

	cal := doctor.Calendar{
		HorizonDays:  cfg.BookingHorizonDays,
		WorkdayStart: cfg.WorkdayStart,
		WorkdayEnd:   cfg.WorkdayEnd,
		SlotMinutes:  cfg.SlotMinutes,
	}

	hospitalSvc := hospital.NewService(st.Hospitals)
	doctorSvc := doctor.NewService(st.Doctors, cal)
	patientSvc := patient.NewService(st.Patients)
	appointmentSvc := appointment.NewService(st.Appointments, st.Doctors, cfg.SlotMinutes, cfg.DefaultConsultationFee)
	revenueSvc := revenue.NewService(st.Revenues, st.Appointments, st.Doctors, cfg.DefaultHospitalShare)
	dashboardSvc := dashboard.NewService(hospitalSvc, doctorSvc, patientSvc, appointmentSvc, revenueSvc)

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	seeder := sandbox.NewSeeder(st, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Login is the only unauthenticated API route.
	public := e.Group("/api/v1")
	auth.NewLoginHandler(issuer, time.Duration(cfg.LoginDelayMS)*time.Millisecond).RegisterRoutes(public)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(auth.Middleware(issuer))

	hospital.NewHandler(hospitalSvc).RegisterRoutes(apiV1)
	doctor.NewHandler(doctorSvc).RegisterRoutes(apiV1)
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(apiV1)
	revenue.NewHandler(revenueSvc).RegisterRoutes(apiV1)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(apiV1)
	sandbox.NewHandler(seeder).RegisterRoutes(apiV1)

	return e, seeder
}
