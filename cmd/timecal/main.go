package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"timecal/internal/auth"
	"timecal/internal/calendar"
	"timecal/internal/client"
	"timecal/internal/config"
	"timecal/internal/handler"
	"timecal/internal/i18n"
	"timecal/internal/model"
	"timecal/internal/store"
	"timecal/internal/tui"
)

func main() {
	root := &cobra.Command{
		Use:          "timecal",
		Short:        "Time and attendance calendar",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), calendarCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the calendar API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg := config.Load()

	bundle, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("load locales: %w", err)
	}

	mongodb, err := store.NewMongoDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongodb.Close(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	events, err := store.NewEventStore(context.Background(), mongodb)
	if err != nil {
		return fmt.Errorf("init event store: %w", err)
	}

	authDB, err := auth.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	authSvc := auth.NewService(authDB, cfg.JWTSecret, cfg.JWTExpiration)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(handler.LocaleMiddleware(bundle))

	authHandler := handler.NewAuthHandler(authSvc)
	handler.NewHealthHandler(mongodb).RegisterRoutes(r)
	authHandler.RegisterRoutes(r)
	r.Group(func(r chi.Router) {
		r.Use(authSvc.Middleware)
		handler.NewEventHandler(events, bundle).RegisterRoutes(r)
		authHandler.RegisterProtectedRoutes(r)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on port %s (env: %s)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}

func calendarCmd() *cobra.Command {
	var (
		server   string
		username string
		password string
		locale   string
		twelveHr bool
	)
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Open the interactive calendar widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var svc calendar.EventService
			if server != "" {
				api := client.New(server, "")
				if username != "" {
					if err := api.Login(ctx, username, password); err != nil {
						return err
					}
				}
				svc = api
			} else {
				svc = calendar.NewSampleEventService(time.Now())
			}

			bundle, err := i18n.New(locale)
			if err != nil {
				return fmt.Errorf("load locales: %w", err)
			}

			ctrl, err := calendar.NewController(svc, nil, nil, calendar.Options{
				TimeManagementSettings:     defaultPolicies(),
				DisabledDatePickerSettings: defaultDisabledDates(time.Now()),
				TwelveHourClock:            twelveHr,
				ShowMinutes:                true,
				ShowOutsideDays:            true,
				Locales:                    bundle.Locales(),
				DefaultLocale:              locale,
			})
			if err != nil {
				return err
			}
			return tui.Run(ctx, ctrl, bundle)
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "timecal server base URL; empty runs against sample data")
	cmd.Flags().StringVar(&username, "username", "", "server username")
	cmd.Flags().StringVar(&password, "password", "", "server password")
	cmd.Flags().StringVar(&locale, "locale", i18n.DefaultLocale, "interface locale")
	cmd.Flags().BoolVar(&twelveHr, "12h", false, "use a 12-hour clock")
	return cmd
}

// defaultPolicies mirrors a common attendance setup: business hours around a
// lunch break for regular requests, evenings for overtime.
func defaultPolicies() model.TimeManagementSettings {
	workday := []model.TimeRange{
		{From: model.TimeOfDay{Hour: 8}, To: model.TimeOfDay{Hour: 12}},
		{From: model.TimeOfDay{Hour: 13}, To: model.TimeOfDay{Hour: 17, Minute: 30}},
	}
	return model.TimeManagementSettings{
		{
			Types:  []model.RequestType{model.RequestTypeEditTimeSheet, model.RequestTypePaidLeave, model.RequestTypeUnpaidLeave, model.RequestTypeRemoteWork},
			Ranges: workday,
		},
		{
			Types:  []model.RequestType{model.RequestTypeOvertime},
			Ranges: []model.TimeRange{{From: model.TimeOfDay{Hour: 19}, To: model.TimeOfDay{Hour: 23, Minute: 59}}},
		},
	}
}

// defaultDisabledDates blocks past dates for forward-looking request types;
// timesheet corrections stay open.
func defaultDisabledDates(now time.Time) model.DisabledDatePickerSettings {
	past := model.BeforeDay(now)
	return model.DisabledDatePickerSettings{
		model.RequestTypePaidLeave:   {past},
		model.RequestTypeUnpaidLeave: {past},
		model.RequestTypeRemoteWork:  {past},
		model.RequestTypeOvertime:    {past},
	}
}
