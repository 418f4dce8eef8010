package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "fairsplit/docs"
	"fairsplit/internal/activity"
	"fairsplit/internal/config"
	"fairsplit/internal/currency"
	"fairsplit/internal/database"
	"fairsplit/internal/expense"
	"fairsplit/internal/fairness"
	"fairsplit/internal/group"
	"fairsplit/internal/ledger"
	"fairsplit/internal/settlement"
	"fairsplit/pkg/logging"
	"fairsplit/pkg/metrics"
	mw "fairsplit/pkg/middleware"
)

// @title           FairSplit API
// @version         1.0
// @description     Bill splitting with balance tracking, settlements, and fairness insights.
// @BasePath        /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("connected to database")

	// Activity feed
	activityRepo := activity.NewRepository(db)
	activityService := activity.NewService(activityRepo)
	activityHandler := activity.NewHandler(activityService)

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo)
	groupHandler := group.NewHandler(groupService)

	// Expense feature
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, groupService, activityService)
	expenseHandler := expense.NewHandler(expenseService)

	// Balance ledger
	ledgerStore := ledger.NewRepository(db)
	ledgerService := ledger.NewService(ledgerStore, expenseService)
	ledgerHandler := ledger.NewHandler(ledgerService)

	// Settlements mutate the same ledger store the balance reads come from
	settlementService := settlement.NewService(ledgerStore, activityService)
	settlementHandler := settlement.NewHandler(settlementService)

	// Fairness insights
	fairnessService := fairness.NewService(expenseService)
	fairnessHandler := fairness.NewHandler(fairnessService)

	// Currency conversion (display only)
	currencyService := currency.NewService()
	currencyHandler := currency.NewHandler(currencyService)

	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(mw.SubjectMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/balances", ledgerHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/insights", fairnessHandler.Routes())
		r.Mount("/currencies", currencyHandler.Routes())
		r.Mount("/activity", activityHandler.Routes())
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
