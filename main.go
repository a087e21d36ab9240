package main

import (
    "context"
    "encoding/json"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"
    "github.com/gorilla/mux"
    "github.com/rs/cors"
    _ "github.com/lib/pq"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/config"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/handlers"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/middleware"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/models"
    "github.com/zuhamohammad0709/AdarshPulse-Dashboard/store"
)

type HealthResponse struct {
    Status       string `json:"status"`
    DataSource   string `json:"data_source"`
    VillageCount int    `json:"village_count"`
    Error        string `json:"error,omitempty"`
}

func healthCheck(villageCount int) http.HandlerFunc {
    return func(w http.ResponseWriter, r *http.Request) {
        response := HealthResponse{
            Status:       "ok",
            DataSource:   config.DataSource(),
            VillageCount: villageCount,
        }

        if config.DataSource() == config.SourcePostgres {
            if config.DB == nil {
                response.Status = "error"
                response.Error = "Database connection not initialized"
            } else if err := config.DB.Ping(); err != nil {
                response.Status = "error"
                response.Error = "Database ping failed: " + err.Error()
            }
        }

        w.Header().Set("Content-Type", "application/json")
        json.NewEncoder(w).Encode(response)
    }
}

// loadVillages reads the village collection once at startup. A missing or
// malformed source is fatal; per-row data-quality warnings are logged and
// the rows kept with substituted values.
func loadVillages() []models.VillageRecord {
    var villages []models.VillageRecord
    var warnings []string
    var err error

    switch config.DataSource() {
    case config.SourcePostgres:
        log.Println("Loading villages from PostgreSQL...")
        if err := config.InitDBWithRetry(5); err != nil {
            log.Fatalf("Failed to initialize PostgreSQL: %v", err)
        }
        villages, warnings, err = store.LoadPostgres(config.DB)
    default:
        log.Printf("Loading villages from CSV: %s", config.CSVPath())
        villages, warnings, err = store.LoadCSV(config.CSVPath())
    }

    if err != nil {
        log.Fatalf("Failed to load village data: %v", err)
    }
    for _, warning := range warnings {
        log.Printf("Data warning: %s", warning)
    }
    log.Printf("Loaded %d villages", len(villages))
    return villages
}

func main() {
    startTime := time.Now()
    log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

    // Load environment variables first
    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
        log.Printf("No PORT environment variable found, using default: %s", port)
    }

    config.InitCache()

    villages := loadVillages()
    defer config.CloseDB()
    handlers.Init(villages)

    r := mux.NewRouter()

    // CORS configuration
    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://localhost:8080",
            "http://127.0.0.1:3000",
        },
        AllowedMethods: []string{"GET", "OPTIONS"},
        AllowedHeaders: []string{
            "Accept",
            "Content-Type",
            "Origin",
        },
        MaxAge: 86400,
    })

    // Apply middlewares in order
    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(middleware.CompressHandler)

    // API routes
    api := r.PathPrefix("/api/v1").Subrouter()
    registerRoutes(api)
    api.HandleFunc("/health/detailed", healthCheck(len(villages))).Methods("GET")
    log.Println("Routes registered successfully")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)
    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            serverErrors <- err
        }
    }()

    // Handle graceful shutdown
    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error received: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed successfully")
    }
}

func registerRoutes(api *mux.Router) {
    // Village analysis routes
    api.HandleFunc("/villages", handlers.GetVillages).Methods("GET")
    api.HandleFunc("/villages/top", handlers.GetTopVillages).Methods("GET")
    api.HandleFunc("/villages/markers", handlers.GetVillageMarkers).Methods("GET")
    api.HandleFunc("/villages/compare", handlers.CompareVillages).Methods("GET")
    api.HandleFunc("/villages/simulate", handlers.SimulateUpgrade).Methods("GET")

    // Dashboard routes
    api.HandleFunc("/summary", handlers.GetSummary).Methods("GET")
    api.HandleFunc("/suggestions", handlers.GetSuggestions).Methods("GET")
    api.HandleFunc("/gaps/frequency", handlers.GetGapFrequency).Methods("GET")

    // Report downloads
    api.HandleFunc("/reports/csv", handlers.DownloadCSVReport).Methods("GET")
    api.HandleFunc("/reports/pdf", handlers.DownloadPDFReport).Methods("GET")

    // Health check
    api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    }).Methods("GET")
}
