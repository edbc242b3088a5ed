package main

import (
	"context"
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/dishboard/src/config"
	"github.com/username/dishboard/src/handlers"
	"github.com/username/dishboard/src/logger"
	"github.com/username/dishboard/src/parsers"
	"github.com/username/dishboard/src/processors"
	"github.com/username/dishboard/src/services"
	"github.com/username/dishboard/src/sheets"
	"golang.org/x/time/rate"
)

func rateLimitMiddleware(limiter *rate.Limiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(allowedOrigins []string, next http.Handler) http.Handler {
	originAllowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		originAllowed[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if originAllowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-Requested-With, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag, Content-Disposition")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Dishboard backend server starting...")

	if config.Cfg.SheetURL == "" {
		logger.L.Warn("SHEET_URL not configured; dashboard will stay empty until a sheet is fetched or a CSV is uploaded")
	} else if !sheets.IsValidSheetURL(config.Cfg.SheetURL) {
		logger.L.Warn("SHEET_URL does not look like a Google Sheets URL or document ID", "sheetURL", config.Cfg.SheetURL)
	}

	logger.L.Info("Initializing record cache...")
	recordCache := cache.New(cache.NoExpiration, config.Cfg.CacheCleanupInterval)

	logger.L.Info("Initializing services and handlers...")
	csvParser := parsers.NewCSVParser()
	sheetClient := sheets.NewClient(config.Cfg.FetchTimeout)

	metricsProcessor := processors.NewMetricsProcessor()
	trendProcessor := processors.NewTrendProcessor()
	itemProcessor := processors.NewItemRankingProcessor()
	categoryProcessor := processors.NewCategoryProcessor()
	hourlyProcessor := processors.NewHourlyProcessor()
	insightProcessor := processors.NewInsightProcessor()
	reportProcessor := processors.NewReportProcessor(
		metricsProcessor, itemProcessor, categoryProcessor, hourlyProcessor,
	)

	dashboardService := services.NewDashboardService(
		config.Cfg.SheetURL, sheetClient, csvParser,
		metricsProcessor, trendProcessor, itemProcessor,
		categoryProcessor, hourlyProcessor, insightProcessor,
		reportProcessor, recordCache,
	)
	entryService := services.NewEntryService(config.Cfg.ScriptURL, sheetClient)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(dashboardService)
	sheetHandler := handlers.NewSheetHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(dashboardService)
	entryHandler := handlers.NewEntryHandler(entryService)
	exportHandler := handlers.NewExportHandler(dashboardService)

	if config.Cfg.SheetURL != "" {
		logger.L.Info("Warming up from cache and sheet...")
		dashboardService.WarmUp(context.Background())
	}

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("GET /api/dashboard", dashboardHandler.HandleGetDashboard)
	apiRouter.HandleFunc("GET /api/categories", dashboardHandler.HandleGetCategories)
	apiRouter.HandleFunc("GET /api/report", reportHandler.HandleGetReport)
	apiRouter.HandleFunc("GET /api/export", exportHandler.HandleExportCSV)
	apiRouter.HandleFunc("POST /api/refresh", sheetHandler.HandleRefresh)
	apiRouter.HandleFunc("POST /api/upload", uploadHandler.HandleUpload)
	apiRouter.HandleFunc("POST /api/entries", entryHandler.HandleSubmitEntry)

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Dishboard backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	limiter := rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)
	finalHandler := enableCORS(config.Cfg.AllowedOrigins, rateLimitMiddleware(limiter, rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
