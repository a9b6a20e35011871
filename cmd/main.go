package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horizons/internal/clients"
	"horizons/internal/config"
	"horizons/internal/handlers"
	"horizons/internal/middleware"
	"horizons/internal/naif"
	"horizons/internal/service"
	"horizons/internal/worker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.Log.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
		}
		defer rotator.Close()

		out := io.MultiWriter(os.Stdout, rotator)
		log.SetOutput(out)
		gin.DefaultWriter = out
		gin.DefaultErrorWriter = out
	}

	log.Println("=== Horizons Ephemeris Backend Starting ===")

	designators, err := naif.Default()
	if err != nil {
		log.Fatal("Failed to load designator table:", err)
	}
	log.Printf("Loaded %d body designators", designators.Len())

	horizonsClient := clients.NewHorizonsClient(cfg.HorizonsClientConfig())

	ephemerisService := service.NewEphemerisService(designators, horizonsClient, cfg.QueryDefaults())
	statusService := service.NewStatusService(horizonsClient)

	scheduler := worker.NewScheduler()
	if cfg.Workers.ProbeEnabled {
		scheduler.AddWorker(worker.NewProbeWorker(statusService, cfg.Workers.ProbeInterval))
		log.Printf("Probe Worker enabled (interval: %v)", cfg.Workers.ProbeInterval)
	}

	scheduler.Start(context.Background())
	defer scheduler.Stop()

	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting (production only)
	if !cfg.App.Debug {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(middleware.RateLimitMiddleware(limiter))
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

		ipLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond)/2, cfg.RateLimit.Burst/2+1)
		r.Use(middleware.IPRateLimitMiddleware(ipLimiter))
	}

	api := r.Group("/api/v1")
	handlers.RegisterRoutes(api,
		handlers.NewEphemerisHandler(ephemerisService),
		handlers.NewNAIFHandler(ephemerisService),
		handlers.NewHealthHandler(statusService),
	)

	if cfg.App.Debug {
		api.POST("/refresh/probe", func(c *gin.Context) {
			if err := statusService.Check(c.Request.Context()); err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Horizons reachable", "status": statusService.Last()})
		})
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:        ":" + cfg.App.Port,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// an ephemeris request waits on Horizons
		WriteTimeout: cfg.Horizons.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.App.Port)
		log.Printf("API available at http://localhost:%s/api/v1", cfg.App.Port)
		log.Printf("Health check: http://localhost:%s/api/v1/health", cfg.App.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited properly")
}
