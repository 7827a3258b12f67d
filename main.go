package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gsschool/backend/handlers"
	"github.com/gsschool/backend/internal/config"
	"github.com/gsschool/backend/internal/content"
	"github.com/gsschool/backend/internal/database"
	"github.com/gsschool/backend/internal/media"
	"github.com/gsschool/backend/internal/store"
	"github.com/gsschool/backend/pkg/logger"
	"github.com/gsschool/backend/pkg/metrics"
	"github.com/gsschool/backend/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: env=%s mongo=%v redis=%v minio=%v",
		cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	ctx := context.Background()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(middleware.DefaultAllowedOrigins))

	// Connect to Redis early so the rate limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global rate limiter keyed per client IP
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Document store: MongoDB when configured, JSON files on disk otherwise.
	var st store.Store
	if cfg.MongoDB.URI != "" {
		// retry with backoff to tolerate container startup races
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts, falling back to file storage: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			col := client.Database(cfg.MongoDB.Database).Collection("documents")
			st = store.NewMongoStore(col)
			logger.Infof("using MongoDB document storage (db=%s)", cfg.MongoDB.Database)
		}
	}
	if st == nil {
		fs, err := store.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			logger.Fatalf("failed to open data dir %s: %v", cfg.Storage.DataDir, err)
		}
		st = fs
		logger.Infof("using file document storage at %s", fs.Dir())
	}

	if err := content.Seed(ctx, st); err != nil {
		logger.Fatalf("failed to seed default content: %v", err)
	}

	// Uploads live on local disk; a MinIO mirror is kept when configured.
	var mirror *media.MinIOMirror
	if cfg.MinIO.Endpoint != "" {
		mirror, err = media.NewMinIOMirror(cfg.MinIO)
		if err != nil {
			logger.Warnf("MinIO mirror unavailable: %v", err)
			mirror = nil
		} else {
			logger.Infof("mirroring uploads to MinIO bucket %s", cfg.MinIO.Bucket)
		}
	}
	uploads, err := media.NewDiskStore(cfg.Storage.UploadsDir, mirror)
	if err != nil {
		logger.Fatalf("failed to open uploads dir %s: %v", cfg.Storage.UploadsDir, err)
	}

	svc := content.NewService(st, uploads)
	requireAuth := middleware.RequireAuth(cfg.Auth.JWTSecret, cfg.Auth.CookieName)

	handlers.NewAuthHandler(cfg).Register(r)
	handlers.NewContentHandler(svc).Register(r, requireAuth)
	handlers.NewNoticesHandler(svc).Register(r, requireAuth)
	handlers.NewGalleryHandler(svc, uploads).Register(r, requireAuth)
	handlers.NewUploadHandler(uploads).Register(r, requireAuth)
	handlers.NewHealthHandler(cfg, st, uploads, middleware.DefaultAllowedOrigins, startTime).Register(r)
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded media is served statically
	r.Static("/uploads", uploads.Dir())

	// Serve the built frontend when present; unknown non-API paths fall back
	// to index.html so client-side routing works on refresh.
	registerSPA(r, cfg.Storage.DistDir)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

func registerSPA(r *gin.Engine, distDir string) {
	index := filepath.Join(distDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		logger.Warnf("frontend build not found at %s, serving API only", distDir)
		r.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		})
		return
	}

	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/uploads/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		// serve real asset files directly, everything else gets the shell
		candidate := filepath.Join(distDir, filepath.Clean("/"+p))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		c.File(index)
	})
}
