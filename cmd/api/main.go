// hostpicks-backend API server.
//
// Admin and site API for the HostPicks bilingual affiliate content
// platform: content records with version history, page templates,
// SEO generation, media library and traffic analytics.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/hostpicks/hostpicks-backend/internal/config"
	"github.com/hostpicks/hostpicks-backend/internal/handler"
	"github.com/hostpicks/hostpicks-backend/internal/middleware"
	"github.com/hostpicks/hostpicks-backend/internal/migration"
	"github.com/hostpicks/hostpicks-backend/internal/repository"
	"github.com/hostpicks/hostpicks-backend/internal/routes"
	"github.com/hostpicks/hostpicks-backend/internal/service"
	"github.com/hostpicks/hostpicks-backend/pkg/analytics"
	pkgcache "github.com/hostpicks/hostpicks-backend/pkg/cache"
	pkges "github.com/hostpicks/hostpicks-backend/pkg/elasticsearch"
	"github.com/hostpicks/hostpicks-backend/pkg/jwt"
	pkglogger "github.com/hostpicks/hostpicks-backend/pkg/logger"
	pkgredis "github.com/hostpicks/hostpicks-backend/pkg/redis"
	pkgstorage "github.com/hostpicks/hostpicks-backend/pkg/storage"
)

// @title           HostPicks Backend API
// @version         1.0
// @description     Bilingual affiliate CMS backend
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	log := pkglogger.GetLogger()
	log.Info().Str("env", env).Strs("dotenv", dotenvFiles).Msg("starting")

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("failed to load config")
	}

	// MySQL
	db, err := initDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Msg("connected to MySQL")
	if err := migration.Run(db); err != nil {
		log.Warn().Err(err).Msg("migration warning")
	}
	if err := migration.SeedSEORules(db); err != nil {
		log.Warn().Err(err).Msg("SEO rule seeding warning")
	}
	if err := migration.SeedAdminUser(db, os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Warn().Err(err).Msg("admin seeding warning")
	}

	// Redis (optional; cache degrades to pass-through without it)
	redisClient := initRedis(cfg)
	cacheService := pkgcache.NewService(redisClient)

	// Elasticsearch (optional; search falls back to SQL LIKE)
	var esClient *pkges.Client
	if cfg.Elasticsearch.Enabled && len(cfg.Elasticsearch.Addresses) > 0 {
		esClient, err = pkges.NewClient(cfg.Elasticsearch.Addresses, cfg.Elasticsearch.Username, cfg.Elasticsearch.Password)
		if err != nil {
			log.Warn().Err(err).Msg("Elasticsearch connection failed (continuing without ES)")
			esClient = nil
		} else if err := esClient.EnsureContentIndex(context.Background()); err != nil {
			log.Warn().Err(err).Msg("content index setup failed")
		}
	}

	// S3-compatible storage (optional; media uploads rejected without it)
	var s3Client *pkgstorage.S3Client
	if cfg.Storage.Enabled && cfg.Storage.Bucket != "" {
		s3Client, err = pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if err != nil {
			log.Warn().Err(err).Msg("S3 storage init failed (continuing without S3)")
			s3Client = nil
		}
	}

	// ClickHouse analytics (optional; tracking becomes a no-op)
	var chClient *analytics.Client
	if cfg.Analytics.Enabled && cfg.Analytics.Host != "" {
		chClient, err = analytics.NewClient(analytics.Config{
			Host:     cfg.Analytics.Host,
			Port:     cfg.Analytics.Port,
			Database: cfg.Analytics.Database,
			User:     cfg.Analytics.User,
			Password: cfg.Analytics.Password,
		})
		if err != nil {
			log.Warn().Err(err).Msg("ClickHouse connection failed (continuing without analytics)")
			chClient = nil
		} else if err := chClient.EnsureSchema(context.Background()); err != nil {
			log.Warn().Err(err).Msg("analytics schema setup failed")
		}
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.RefreshIn)

	// Repositories
	contentRepo := repository.NewContentRepository(db)
	versionRepo := repository.NewVersionRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	instanceRepo := repository.NewInstanceRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	userRepo := repository.NewUserRepository(db)
	seoRuleRepo := repository.NewSEORuleRepository(db)

	// Services
	versionService := service.NewVersionService(versionRepo, contentRepo)
	indexer := service.NewESIndexer(esClient)
	contentService := service.NewContentService(contentRepo, versionService, cacheService, indexer)
	templateService := service.NewTemplateService(templateRepo, instanceRepo, contentRepo, versionService,
		cacheService, service.TemplateServiceConfig{AllowRematerialize: cfg.Templates.AllowRematerialize})
	seoService := service.NewSEOService(seoRuleRepo, cacheService, cfg.SEO.CanonicalBase)
	taxonomyService := service.NewTaxonomyService(categoryRepo, tagRepo)
	mediaService := service.NewMediaService(mediaRepo, s3Client)
	authService := service.NewAuthService(userRepo, jwtManager)

	// Router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     splitAndTrim(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.InputSanitizer())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		cacheStatus := "disabled"
		if cacheService.IsAvailable() {
			cacheStatus = "ok"
			if err := cacheService.Ping(c.Request.Context()); err != nil {
				cacheStatus = "down"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"cache":   cacheStatus,
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(router, &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Content:   handler.NewContentHandler(contentService),
		Template:  handler.NewTemplateHandler(templateService),
		Version:   handler.NewVersionHandler(versionService),
		SEO:       handler.NewSEOHandler(seoService),
		Taxonomy:  handler.NewTaxonomyHandler(taxonomyService),
		Media:     handler.NewMediaHandler(mediaService),
		Analytics: handler.NewAnalyticsHandler(chClient),
	}, jwtManager)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg, err := mysqldriver.ParseDSN(cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	db, err := gorm.Open(mysql.Open(mysqlCfg.FormatDSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	client, err := pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err != nil {
		pkglogger.GetLogger().Warn().Err(err).Msg("Redis connection failed (continuing without cache)")
		return nil
	}
	pkglogger.GetLogger().Info().Msg("connected to Redis")
	return client
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
