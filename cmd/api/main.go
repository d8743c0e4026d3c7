package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"

	"kejani_backend/internal/controller"
	"kejani_backend/internal/middleware"
	"kejani_backend/internal/model"
	"kejani_backend/internal/repository"
	"kejani_backend/pkg/cache"
	"kejani_backend/pkg/config"
	"kejani_backend/pkg/cron"
	"kejani_backend/pkg/database"
	"kejani_backend/pkg/seed"
	"kejani_backend/pkg/utils/jwt"
	"kejani_backend/pkg/utils/storage"
)

func setupRoutes(app *fiber.App, ctrl *controllers) {
	api := app.Group("/api")

	// Public sample listing (in-memory, no DB)
	api.Get("/sample/properties", ctrl.sample.List)

	// Public Property Routes
	properties := api.Group("/properties")
	properties.Get("/", middleware.OptionalAuth(), ctrl.property.List)
	properties.Get("/:id", ctrl.property.Get)
	properties.Get("/:id/stats", ctrl.stats.GetStats)
	properties.Post("/:id/view", middleware.OptionalAuth(), ctrl.stats.RecordView)

	// Protected Property Routes
	protected := api.Group("/properties", middleware.AuthMiddleware())
	protected.Post("/", ctrl.property.Create)
	protected.Put("/:id", ctrl.property.Update)
	protected.Delete("/:id", ctrl.property.Delete)
	protected.Post("/:id/images", ctrl.property.UploadImage)
	protected.Post("/:id/favorite", ctrl.favorite.Toggle)
	protected.Get("/:id/favorited", ctrl.favorite.IsFavorited)

	api.Get("/favorites", middleware.AuthMiddleware(), ctrl.favorite.ListIDs)

	// Settings routes
	settings := api.Group("/settings", middleware.AuthMiddleware())
	settings.Get("/profile", ctrl.profile.Get)
	settings.Put("/profile", ctrl.profile.Update)
	settings.Post("/avatar", ctrl.profile.UploadAvatar)
}

type controllers struct {
	property *controller.PropertyController
	favorite *controller.FavoriteController
	profile  *controller.ProfileController
	stats    *controller.StatsController
	sample   *controller.SampleController
}

func main() {
	cfg := config.Load()
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	jwt.Init(cfg.JWT.Secret)

	if cfg.Database.URL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}

	if err := database.Migrate(db,
		&model.Property{},
		&model.PropertyImage{},
		&model.Profile{},
		&model.Favorite{},
		&model.PropertyView{},
		&model.PropertyStats{},
	); err != nil {
		log.Warn().Err(err).Msg("migration warning")
	}

	ctx := context.Background()

	store, err := storage.NewS3Storage(ctx, storage.Config{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize object storage")
	}
	if err := store.EnsureBuckets(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure storage buckets")
	}

	var cacheStore cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		cacheStore = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	propertyRepo := repository.NewPropertyRepository(db, store, cacheStore, log)
	profileRepo := repository.NewProfileRepository(db, store, log)

	cron.InitPropertyStatsCron(db, log)

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		seed.SeedSampleProperties(db)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, &controllers{
		property: controller.NewPropertyController(propertyRepo),
		favorite: controller.NewFavoriteController(propertyRepo),
		profile:  controller.NewProfileController(profileRepo),
		stats:    controller.NewStatsController(db),
		sample:   controller.NewSampleController(),
	})

	log.Info().Str("port", cfg.Server.Port).Msg("server is running")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
