package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/1Deeeeyl/multiple-activities/internal/config"
	"github.com/1Deeeeyl/multiple-activities/internal/database"
	"github.com/1Deeeeyl/multiple-activities/internal/middleware"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/account"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/auth"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/drive"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/food"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/markdown"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/pokemon"
	"github.com/1Deeeeyl/multiple-activities/internal/modules/todo"
	jwtsvc "github.com/1Deeeeyl/multiple-activities/internal/pkg/jwt"
	"github.com/1Deeeeyl/multiple-activities/internal/pokeapi"
	"github.com/1Deeeeyl/multiple-activities/internal/realtime"
	"github.com/1Deeeeyl/multiple-activities/internal/repository"
	"github.com/1Deeeeyl/multiple-activities/internal/storage"
)

func main() {
	// Missing .env is fine in containers; config comes from real env there.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store, err := newObjectStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	markdownRepo := repository.NewMarkdownRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	foodReviewRepo := repository.NewFoodReviewRepository(db)
	pokemonReviewRepo := repository.NewPokemonReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := realtime.NewHub()
	pokeClient := pokeapi.NewClient(cfg.PokeAPIBase)

	authHandler := auth.NewHandler(auth.NewService(userRepo, profileRepo, j))
	todoHandler := todo.NewHandler(todo.NewService(todoRepo, hub))
	markdownHandler := markdown.NewHandler(markdown.NewService(markdownRepo, hub))
	foodHandler := food.NewHandler(food.NewService(foodRepo, foodReviewRepo, profileRepo, store, cfg.FoodBucket, hub))
	driveHandler := drive.NewHandler(drive.NewService(store, cfg.DriveBucket, hub))
	pokemonHandler := pokemon.NewHandler(pokemon.NewService(pokeClient, pokemonReviewRepo, profileRepo, hub))
	accountHandler := account.NewHandler(account.NewService(
		store,
		[]string{cfg.DriveBucket, cfg.FoodBucket},
		todoRepo, pokemonReviewRepo, markdownRepo, foodReviewRepo, foodRepo,
		profileRepo, userRepo,
	))
	realtimeHandler := realtime.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1, nil)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterRoutes(nil, protected)
			todoHandler.RegisterRoutes(protected)
			markdownHandler.RegisterRoutes(protected)
			foodHandler.RegisterRoutes(protected)
			driveHandler.RegisterRoutes(protected)
			pokemonHandler.RegisterRoutes(protected)
			accountHandler.RegisterRoutes(protected)
			realtimeHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// newObjectStore prefers a real S3-compatible backend; without one the app
// still runs on the in-process store so local development needs no MinIO.
func newObjectStore(cfg *config.Config) (storage.ObjectStore, error) {
	if cfg.S3Endpoint == "" {
		log.Println("S3_ENDPOINT not set, using in-memory object store")
		return storage.NewMemory(), nil
	}
	return storage.NewS3Store(context.Background(), storage.S3Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
}
