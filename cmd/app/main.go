package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/wichananm65/user-roster/internal/auth"
	"github.com/wichananm65/user-roster/internal/config"
	"github.com/wichananm65/user-roster/internal/seed"
	"github.com/wichananm65/user-roster/internal/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx := context.Background()

	var seeded []*user.User
	if cfg.SeedFile != "" {
		var err error
		seeded, err = seed.LoadFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("failed to load seed: %v", err)
		}
		log.Printf("loaded %d users from %s", len(seeded), cfg.SeedFile)
	}

	var repo user.Repository
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()

		pgRepo := user.NewPostgresRepository(db)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to prepare schema: %v", err)
		}
		for _, u := range seeded {
			if _, err := pgRepo.Create(ctx, u); err != nil && !errors.Is(err, user.ErrIDExists) {
				log.Fatalf("failed to seed user %d: %v", u.ID(), err)
			}
		}
		repo = pgRepo
	} else {
		log.Printf("DATABASE_URL is not set, using in-memory repository")
		repo = user.NewInMemoryRepository(seeded)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	setupCORS(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authenticator := auth.NewAuthenticator(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.TokenTTL)
	auth.NewHandler(authenticator).RegisterPublicRoutes(app)

	app.Use(authenticator.Middleware())

	userHandler := user.NewHandler(user.NewService(repo))
	userHandler.RegisterProtectedRoutes(app)

	go func() {
		log.Printf("starting server on %s", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}
