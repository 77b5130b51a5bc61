package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/connectedautocare/quoteapi/internal/pkg/cache"
	"github.com/connectedautocare/quoteapi/internal/pkg/env"
	"github.com/connectedautocare/quoteapi/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	cache.SetupCache()

	app := fiber.New(fiber.Config{
		AppName: "Quote API",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// browser clients hit the quote endpoints directly
	app.Use(cors.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "metrics"),
		},
	}), monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
