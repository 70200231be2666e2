package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"github.com/stevancesar-beep/administrador-ventas-streaming/app/repository"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/database"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/env"
	"github.com/stevancesar-beep/administrador-ventas-streaming/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())

	// Money fields serialize as bare JSON numbers, the shape the UI and
	// API clients expect.
	decimal.MarshalJSONWithoutQuotes = true

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/streamadmin to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	engine.AddFunc("fecha", func(t time.Time) string {
		return t.Format("02/01/2006")
	})
	engine.AddFunc("fechaISO", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	engine.AddFunc("dinero", func(d decimal.Decimal) string {
		return d.StringFixed(2)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// ROUTER
	router.InstallRouter(app)

	return app
}
