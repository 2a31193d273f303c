package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"inventory-sync/core/config"
	"inventory-sync/core/loader"
	"inventory-sync/core/logger"
	"inventory-sync/core/metrics"
	"inventory-sync/core/middleware/auth"
	"inventory-sync/core/middleware/rayid"
	"inventory-sync/core/reconcile"
	"inventory-sync/core/schema"
	"inventory-sync/feature/images"
	"inventory-sync/feature/integrity"
	"inventory-sync/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-sync/docs/swagger"
)

// @title Inventory Sync API
// @version 1.0
// @description Image lifecycle, entity mutation and integrity endpoints of the inventory sync service.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"start"},
	Short:   "Start the HTTP server",
	Long:    `Starts the HTTP server and initializes the images, inventory and integrity features.`,
	RunE:    runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logg, err := bootstrap("serve", config.SectionServer, config.SectionDatabase, config.SectionAssets)
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	store, mgr, err := openAssets(cfg, logg)
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	scans := reconcile.NewCache(store, inventory.NewReferenceLoader(db), cfg.Reconcile.CacheTTL)
	hasher := schema.NewBcryptHasher(cfg.Import.BcryptCost)

	features := loader.NewManager()
	features.Register(integrity.NewFeature(db, store, cfg.Assets.Provider, logg))
	features.Register(images.NewFeature(images.NewService(mgr, store, scans, cfg.Assets, logg)))
	features.Register(inventory.NewFeature(db, mgr, hasher, scans, logg))

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})
	app.Use(metrics.HTTPMiddleware())

	// Public endpoints.
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, JWTSecret: cfg.Server.JWTSecret}))

	if err := features.LoadAll(app); err != nil {
		return err
	}

	go func() {
		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logg.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	logg.Info("Shutting down server...")
	return app.Shutdown()
}
