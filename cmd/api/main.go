// @title        Produccion API
// @version      1.0
// @description  Flujo de rollos: extrusión, impresión, corte y conciliación contra órdenes de trabajo.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Produccion-api/docs"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/sqlite"
	infraxlsx "github.com/jhoicas/Produccion-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// storage repositorios y TxRunner del driver elegido.
type storage struct {
	rolls       repository.RollRepository
	jobOrders   repository.JobOrderRepository
	orders      repository.OrderRepository
	actors      repository.ActorRepository
	permissions repository.PermissionRepository
	tx          production.TxRunner
	close       func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == config.DriverSQLite {
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLite.Path).Msg("almacén SQLite embebido")
		db := store.DB()
		return &storage{
			rolls:       sqlite.NewRollRepository(db),
			jobOrders:   sqlite.NewJobOrderRepository(db),
			orders:      sqlite.NewOrderRepository(db),
			actors:      sqlite.NewActorRepository(db),
			permissions: sqlite.NewPermissionRepository(db),
			tx:          sqlite.NewTxRunner(db),
			close:       func() { _ = store.Close() },
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("esquema PostgreSQL aplicado")
	}
	return &storage{
		rolls:       postgres.NewRollRepository(pool),
		jobOrders:   postgres.NewJobOrderRepository(pool),
		orders:      postgres.NewOrderRepository(pool),
		actors:      postgres.NewActorRepository(pool),
		permissions: postgres.NewPermissionRepository(pool),
		tx:          postgres.NewTxRunner(pool),
		close:       pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer store.close()

	accessSvc := usecase.NewAccessService(store.actors, store.permissions)
	createRollUC := production.NewCreateRollUseCase(store.tx, accessSvc, store.actors, log.Component("create_roll"))
	advanceRollUC := production.NewAdvanceRollUseCase(store.tx, store.rolls, accessSvc, log.Component("advance_roll"))
	workflowUC := production.NewWorkflowViewUseCase(store.rolls, store.jobOrders, store.orders, accessSvc)
	queries := production.NewQueryService(store.rolls, store.jobOrders, store.orders, accessSvc)
	documents := production.NewDocumentService(queries, infrapdf.NewRollLabelGenerator(), infraxlsx.NewRollSheetExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Produccion API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "db_driver": cfg.DB.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateRoll:   createRollUC,
		AdvanceRoll:  advanceRollUC,
		WorkflowView: workflowUC,
		Queries:      queries,
		Documents:    documents,
		Access:       accessSvc,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
