// seed carga un fixture YAML de planta (secciones, actores, permisos, clientes,
// pedidos y órdenes de trabajo) en el almacén configurado e imprime un token
// JWT de desarrollo por actor.
//
// Uso: go run ./cmd/seed [ruta/fixture.yaml]
// Por defecto lee cmd/seed/testdata/planta.yaml. Usa DB_DRIVER, SQLITE_PATH, DATABASE_URL y JWT_SECRET.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/jwt"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

func main() {
	path := "cmd/seed/testdata/planta.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("abrir fixture")
	}
	defer f.Close()
	fx, err := parseFixture(f)
	if err != nil {
		log.Fatal().Err(err).Msg("fixture inválido")
	}

	ctx := context.Background()
	var target repos
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir sqlite")
		}
		defer store.Close()
		db := store.DB()
		target = repos{
			sections:    sqlite.NewSectionRepository(db),
			actors:      sqlite.NewActorRepository(db),
			permissions: sqlite.NewPermissionRepository(db),
			customers:   sqlite.NewCustomerRepository(db),
			orders:      sqlite.NewOrderRepository(db),
			jobOrders:   sqlite.NewJobOrderRepository(db),
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migrar esquema")
		}
		target = repos{
			sections:    postgres.NewSectionRepository(pool),
			actors:      postgres.NewActorRepository(pool),
			permissions: postgres.NewPermissionRepository(pool),
			customers:   postgres.NewCustomerRepository(pool),
			orders:      postgres.NewOrderRepository(pool),
			jobOrders:   postgres.NewJobOrderRepository(pool),
		}
	}

	if err := fx.load(ctx, target, time.Now()); err != nil {
		log.Fatal().Err(err).Msg("cargar fixture")
	}
	log.Info().
		Int("actors", len(fx.Actors)).
		Int("job_orders", len(fx.JobOrders)).
		Msg("fixture cargado")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: no se generan tokens")
		return
	}
	for _, a := range fx.Actors {
		token, err := jwt.Generate(cfg.JWT.Secret, a.ID, a.Role, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			log.Fatal().Err(err).Str("actor_id", a.ID).Msg("generar token")
		}
		fmt.Printf("%-12s %-14s %s\n", a.ID, a.Role, token)
	}
}
