// Comando migrate: aplica las migraciones SQL embebidas contra la base de
// datos configurada y termina. Útil en despliegues donde la API corre con un
// usuario de DB sin privilegios de DDL.
package main

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if err := postgres.Migrate(context.Background(), cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")
}
