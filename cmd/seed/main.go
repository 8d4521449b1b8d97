// Comando de siembra: restaura el directorio de datos al dataset inicial de
// demostración (clientes, catálogo, facturas, perfil y usuario local).
package main

import (
	"github.com/facturapro/facturapro-api/internal/infrastructure/localstore"
	"github.com/facturapro/facturapro-api/pkg/config"
	"github.com/facturapro/facturapro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	store, err := localstore.Open(cfg.Storage.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	if err := store.Reset(); err != nil {
		log.Fatal().Err(err).Msg("restaurar dataset inicial")
	}

	log.Info().
		Str("data_dir", cfg.Storage.DataDir).
		Str("email", localstore.SeedUserEmail).
		Str("password", localstore.SeedUserPassword).
		Msg("dataset inicial restaurado; credenciales de acceso")
}
