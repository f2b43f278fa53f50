package main

import (
	"os"

	"github.com/treinamento/produtos-service/internal/app"
	config "github.com/treinamento/produtos-service/internal/cfg"
	"github.com/treinamento/produtos-service/pkg/logger"
)

//	@title			Produtos Service API
//	@version		1.0
//	@description	Cadastro de produtos e categorias com regra de tributação.
//	@BasePath		/
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
