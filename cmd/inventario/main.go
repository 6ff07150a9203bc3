package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/jhoicas/inventario/internal/application/usecase"
	"github.com/jhoicas/inventario/internal/domain/repository"
	infrapdf "github.com/jhoicas/inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario/internal/interfaces/console"
	"github.com/jhoicas/inventario/pkg/config"
	"github.com/jhoicas/inventario/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run arma la aplicación y devuelve el código de salida; los defer cierran el almacén y el log antes de salir.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración: "+err.Error())
		return 1
	}

	base := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer base.Close()
	log := base.WithStr("session_id", uuid.NewString())
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	productRepo, err := openProductRepository(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DB.Driver).Msg("abrir almacén de productos")
		fmt.Fprintln(os.Stderr, "No se pudo abrir la base de datos: "+err.Error())
		return 1
	}
	defer productRepo.Close()

	productUC := usecase.NewProductUseCase(productRepo)
	reportUC := usecase.NewReportUseCase(infrapdf.NewMarotoReportGenerator(), cfg.Report.Dir)

	style := console.NewStyle(colorEnabled(cfg.UI.Color))
	prompter := console.NewPrompter(os.Stdin, colorable.NewColorable(os.Stdout), style)
	handler := console.NewProductHandler(productUC, reportUC, prompter, console.GridRenderer{}, log)
	menu := console.NewMenu(productUC, handler, prompter, log)

	if err := menu.Run(ctx); err != nil {
		log.Error().Err(err).Msg("menú principal")
		return 1
	}
	log.Info().Msg("aplicación finalizada")
	return 0
}

// openProductRepository abre el almacén según DB_DRIVER y crea la tabla si no existe.
func openProductRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.ProductRepository, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return postgres.NewProductRepository(pool), nil
	default:
		db, err := sqlite.Open(ctx, cfg.DB.Path, log)
		if err != nil {
			return nil, err
		}
		return sqlite.NewProductRepository(db), nil
	}
}

func colorEnabled(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
