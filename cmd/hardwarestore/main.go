package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/hardware-store/internal/application/inventory"
	"github.com/jhoicas/hardware-store/internal/domain/repository"
	"github.com/jhoicas/hardware-store/internal/infrastructure/filestore"
	infrapdf "github.com/jhoicas/hardware-store/internal/infrastructure/pdf"
	"github.com/jhoicas/hardware-store/internal/infrastructure/postgres"
	"github.com/jhoicas/hardware-store/internal/interfaces/console"
	"github.com/jhoicas/hardware-store/pkg/config"
	"github.com/jhoicas/hardware-store/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	term := console.NewTerminal(os.Stdin, os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración: "+err.Error())
		return 1
	}

	log, err := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err != nil {
		term.Show("No se pudo abrir el archivo de log; se continúa sin registro.")
	}
	defer func() { _ = log.Close() }()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("abrir persistencia")
		term.Show("No se pudo abrir la base de datos: " + err.Error())
		return 1
	}
	defer closeRepo()

	store, err := loadStore(ctx, repo, log, term)
	if err != nil {
		term.Show("No se inicia la sesión para no sobrescribir la base de datos: " + err.Error())
		return 1
	}

	// Ctrl+C no espera a la lectura bloqueada de la consola.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-quit
		log.Warn().Str("signal", sig.String()).Bool("unsaved", store.Dirty()).Msg("interrupción recibida, saliendo")
		closeRepo()
		_ = log.Close()
		os.Exit(130)
	}()

	app := console.NewApp(console.AppDeps{
		Store:     store,
		Repo:      repo,
		Reports:   infrapdf.NewMarotoPDFGenerator(),
		In:        term,
		Out:       term,
		Log:       log,
		StoreName: cfg.App.Name,
		ReportDir: cfg.Report.Dir,
	})
	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("sesión terminada con error")
		return 1
	}
	return 0
}

// openRepository elige el backend configurado. El cierre devuelto libera el pool cuando aplica.
func openRepository(ctx context.Context, cfg *config.Config) (repository.DatabaseRepository, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewDatabaseRepository(pool, postgres.NewTxRunner(pool)), pool.Close, nil
	default:
		return filestore.NewDatabaseRepository(cfg.Store.Path), func() {}, nil
	}
}

// loadStore carga la base guardada. Si se rechaza, la aparta con repository.Quarantiner y arranca con la
// tienda vacía. Si no se puede apartar devuelve error: el primer guardado la sobrescribiría.
func loadStore(ctx context.Context, repo repository.DatabaseRepository, log *logger.Logger, out console.Output) (*inventory.Store, error) {
	snap, err := repo.Load(ctx)
	if err == nil {
		store, verr := inventory.NewStore(snap, log)
		if verr == nil {
			log.Info().
				Int("items", store.ItemCount()).
				Int("users", len(snap.Users)).
				Int("transactions", len(snap.Transactions)).
				Msg("base de datos cargada")
			return store, nil
		}
		log.Error().Err(verr).Msg("base de datos inválida")
		out.Show("La base de datos guardada es inválida.")
		err = verr
	} else {
		log.Error().Err(err).Msg("cargar base de datos")
		out.Show("No se pudo cargar la base de datos.")
	}

	q, ok := repo.(repository.Quarantiner)
	if !ok {
		return nil, fmt.Errorf("la base de datos no se puede apartar: %w", err)
	}
	where, qerr := q.Quarantine(ctx)
	if qerr != nil {
		log.Error().Err(qerr).Msg("apartar base de datos")
		return nil, fmt.Errorf("%w (al apartarla: %v)", err, qerr)
	}
	log.Warn().Str("quarantine", where).Msg("base de datos apartada")
	out.Show("Se movió a " + where + " y se inicia con la tienda vacía.")
	return inventory.NewStore(nil, log)
}
