package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/notedir/internal/cli"
	"github.com/alexanderramin/notedir/internal/config"
	"github.com/alexanderramin/notedir/internal/db"
	"github.com/alexanderramin/notedir/internal/httpapi"
	"github.com/alexanderramin/notedir/internal/repository"
	"github.com/alexanderramin/notedir/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger := newLogger(cfg)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	noteRepo := repository.NewSQLiteNoteRepo(database)
	tagRepo := repository.NewSQLiteTagRepo(database)
	itemRepo := repository.NewSQLiteActionItemRepo(database)

	// Wire unit of work for transactional extraction
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLogUseCaseObserver(logger)

	api := &httpapi.API{
		Notes:       service.NewNoteService(noteRepo, observer),
		ActionItems: service.NewActionItemService(itemRepo),
		Tags:        service.NewTagService(tagRepo, noteRepo),
		Extraction:  service.NewExtractionService(noteRepo, uow, observer),
		Logger:      logger,
	}

	rootCmd := cli.NewRootCmd(&cli.App{API: api, Config: cfg})
	return rootCmd.Execute()
}

// newLogger builds the process logger: console output when stderr is an
// interactive terminal and the config asks for it, JSON otherwise.
func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	useConsole := cfg.LogFormat == "console" &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
	if useConsole {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
