package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/iudanet/shiftsync/internal/client/api"
	"github.com/iudanet/shiftsync/internal/client/cli"
	"github.com/iudanet/shiftsync/internal/client/iocli"
	"github.com/iudanet/shiftsync/internal/client/storage"
	"github.com/iudanet/shiftsync/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/shiftsync/internal/client/sync"
	"github.com/iudanet/shiftsync/internal/client/tasks"
	"github.com/iudanet/shiftsync/internal/crdt"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "shiftsync-client.db", "Path to local database")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	ctx := context.Background()

	// Служебные логи клиента по умолчанию скрыты, вывод делает CLI
	logOut := io.Discard
	if *verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close database: %v\n", err)
		}
	}()

	// Идентичность узла создается при первом запуске и дальше
	// живет в локальной базе
	clock, err := loadOrCreateClock(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load node identity: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(*serverURL, clock.NodeID())
	taskService := tasks.NewService(clock, boltStorage, boltStorage, boltStorage)
	syncService := syncsvc.NewService(apiClient, clock, boltStorage, boltStorage, boltStorage, logger)

	c := cli.New(iocli.NewStdio(), taskService, syncService)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadOrCreateClock(ctx context.Context, store *boltdb.Storage) (*crdt.Clock, error) {
	vc, err := store.GetClock(ctx)
	switch {
	case err == nil:
		return crdt.RestoreClock(vc), nil
	case errors.Is(err, storage.ErrNotInitialized):
	default:
		return nil, err
	}

	clock := crdt.NewClockWithNodeID(uuid.NewString())
	if err := store.SaveClock(ctx, clock.Current()); err != nil {
		return nil, err
	}
	return clock, nil
}

func printVersion() {
	fmt.Printf("ShiftSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
