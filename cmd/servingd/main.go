package main

import (
	"context"
	"flag"
	"log/slog"
	"path"

	"github.com/vineetp6/serving/internal/config"
	"github.com/vineetp6/serving/internal/env"
	"github.com/vineetp6/serving/internal/logger"
	"github.com/vineetp6/serving/internal/runtime"
	"github.com/vineetp6/serving/internal/servable"
	"github.com/vineetp6/serving/internal/threadpool"
)

func main() {
	var (
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "serving.v1.schema.json"), "Path to schema file")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile(config.DefaultLogFile()),
		),
	)

	loaders := runtime.NewRegistry()
	factory := threadpool.NewDynamicFactory(0, 0)
	manager := servable.NewManager(loaders, factory)

	watcher, err := config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		factory.Resize(cfg.ThreadPools.InterOpParallelism, cfg.ThreadPools.IntraOpParallelism)

		if err := manager.LoadServablesFromConfig(context.Background(), cfg); err != nil {
			slog.Error("Failed to load servables from config", "error", err)
			return
		}
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		return
	}

	cfg := watcher.Snapshot()
	factory.Resize(cfg.ThreadPools.InterOpParallelism, cfg.ThreadPools.IntraOpParallelism)

	if err := manager.LoadServablesFromConfig(context.Background(), cfg); err != nil {
		slog.Error("Failed to load servables from config", "error", err)
		return
	}

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	select {}
}
