package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"coletas/internal/commons"
	"coletas/internal/config"
	"coletas/internal/console"
	"coletas/internal/dto"
	"coletas/internal/infrastructure/logger"
	"coletas/internal/orders"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (environment is used when omitted)")
	flag.Parse()

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = commons.LoadConfig(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	module := orders.NewModule(cfg, zapLogger)

	if cfg.Demo.Seed {
		seedDemoData(module, zapLogger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	con := console.New(os.Stdin, os.Stdout, module, cfg.Export.Dir, zapLogger)
	if err := con.Run(ctx); err != nil {
		zapLogger.Fatal("console error", zap.Error(err))
	}

	zapLogger.Info("stopped")
}

// seedDemoData inserts a sample record, handy when exploring the commands
// on an empty store.
func seedDemoData(module *orders.Module, zapLogger *zap.Logger) {
	_, err := module.Create.CreateRecord(dto.CreateRecordInput{
		Date:          "2025-09-10",
		Store:         "LOJA A",
		OrderNumber:   "122121",
		InvoiceNumber: "2000",
		ProductValue:  "299.90",
	})
	if err != nil {
		zapLogger.Warn("seeding demo data failed", zap.Error(err))
		return
	}
	zapLogger.Info("demo record seeded")
}
