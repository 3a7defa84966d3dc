package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/exchangeops/filecheck/internal/config"
	"github.com/exchangeops/filecheck/internal/contract"
	"github.com/exchangeops/filecheck/internal/core"
	"github.com/exchangeops/filecheck/internal/logging"
	"github.com/joho/godotenv"
)

// Exit codes by failure kind, so orchestrators can branch without parsing
// error text.
const (
	exitOK        = 0
	exitError     = 1
	exitConfig    = 2
	exitFormat    = 3
	exitStructure = 4
	exitRowType   = 5
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return exitError
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	var (
		filePath   = flag.String("file", "", "path of the delimited file to validate (required)")
		partner    = flag.String("partner", "", "partner identifier in the configuration store (required)")
		fileKey    = flag.String("key", contract.DefaultFileKey, "file key selecting the partner's contract")
		sampleSize = flag.Int("sample", cfg.Validation.SampleSize, "number of data rows to type-check")
		configPath = flag.String("config", cfg.Validation.ConfigPath, "path of the partner configuration store")
	)
	flag.Parse()

	if *filePath == "" || *partner == "" {
		fmt.Fprintln(os.Stderr, "usage: filecheck -file <path> -partner <id> [-key <file key>] [-sample <n>] [-config <path>]")
		flag.PrintDefaults()
		return exitError
	}

	store, err := contract.LoadStore(*configPath)
	if err != nil {
		slog.Error("failed to load partner configuration", "path", *configPath, "error", err)
		return exitConfig
	}

	log := logging.WithFields(
		"partner", *partner,
		"file_key", *fileKey,
	)
	log.Debug("store loaded", "path", *configPath, "partners", store.Partners())

	engine := core.NewEngine(log)
	result, err := engine.ValidateFile(context.Background(), store, core.Request{
		Path:       *filePath,
		Partner:    *partner,
		FileKey:    *fileKey,
		SampleSize: *sampleSize,
	})
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			log.Error("validation failed", "kind", verr.Kind.String(), "error", verr)
			return exitCode(verr.Kind)
		}
		log.Error("validation aborted", "error", err)
		return exitError
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Error("failed to encode result", "error", err)
		return exitError
	}
	fmt.Println(string(out))
	return exitOK
}

func exitCode(k core.Kind) int {
	switch k {
	case core.KindConfig:
		return exitConfig
	case core.KindFormat:
		return exitFormat
	case core.KindStructure:
		return exitStructure
	case core.KindRowType:
		return exitRowType
	default:
		return exitError
	}
}
