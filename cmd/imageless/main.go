package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/imageless/imageless/internal/codec"
	"github.com/imageless/imageless/internal/config"
	"github.com/imageless/imageless/internal/operation"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		file        string
		out         string
		configPath  string
		describe    bool
		showVersion bool
	)
	flag.StringVar(&file, "file", "", "image file to process")
	flag.StringVar(&file, "f", "", "image file to process (shorthand)")
	flag.StringVar(&out, "out", "", "output file")
	flag.StringVar(&out, "o", "", "output file (shorthand)")
	flag.StringVar(&configPath, "config", "", "path to a processing config file (TOML)")
	flag.StringVar(&configPath, "c", "", "path to a processing config file (shorthand)")
	flag.BoolVar(&describe, "describe", false, "print a JSON description of the input image and exit")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("imageless %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	logger := zap.Must(zap.NewProduction()).Sugar()
	if os.Getenv("IMAGELESS_LOG_LEVEL") == "debug" {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}
	defer logger.Sync()

	if err := run(logger, file, out, configPath, describe); err != nil {
		logger.Fatalw("processing failed", "error", err)
	}
}

func run(logger *zap.SugaredLogger, file, out, configPath string, describe bool) error {
	if file == "" {
		return fmt.Errorf("no input file given (use -f)")
	}

	img, format, err := codec.Open(file)
	if err != nil {
		return err
	}

	if describe {
		desc := codec.Describe(img, format)
		data, err := json.MarshalIndent(desc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if out == "" {
		return fmt.Errorf("no output file given (use -o)")
	}
	if configPath == "" {
		return fmt.Errorf("no config file given (use -c)")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger.Infow("processing image",
		"file", file,
		"format", format,
		"operations", len(cfg.Operations),
		"output_format", cfg.Output.Format,
	)

	result, err := operation.NewPipeline(logger).Run(img, cfg.Operations)
	if err != nil {
		return err
	}

	return codec.Save(out, result, cfg.Output)
}
