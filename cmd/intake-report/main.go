package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ctk-report-generator/internal/config"
	"github.com/ctk-report-generator/internal/domain"
	"github.com/ctk-report-generator/internal/redcap"
	"github.com/ctk-report-generator/internal/service"
	"github.com/ctk-report-generator/pkg/docwrite"
)

func main() {
	csvPath := flag.String("csv", "", "path to the survey export CSV")
	identifier := flag.String("identifier", "", "survey identifier of the subject")
	outputPath := flag.String("output", "", "report output path (defaults to <output dir>/report-<identifier>.json)")
	flag.Parse()

	if *csvPath == "" || *identifier == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	logger := newLogger(configManager.GetLoggingConfig())

	if err := run(configManager, logger, *csvPath, *identifier, *outputPath); err != nil {
		logger.WithError(err).Fatal("Report generation failed")
	}
}

func run(configManager *config.Manager, logger *logrus.Logger, csvPath, identifier, outputPath string) error {
	timezone, err := configManager.Timezone()
	if err != nil {
		return err
	}

	csvFile, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening survey export: %w", err)
	}
	defer csvFile.Close()

	row, err := redcap.ReadSubjectRow(csvFile, identifier)
	if err != nil {
		return fmt.Errorf("reading subject row: %w", err)
	}

	intake, err := service.NewParser(timezone, logger).Parse(row)
	if err != nil {
		return fmt.Errorf("parsing intake record: %w", err)
	}

	templates := configManager.GetTemplatesConfig()
	cache, err := docwrite.NewTemplateCache(templates.CacheSize)
	if err != nil {
		return fmt.Errorf("creating template cache: %w", err)
	}

	report, err := cache.Get(templates.Report)
	if err != nil {
		return fmt.Errorf("loading report template: %w", err)
	}

	var closing *docwrite.Document
	if templates.Closing != "" {
		closing, err = cache.Get(templates.Closing)
		if err != nil {
			return fmt.Errorf("loading closing statement: %w", err)
		}
	}

	writer, err := service.NewReportWriter(intake, report, closing, templates.SignatureDir, logger)
	if err != nil {
		return err
	}
	if err := writer.Transform(); err != nil {
		return fmt.Errorf("assembling report: %w", err)
	}

	if outputPath == "" {
		outputPath = filepath.Join(
			configManager.GetOutputConfig().Directory,
			fmt.Sprintf("report-%s.json", identifier),
		)
	}
	if err := writer.Document().Save(outputPath); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"report_id":  writer.ReportID().String(),
		"identifier": identifier,
		"output":     outputPath,
	}).Info("Report generated")
	return nil
}

// newLogger builds the process logger from the logging configuration.
func newLogger(cfg *domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	}

	if cfg.Output == "stderr" {
		logger.SetOutput(os.Stderr)
	} else {
		logger.SetOutput(os.Stdout)
	}
	return logger
}
