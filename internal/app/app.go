package app

import (
	"fmt"
	"os"
	"time"

	"lf-go/internal/config"
	"lf-go/internal/localfile"
)

// LFApp is the application layer between the CLI and the localfile catalog.
// It builds every configured data location at load time and exposes
// operations that accept raw names and paths.
type LFApp struct {
	cfg     *config.Config
	catalog *localfile.Catalog
	logger  localfile.Logger
	op      *Operation
	logFile *os.File
}

// NewLFApp creates a fully wired LFApp from the given config.
// operation identifies the CLI command being run (e.g. "ListFiles", "Watch").
// Building a location may create its directory. The caller must call Close.
func NewLFApp(cfg *config.Config, operation string) (*LFApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	op := NewOperation(operation, time.Now())
	l, logFile, err := newLogger(cfg.LogDir, op.ID, level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: l.With("operation", op.Name)}

	catalog := localfile.NewCatalog(logger)
	for _, lc := range cfg.Locations {
		loc, err := localfile.NewDataLocation(lc.Location, lc.Pattern)
		if err == nil {
			err = catalog.Add(lc.Name, loc)
		}
		if err != nil {
			logger.Error("loading location failed", "name", lc.Name, "location", lc.Location, "error", err)
			if logFile != nil {
				logFile.Close()
			}
			return nil, fmt.Errorf("loading location %q: %w", lc.Name, err)
		}
	}
	logger.Debug("catalog loaded", "locations", len(cfg.Locations))

	return &LFApp{
		cfg:     cfg,
		catalog: catalog,
		logger:  logger,
		op:      op,
		logFile: logFile,
	}, nil
}

// Names returns the configured location names in sorted order.
func (a *LFApp) Names() []string {
	return a.catalog.Names()
}

// Files lists the files of the configured location name.
func (a *LFApp) Files(name string) ([]*localfile.Path, error) {
	files, err := a.catalog.Files(name)
	if err != nil {
		a.op.Fail()
		return nil, fmt.Errorf("listing %s: %w", name, err)
	}
	return files, nil
}

// Resolve builds an unnamed data location from a raw path and pattern and
// lists it. Like configured locations, a missing directory is created when
// a pattern is given.
func (a *LFApp) Resolve(location string, pattern localfile.Pattern) ([]*localfile.Path, error) {
	loc, err := localfile.NewDataLocation(location, pattern)
	if err != nil {
		a.op.Fail()
		return nil, fmt.Errorf("resolving location: %w", err)
	}
	a.logger.Debug("resolving location", "location", loc.Location(), "pattern", loc.Pattern().String())

	files, err := loc.Files()
	if err != nil {
		a.op.Fail()
		return nil, fmt.Errorf("listing %s: %w", location, err)
	}
	return files, nil
}

// Close logs the operation result and closes the log file.
func (a *LFApp) Close() error {
	a.logger.Info("operation finished",
		"status", a.op.Status,
		"duration", a.op.Elapsed(time.Now()).Truncate(time.Millisecond).String(),
	)
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
	}
	return nil
}
