package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/matrixbg/internal/config"
	"github.com/san-kum/matrixbg/internal/rain"
	"github.com/san-kum/matrixbg/internal/raster"
	"github.com/san-kum/matrixbg/internal/storage"
)

// Generator renders one frame per call and overwrites the output file.
type Generator struct {
	cfg    config.Config
	store  *storage.Store
	logger *slog.Logger
}

// New validates cfg and resolves its output directory.
func New(cfg config.Config, logger *slog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg:    cfg,
		store:  storage.New(dir),
		logger: logger,
	}, nil
}

func (g *Generator) Config() config.Config {
	return g.cfg
}

// Frame synthesizes the grid for now without touching the filesystem.
func (g *Generator) Frame(now time.Time) *raster.Frame {
	return rain.Synthesize(g.cfg, Seconds(now))
}

// Run renders the frame for now, writes it and returns the absolute path.
func (g *Generator) Run(now time.Time) (string, error) {
	path, _, err := g.Render(now)
	return path, err
}

// Render is Run that also hands back the frame it wrote.
func (g *Generator) Render(now time.Time) (string, *raster.Frame, error) {
	start := time.Now()

	frame := g.Frame(now)
	data, err := raster.EncodeBytes(frame)
	if err != nil {
		return "", nil, fmt.Errorf("generator: encode: %w", err)
	}

	if err := g.store.Init(); err != nil {
		return "", nil, err
	}
	path, err := g.store.Write(g.cfg.OutputName, data)
	if err != nil {
		return "", nil, err
	}

	g.logger.Debug("generator: frame written",
		"path", path,
		"bytes", len(data),
		"width", frame.Width,
		"height", frame.Height,
		"elapsed", time.Since(start))
	return path, frame, nil
}

// Seconds converts a wall-clock time to fractional Unix seconds.
func Seconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
