package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/ppiankov/gostcite/internal/cache"
	"github.com/ppiankov/gostcite/internal/format"
	"github.com/ppiankov/gostcite/internal/loader"
	"github.com/ppiankov/gostcite/internal/model"
	"github.com/ppiankov/gostcite/internal/render"
	"github.com/ppiankov/gostcite/internal/validate"
	"go.uber.org/zap"
)

// Pipeline orchestrates load, format and render
type Pipeline struct {
	loader    *loader.Loader
	formatter *format.ListFormatter
	renderer  *render.Renderer
	logger    *zap.Logger
	config    *model.Config
}

// Result summarizes one run
type Result struct {
	Records   int
	Citations []string
}

// New creates a pipeline with the given configuration
func New(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []format.Option{format.WithLogger(logger)}
	if cfg.Cache.Enabled {
		opts = append(opts, format.WithCache(cache.New(cfg.Cache.Dir, cfg.Cache.TTL)))
	}

	return &Pipeline{
		loader:    loader.New(cfg.Input, logger),
		formatter: format.NewListFormatter(opts...),
		renderer:  render.New(cfg.Output),
		logger:    logger,
		config:    cfg,
	}
}

// Format loads every input and returns the sorted citation list
func (p *Pipeline) Format(ctx context.Context, inputs []string) (*Result, error) {
	records, err := p.loader.LoadAll(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	return p.FormatRecords(records)
}

// FormatRecords validates the whole batch before formatting any of it
func (p *Pipeline) FormatRecords(records []model.Record) (*Result, error) {
	if err := validate.Records(records); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	citations, err := p.formatter.Strings(records)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}

	return &Result{Records: len(records), Citations: citations}, nil
}

// Run formats the inputs and writes the list to outPath, or to out when outPath is empty.
// Nothing is written unless every record formats.
func (p *Pipeline) Run(ctx context.Context, inputs []string, out io.Writer, outPath string) (*Result, error) {
	result, err := p.Format(ctx, inputs)
	if err != nil {
		return nil, err
	}

	if outPath != "" {
		err = p.renderer.WriteFile(outPath, result.Citations)
	} else {
		err = p.renderer.Write(out, result.Citations)
	}
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	p.logger.Info("citation list written",
		zap.Int("records", result.Records),
		zap.String("format", p.config.Output.Format),
	)
	return result, nil
}
