// Package site is the entry point a build driver uses: it normalizes a configuration,
// registers its integrations and hands back both results together.
package site

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/sitecore/internal/config"
	"git.home.luguber.info/inful/sitecore/internal/integration"
	"git.home.luguber.info/inful/sitecore/internal/integrations"
	"git.home.luguber.info/inful/sitecore/internal/logfields"
	"git.home.luguber.info/inful/sitecore/internal/pipeline"
)

// Site is a resolved configuration together with its active pipeline. Both are
// immutable and may be shared between goroutines.
type Site struct {
	Config   *config.ResolvedConfig
	Pipeline *pipeline.ActivePipeline

	logger *slog.Logger
}

// Option customizes Resolve and Load.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	resolver  config.IntegrationResolver
	overrides config.RawConfig
}

// WithLogger sets the logger for warnings and the resolution summary.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithResolver replaces the catalog used for by-name integration entries.
func WithResolver(r config.IntegrationResolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithOverrides deep-merges raw on top of the loaded or given configuration before it
// is normalized.
func WithOverrides(raw config.RawConfig) Option {
	return func(o *options) { o.overrides = raw }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:   slog.Default(),
		resolver: integrations.Builtin(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Resolve normalizes raw and registers its integrations. It stops at the first error;
// no partial Site is returned.
func Resolve(raw config.RawConfig, opts ...Option) (*Site, error) {
	return resolve(raw, newOptions(opts))
}

// Load reads the configuration file at path and resolves it.
func Load(path string, opts ...Option) (*Site, error) {
	o := newOptions(opts)
	raw, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Loaded configuration", logfields.Path(path))
	return resolve(raw, o)
}

func resolve(raw config.RawConfig, o *options) (*Site, error) {
	if o.overrides != nil {
		merged, err := config.Merge(raw, o.overrides)
		if err != nil {
			return nil, err
		}
		raw = merged
	}

	cfg, err := config.Normalize(raw, config.WithResolver(o.resolver))
	if err != nil {
		return nil, fmt.Errorf("normalize configuration: %w", err)
	}
	for _, w := range cfg.Warnings() {
		o.logger.Warn("Configuration adjusted", slog.String("warning", w))
	}

	p, err := pipeline.Register(cfg.Integrations())
	if err != nil {
		return nil, fmt.Errorf("register integrations: %w", err)
	}

	o.logger.Debug("Site resolved",
		logfields.Site(cfg.Site()),
		slog.Any("integrations", p.Integrations()),
		slog.Int("bindings", p.Len()))

	return &Site{Config: cfg, Pipeline: p, logger: o.logger}, nil
}

// NewHookContext starts the shared state for one build of the site.
func (s *Site) NewHookContext() *integration.HookContext {
	hc := integration.NewHookContext(s.Config, s.logger)
	hc.Logger = s.logger.With(logfields.BuildID(hc.BuildID))
	return hc
}

// Runner returns a runner for the site's pipeline. The site's logger is used unless
// opts provide another.
func (s *Site) Runner(opts ...pipeline.RunnerOption) *pipeline.Runner {
	all := append([]pipeline.RunnerOption{pipeline.WithLogger(s.logger)}, opts...)
	return pipeline.NewRunner(s.Pipeline, all...)
}
