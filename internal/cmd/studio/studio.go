// Package studio parses studio service flags and launches the service.
package studio

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/comingsoon/internal/platform/cmd"
	studioservice "github.com/louisbranch/comingsoon/internal/services/studio"
	"github.com/louisbranch/comingsoon/internal/services/studio/content"
)

// Config holds studio command configuration.
type Config struct {
	HTTPAddr    string `env:"STUDIO_HTTP_ADDR" envDefault:"localhost:8090"`
	ContentPath string `env:"STUDIO_CONTENT_PATH"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "Path to a YAML content file (empty uses the built-in content)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads content and serves the studio landing page until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStudio, func(ctx context.Context) error {
		server, err := studioservice.NewServer(ctx, studioservice.Config{
			HTTPAddr: cfg.HTTPAddr,
			Content:  c,
		})
		if err != nil {
			return err
		}
		defer server.Close()
		source := cfg.ContentPath
		if source == "" {
			source = "built-in"
		}
		log.Printf("studio listening addr=%s content=%s", server.Addr(), source)
		return server.ListenAndServe(ctx)
	})
}
