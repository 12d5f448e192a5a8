package main

import (
	"bytes"
	"context"

	"github.com/vango-dev/tabs/internal/config"
	"github.com/vango-dev/tabs/internal/errors"
	"github.com/vango-dev/tabs/internal/source"
	"github.com/vango-dev/tabs/pkg/dom"
	"github.com/vango-dev/tabs/pkg/tabs"
)

// loadConfig reads --config, or ./tabs.json when present, or the defaults.
// --page overrides the configured page.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case flags.configPath != "":
		cfg, err = config.LoadFile(flags.configPath)
	case config.Exists("."):
		cfg, err = config.Load(".")
	default:
		cfg = config.New()
	}
	if err != nil {
		return nil, err
	}

	if flags.page != "" {
		cfg.Page = flags.page
	}
	return cfg, nil
}

// loadPage fetches the configured page markup.
func loadPage(ctx context.Context, cfg *config.Config) ([]byte, error) {
	loader := source.NewLoader(source.WithS3Options(source.S3Options{
		Region:       cfg.S3.Region,
		Endpoint:     cfg.S3.Endpoint,
		UsePathStyle: cfg.S3.UsePathStyle,
	}))
	return loader.Load(ctx, cfg.PageLocation())
}

// buildDocument parses page and builds its tab groups. A non-nil collection
// is returned with the joined errors of any skipped groups.
func buildDocument(page []byte, cfg *config.Config) (*dom.Document, *tabs.Collection, error) {
	doc, err := dom.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, nil, errors.New("E132").Wrap(err)
	}
	coll, err := tabs.NewCollection(doc, tabs.WithMarkers(cfg.TabsMarkers()))
	return doc, coll, err
}
