package handler

import (
	"errors"
	"net/url"

	"golang.org/x/exp/slog"
)

// Config provides a way to configure the Handler depending on your needs.
type Config struct {
	// Store is the data store from which the served resources are retrieved.
	Store DataStore
	// BasePath defines the URL path under which resources are served, e.g.
	// "/files/". If no trailing slash is presented it will be added.
	BasePath string
	// DisableRangeRequests causes the Range header to be ignored, so that
	// every download receives the entire resource.
	DisableRangeRequests bool
	// Logger is the logger to use internally, mostly for printing requests.
	Logger *slog.Logger
}

func (config *Config) validate() error {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	base := config.BasePath
	if _, err := url.Parse(base); err != nil {
		return err
	}

	// Ensure base path ends with slash to remove logic from extractIDFromPath
	if base != "" && base[len(base)-1] != '/' {
		base += "/"
	}

	// Ensure base path begins with slash
	if len(base) > 0 && base[0] != '/' {
		base = "/" + base
	}

	if base == "" {
		base = "/"
	}
	config.BasePath = base

	if config.Store == nil {
		return errors.New("rangeserve: Store must not be nil")
	}

	return nil
}
