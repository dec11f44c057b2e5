package commands

import (
	"log/slog"

	"github.com/asnlabs/asn/internal/asana"
)

// getClient loads credentials and builds the API client for this
// invocation.
func getClient(logger *slog.Logger) (*asana.Client, error) {
	cfg, err := asana.LoadConfig()
	if err != nil {
		return nil, err
	}

	return asana.NewClient(asana.ClientConfig{
		APIKey: cfg.APIKey,
		Logger: logger,
	}), nil
}
