package provider

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/agenthands/ppinet/internal/config"
)

// NewHTTPClient returns the client shared by all providers. A zero timeout
// keeps the net/http default of no client-side timeout.
func NewHTTPClient(cfg config.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout.Duration}
}

func NewProvider(id string, cfg *config.Config, client *http.Client) (Provider, error) {
	switch strings.ToLower(id) {
	case IDBioGRID:
		return NewBioGRID(cfg.BioGRID.BaseURL, cfg.BioGRID.AccessKey, cfg.BioGRID.Organism, client), nil

	case IDString:
		return NewStringDB(cfg.String.BaseURL, cfg.String.Species, cfg.String.CallerIdentity, client), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %s", id)
	}
}

// NewProviders builds every known provider in display order.
func NewProviders(cfg *config.Config, client *http.Client) ([]Provider, error) {
	var out []Provider
	for _, id := range []string{IDBioGRID, IDString} {
		p, err := NewProvider(id, cfg, client)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
