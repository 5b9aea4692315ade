package classifier

import (
	"fmt"
	"strings"
)

// NewClient creates a classifier client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "huggingface":
		return newHuggingFaceClient(cfg)
	case "stub":
		return newStubClient(), nil
	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", cfg.Provider)
	}
}
