package app

import (
	"go.uber.org/zap"

	"coldsign/internal/domain"
	"coldsign/internal/securemem"
	"coldsign/internal/services/signing"
	"coldsign/internal/store"
)

// Wire bundles the keystore and signing service for the CLI.
type Wire struct {
	Store  domain.ContainerStore
	Signer domain.Signer
	Mode   securemem.Mode
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mode := securemem.Strict
	if cfg.Permissive {
		mode = securemem.Permissive
	}

	return &Wire{
		Store:  store.NewFileStore(cfg.Home),
		Signer: signing.New(mode, logger),
		Mode:   mode,
	}
}
