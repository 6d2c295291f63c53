package ports

import "go.trai.ch/tsprops/internal/core/domain"

// ConfigLoader defines the interface for loading run definitions.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the run file at path and returns its runs in file order.
	Load(path string) ([]domain.RunSpec, error)
}
