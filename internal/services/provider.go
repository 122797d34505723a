package services

import (
	"github.com/maxmeneghini/D20CharSheet/internal/repositories/sheets"
	sheetService "github.com/maxmeneghini/D20CharSheet/internal/services/sheet"
)

// Provider holds all service instances
type Provider struct {
	SheetService sheetService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SheetRepository sheets.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	sheetRepo := cfg.SheetRepository
	if sheetRepo == nil {
		sheetRepo = sheets.NewInMemoryRepository()
	}

	svc := sheetService.NewService(&sheetService.ServiceConfig{
		Repository: sheetRepo,
	})

	return &Provider{
		SheetService: svc,
	}
}
