package service

import (
	"time"

	"github.com/MKhiriev/go-smart-cards/internal/adapter"
	"github.com/MKhiriev/go-smart-cards/internal/config"
	"github.com/MKhiriev/go-smart-cards/internal/logger"
	"github.com/MKhiriev/go-smart-cards/internal/store"
	"github.com/MKhiriev/go-smart-cards/internal/validators"
	"github.com/MKhiriev/go-smart-cards/models"
)

// Services aggregates every service handed to the transport layer and the
// workers.
type Services struct {
	AuthService       AuthService
	DeckService       DeckService
	CardService       CardService
	UserService       UserService
	GenerationService GenerationService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, generator adapter.Generator, cfg config.StructuredConfig,
	build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewCardsValidator()

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthService(storages, validator, cfg.App, time.Now, logger),
		DeckService:       NewDeckService(storages, validator, logger),
		CardService:       NewCardService(storages, validator, logger),
		UserService:       NewUserService(storages, logger),
		GenerationService: NewGenerationService(storages.Users, generator, validator, cfg.App, time.Now, logger),
		AppInfoService:    appInfo,
	}, nil
}
