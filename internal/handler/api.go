package handler

import (
	"github.com/dabipages/internal/config"
	"github.com/dabipages/internal/render"
	"github.com/dabipages/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	pages    *service.PageService
	renderer *render.Renderer
	apiKey   string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	return &API{
		pages:    service.NewPageService(gdb, cfg.StaticDir),
		renderer: render.New(cfg.SiteName),
		apiKey:   cfg.APIKey,
	}
}
