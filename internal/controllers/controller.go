// Package controllers implements the HTTP handlers of the simulator: the
// HTML page with its form actions and the JSON API.
package controllers

import (
	"github.com/acoes-municipais/simulador/internal/config"
	"github.com/acoes-municipais/simulador/internal/models"
	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/acoes-municipais/simulador/internal/view"
)

// Controller holds everything the handlers need.
type Controller struct {
	Store    *models.Store
	Data     *reference.Data
	Config   *config.Config
	Branding view.Branding
}
