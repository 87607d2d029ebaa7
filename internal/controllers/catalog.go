package controllers

import (
	"net/http"

	"github.com/acoes-municipais/simulador/internal/httputil"
	"github.com/acoes-municipais/simulador/internal/reference"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
)

// RegisterCatalogRoutes registers the routes for the initiative catalogs
// with the RouterGroup that is passed.
func (co Controller) RegisterCatalogRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/current", co.OptionsCatalog)
	r.GET("/current", co.GetCurrentCatalog)
	r.OPTIONS("/proposed", co.OptionsCatalog)
	r.GET("/proposed", co.GetProposedCatalog)
}

// OptionsCatalog returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Catalogs
//	@Success		204
//	@Router			/v1/catalog/current [options]
//	@Router			/v1/catalog/proposed [options]
func (co Controller) OptionsCatalog(c *gin.Context) {
	httputil.OptionsGet(c)
}

// matches reports whether any of the names matches the search pattern.
// An empty pattern matches everything.
func matches(pattern string, names ...string) bool {
	if pattern == "" {
		return true
	}

	for _, name := range names {
		if glob.Glob(pattern, name) {
			return true
		}
	}
	return false
}

// GetCurrentCatalog returns the initiatives for the invested table
//
//	@Summary		List current initiatives
//	@Description	Returns the initiatives that can be registered as already invested, sorted by name
//	@Tags			Catalogs
//	@Produce		json
//	@Success		200		{object}	CurrentCatalogResponse
//	@Param			search	query		string	false	"Glob pattern for the initiative name, e.g. *Empreendedor*"
//	@Router			/v1/catalog/current [get]
func (co Controller) GetCurrentCatalog(c *gin.Context) {
	var filter CatalogQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	entries := make([]reference.CurrentEntry, 0)
	for _, e := range co.Data.Current.Entries() {
		if matches(filter.Search, e.Initiative) {
			entries = append(entries, e)
		}
	}

	c.JSON(http.StatusOK, CurrentCatalogResponse{
		Data: entries,
	})
}

// GetProposedCatalog returns the initiatives and solutions for the proposal table
//
//	@Summary		List proposed initiatives
//	@Description	Returns the priced initiative and solution combinations in spreadsheet order
//	@Tags			Catalogs
//	@Produce		json
//	@Success		200		{object}	ProposedCatalogResponse
//	@Param			search	query		string	false	"Glob pattern for the initiative or solution name"
//	@Router			/v1/catalog/proposed [get]
func (co Controller) GetProposedCatalog(c *gin.Context) {
	var filter CatalogQueryFilter
	_ = c.Bind(&filter)

	entries := make([]reference.ProposedEntry, 0)
	for _, e := range co.Data.Proposed.Entries() {
		if matches(filter.Search, e.Initiative, e.Solution) {
			entries = append(entries, e)
		}
	}

	c.JSON(http.StatusOK, ProposedCatalogResponse{
		Data: entries,
	})
}
