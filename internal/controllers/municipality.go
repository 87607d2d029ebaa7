package controllers

import (
	"net/http"

	"github.com/acoes-municipais/simulador/internal/diagnostic"
	"github.com/acoes-municipais/simulador/internal/httputil"
	"github.com/acoes-municipais/simulador/internal/view"
	"github.com/gin-gonic/gin"
)

// RegisterMunicipalityRoutes registers the routes for municipalities with
// the RouterGroup that is passed.
func (co Controller) RegisterMunicipalityRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsMunicipalityList)
		r.GET("", co.GetMunicipalities)
	}

	// Municipality with name
	{
		r.OPTIONS("/:name", co.OptionsMunicipalityDetail)
		r.GET("/:name", co.GetMunicipality)
	}
}

// OptionsMunicipalityList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Municipalities
//	@Success		204
//	@Router			/v1/municipalities [options]
func (co Controller) OptionsMunicipalityList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsMunicipalityDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Municipalities
//	@Success		204
//	@Param			name	path	string	true	"Name of the municipality"
//	@Router			/v1/municipalities/{name} [options]
func (co Controller) OptionsMunicipalityDetail(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetMunicipalities returns all municipalities
//
//	@Summary		List municipalities
//	@Description	Returns all municipalities with their diagnostic scores in spreadsheet order
//	@Tags			Municipalities
//	@Produce		json
//	@Success		200	{object}	MunicipalityListResponse
//	@Router			/v1/municipalities [get]
func (co Controller) GetMunicipalities(c *gin.Context) {
	c.JSON(http.StatusOK, MunicipalityListResponse{
		Data: co.Data.Municipalities.All(),
	})
}

// GetMunicipality returns the diagnostic panel of a municipality
//
//	@Summary		Get municipality
//	@Description	Returns the diagnostic of a municipality: scores, opportunities and the radar chart geometry
//	@Tags			Municipalities
//	@Produce		json
//	@Success		200		{object}	MunicipalityResponse
//	@Failure		404		{object}	MunicipalityResponse
//	@Param			name	path		string	true	"Name of the municipality"
//	@Router			/v1/municipalities/{name} [get]
func (co Controller) GetMunicipality(c *gin.Context) {
	m, ok := co.Data.Municipalities.Find(c.Param("name"))
	if !ok {
		e := errMunicipalityNotFound.Error()
		c.JSON(status(errMunicipalityNotFound), MunicipalityResponse{
			Error: &e,
		})
		return
	}

	panel := diagnostic.NewPanel(m, view.RadarSize)
	c.JSON(http.StatusOK, MunicipalityResponse{
		Data: &panel,
	})
}
