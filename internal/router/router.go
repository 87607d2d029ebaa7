package router

import (
	"net/http"

	docs "github.com/acoes-municipais/simulador/api"
	"github.com/acoes-municipais/simulador/internal/config"
	"github.com/acoes-municipais/simulador/internal/controllers"
	"github.com/acoes-municipais/simulador/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags.
var version = "0.0.0"

const methodNotAllowed = "This HTTP method is not allowed for the endpoint you called"

// Config sets up the router and its middlewares. The returned function
// must be called when the router is not used anymore.
func Config(cfg *config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httputil.HTTPError{
			Error: methodNotAllowed,
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	teardown := func() {}
	if cfg.EnableMetrics {
		err := registerPrometheusMetrics()
		if err != nil {
			return nil, teardown, err
		}
		teardown = func() {
			unregisterPrometheusMetrics()
		}

		r.Use(MetricsMiddleware())
	}

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Title = "Simulador de Ações Municipais"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "Simulates partnership proposals between the Sebrae/PR and the municipalities of Paraná, based on the municipal diagnostic and the initiative catalogs."

	return r, teardown, nil
}

// AttachRoutes attaches the routes to the router group that is passed in.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup) {
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	co.RegisterHealthzRoutes(group.Group("/healthz"))

	// pprof performance profiles
	if co.Config.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	if co.Config.EnableMetrics {
		group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	v1 := group.Group("/v1")
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	co.RegisterMunicipalityRoutes(v1.Group("/municipalities"))
	co.RegisterCatalogRoutes(v1.Group("/catalog"))
	co.RegisterLedgerRoutes(v1.Group("/ledger"))

	// The page itself and its form actions
	co.RegisterPageRoutes(group.Group(""))
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.0.0"` // The running version of the simulator
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Municipalities  string `json:"municipalities" example:"https://example.com/v1/municipalities"`    // URL of municipality list endpoint
	CurrentCatalog  string `json:"currentCatalog" example:"https://example.com/v1/catalog/current"`   // URL of the catalog of current initiatives
	ProposedCatalog string `json:"proposedCatalog" example:"https://example.com/v1/catalog/proposed"` // URL of the catalog of proposed initiatives
	Ledger          string `json:"ledger" example:"https://example.com/v1/ledger"`                    // URL of the ledger of the session
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			General
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := httputil.URL(c) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Municipalities:  url + "/municipalities",
			CurrentCatalog:  url + "/catalog/current",
			ProposedCatalog: url + "/catalog/proposed",
			Ledger:          url + "/ledger",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
