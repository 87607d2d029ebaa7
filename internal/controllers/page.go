package controllers

import (
	"bytes"
	"net/http"

	"github.com/acoes-municipais/simulador/internal/httputil"
	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/acoes-municipais/simulador/internal/view"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RegisterPageRoutes registers the simulator page and its form actions.
// Every action redirects back to the page.
func (co Controller) RegisterPageRoutes(r *gin.RouterGroup) {
	r.Use(co.Session())

	r.GET("", co.GetPage)
	r.POST("/municipality", co.SelectMunicipality)
	r.POST("/reset", co.Reset)
	r.POST("/import/toggle", co.ToggleImport)
	r.POST("/import", co.Import)
	r.GET("/export/report", co.ExportReport)
	r.GET("/export/session", co.ExportSession)

	r.POST("/invested", co.AddInvested)
	r.POST("/proposal", co.AddProposal)

	for _, table := range []ledger.Table{ledger.TableInvested, ledger.TableProposal} {
		g := r.Group("/" + string(table))
		g.POST("/blank", co.InsertBlank(table))
		g.POST("/:index", co.EditRow(table))
		g.POST("/:index/delete", co.DeleteRow(table))
	}
}

// state collects everything the page shows for a session.
func (co Controller) state(id uuid.UUID) (view.State, error) {
	session, err := co.Store.Session(id)
	if err != nil {
		return view.State{}, err
	}

	l, err := co.Store.Ledger(id)
	if err != nil {
		return view.State{}, err
	}

	flash, err := co.Store.TakeFlash(id)
	if err != nil {
		return view.State{}, err
	}

	return view.State{
		Data:         co.Data,
		Municipality: session.Municipality,
		ImportOpen:   session.ImportOpen,
		Ledger:       l,
		Flash:        flash,
		PortfolioURL: co.Config.PortfolioURL,
		Branding:     co.Branding,
	}, nil
}

// GetPage renders the simulator page.
func (co Controller) GetPage(c *gin.Context) {
	state, err := co.state(sessionID(c))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var buf bytes.Buffer
	err = view.Render(&buf, view.Build(state))
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// redirect sends the browser back to the page. If the action failed, the
// error is shown there.
func (co Controller) redirect(c *gin.Context, err error) {
	if err != nil {
		co.reject(c, err, message(err, "Erro: "))
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// reject shows text on the next page view instead of failing the request.
// Server errors are not recoverable by the user and are returned as they are.
func (co Controller) reject(c *gin.Context, err error, text string) {
	if status(err) == http.StatusInternalServerError {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Err(err).Msg("action rejected")
	co.notify(c, text)
}

// notify redirects to the page with a message.
func (co Controller) notify(c *gin.Context, text string) {
	err := co.Store.SetFlash(sessionID(c), text)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// modify applies fn to the ledger of the session and stores the result.
// Nothing is stored if fn fails.
func (co Controller) modify(c *gin.Context, fn func(l *ledger.Ledger) error) error {
	return co.Store.UpdateLedger(sessionID(c), fn)
}

// SelectMunicipality selects the municipality shown by the diagnostic panel.
// An empty name clears the selection.
func (co Controller) SelectMunicipality(c *gin.Context) {
	name := c.PostForm("municipality")
	if name != "" {
		if _, ok := co.Data.Municipalities.Find(name); !ok {
			co.redirect(c, errMunicipalityNotFound)
			return
		}
	}

	co.redirect(c, co.Store.SetMunicipality(sessionID(c), name))
}

// Reset empties both tables and closes the upload form.
func (co Controller) Reset(c *gin.Context) {
	err := co.modify(c, func(l *ledger.Ledger) error {
		l.Reset()
		return nil
	})
	if err != nil {
		co.redirect(c, err)
		return
	}

	co.redirect(c, co.Store.SetImportOpen(sessionID(c), false))
}

// ToggleImport shows or hides the upload form for saved sessions.
func (co Controller) ToggleImport(c *gin.Context) {
	id := sessionID(c)

	session, err := co.Store.Session(id)
	if err != nil {
		co.redirect(c, err)
		return
	}

	co.redirect(c, co.Store.SetImportOpen(id, !session.ImportOpen))
}

// AddInvested adds a row to the invested table.
func (co Controller) AddInvested(c *gin.Context) {
	total, err := httputil.FormAmount(c, "total")
	if err != nil {
		co.redirect(c, err)
		return
	}

	sponsor, err := httputil.FormAmount(c, "sponsor")
	if err != nil {
		co.redirect(c, err)
		return
	}

	co.redirect(c, co.modify(c, func(l *ledger.Ledger) error {
		_, err := l.AddInvested(co.Data.Current, c.PostForm("initiative"), total, sponsor)
		return err
	}))
}

// AddProposal adds a row to the proposal table.
func (co Controller) AddProposal(c *gin.Context) {
	total, err := httputil.FormAmount(c, "total")
	if err != nil {
		co.redirect(c, err)
		return
	}

	co.redirect(c, co.modify(c, func(l *ledger.Ledger) error {
		_, err := l.AddProposal(co.Data.Proposed, c.PostForm("initiative"), c.PostForm("solution"), total)
		return err
	}))
}

// EditRow updates the sponsor and total amounts of a row. Fields missing
// from the form are left unchanged.
func (co Controller) EditRow(table ledger.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := httputil.ParseIndex(c, "index")
		if err != nil {
			co.redirect(c, err)
			return
		}

		var columns []ledger.Column
		for _, column := range []ledger.Column{ledger.ColumnSponsor, ledger.ColumnTotal} {
			if _, ok := c.GetPostForm(string(column)); ok {
				columns = append(columns, column)
			}
		}

		co.redirect(c, co.modify(c, func(l *ledger.Ledger) error {
			for _, column := range columns {
				value, err := httputil.FormAmount(c, string(column))
				if err != nil {
					return err
				}

				err = l.Edit(table, index, column, value)
				if err != nil {
					return err
				}
			}
			return nil
		}))
	}
}

// DeleteRow removes a row.
func (co Controller) DeleteRow(table ledger.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := httputil.ParseIndex(c, "index")
		if err != nil {
			co.redirect(c, err)
			return
		}

		co.redirect(c, co.modify(c, func(l *ledger.Ledger) error {
			return l.Delete(table, index)
		}))
	}
}

// InsertBlank appends an empty row.
func (co Controller) InsertBlank(table ledger.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		co.redirect(c, co.modify(c, func(l *ledger.Ledger) error {
			return l.InsertBlank(table)
		}))
	}
}
