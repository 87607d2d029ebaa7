package controllers

import (
	"net/http"

	"github.com/acoes-municipais/simulador/internal/httputil"
	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterLedgerRoutes registers the routes for the ledger of the session
// with the RouterGroup that is passed.
func (co Controller) RegisterLedgerRoutes(r *gin.RouterGroup) {
	r.Use(co.Session())

	// Root group
	{
		r.OPTIONS("", co.OptionsLedger)
		r.GET("", co.GetLedger)
		r.DELETE("", co.DeleteLedger)
	}

	// Row creation
	{
		r.OPTIONS("/invested", co.OptionsLedgerCreate)
		r.POST("/invested", co.CreateInvested)
		r.OPTIONS("/proposal", co.OptionsLedgerCreate)
		r.POST("/proposal", co.CreateProposal)
	}

	// Row with index
	{
		r.OPTIONS("/:table/:index", co.OptionsLedgerRow)
		r.PATCH("/:table/:index", co.UpdateLedgerRow)
		r.DELETE("/:table/:index", co.DeleteLedgerRow)
	}
}

// OptionsLedger returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Ledger
//	@Success		204
//	@Router			/v1/ledger [options]
func (co Controller) OptionsLedger(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// OptionsLedgerCreate returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Ledger
//	@Success		204
//	@Router			/v1/ledger/invested [options]
//	@Router			/v1/ledger/proposal [options]
func (co Controller) OptionsLedgerCreate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// OptionsLedgerRow returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Ledger
//	@Success		204
//	@Param			table	path	string	true	"invested or proposal"
//	@Param			index	path	int		true	"Position of the row, starting at 0"
//	@Router			/v1/ledger/{table}/{index} [options]
func (co Controller) OptionsLedgerRow(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// respondLedger sends the ledger of the session.
func (co Controller) respondLedger(c *gin.Context, code int) {
	l, err := co.Store.Ledger(sessionID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	data := newLedger(l)
	c.JSON(code, LedgerResponse{
		Data: &data,
	})
}

// GetLedger returns both tables of the session
//
//	@Summary		Get ledger
//	@Description	Returns the invested and proposal tables of the session with their totals
//	@Tags			Ledger
//	@Produce		json
//	@Success		200	{object}	LedgerResponse
//	@Failure		500	{object}	LedgerResponse
//	@Router			/v1/ledger [get]
func (co Controller) GetLedger(c *gin.Context) {
	co.respondLedger(c, http.StatusOK)
}

// DeleteLedger empties both tables of the session and closes the upload form
//
//	@Summary		Reset ledger
//	@Description	Deletes all rows of both tables
//	@Tags			Ledger
//	@Success		204
//	@Failure		500	{object}	httputil.HTTPError
//	@Router			/v1/ledger [delete]
func (co Controller) DeleteLedger(c *gin.Context) {
	err := co.modify(c, func(l *ledger.Ledger) error {
		l.Reset()
		return nil
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = co.Store.SetImportOpen(sessionID(c), false)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateInvested adds a row to the invested table
//
//	@Summary		Add invested row
//	@Description	Adds an initiative to the invested table. Initiatives with a fixed amount are fully covered by the sponsor.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	InvestedRowResponse
//	@Failure		400			{object}	InvestedRowResponse
//	@Failure		500			{object}	InvestedRowResponse
//	@Param			invested	body		InvestedEditable	true	"Invested row"
//	@Router			/v1/ledger/invested [post]
func (co Controller) CreateInvested(c *gin.Context) {
	var editable InvestedEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestedRowResponse{
			Error: &e,
		})
		return
	}

	var row ledger.InvestedRow
	err = co.modify(c, func(l *ledger.Ledger) (err error) {
		row, err = l.AddInvested(co.Data.Current, editable.Initiative, editable.Total, editable.Sponsor)
		return err
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestedRowResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, InvestedRowResponse{
		Data: &row,
	})
}

// CreateProposal adds a row to the proposal table
//
//	@Summary		Add proposal row
//	@Description	Adds an initiative and solution from the catalog to the proposal table. Unknown combinations are added with zero amounts.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	ProposalRowResponse
//	@Failure		400			{object}	ProposalRowResponse
//	@Failure		500			{object}	ProposalRowResponse
//	@Param			proposal	body		ProposalEditable	true	"Proposal row"
//	@Router			/v1/ledger/proposal [post]
func (co Controller) CreateProposal(c *gin.Context) {
	var editable ProposalEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProposalRowResponse{
			Error: &e,
		})
		return
	}

	var row ledger.ProposalRow
	err = co.modify(c, func(l *ledger.Ledger) (err error) {
		row, err = l.AddProposal(co.Data.Proposed, editable.Initiative, editable.Solution, editable.Total)
		return err
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProposalRowResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, ProposalRowResponse{
		Data: &row,
	})
}

// rowParams parses the table and index path parameters.
func rowParams(c *gin.Context) (ledger.Table, int, error) {
	table, err := ledger.ParseTable(c.Param("table"))
	if err != nil {
		return "", 0, err
	}

	index, err := httputil.ParseIndex(c, "index")
	if err != nil {
		return "", 0, err
	}

	return table, index, nil
}

// UpdateLedgerRow updates the amounts of a row
//
//	@Summary		Update row
//	@Description	Updates the sponsor amount and/or the total of a row. The municipality amount is recomputed.
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	LedgerResponse
//	@Failure		400		{object}	LedgerResponse
//	@Failure		500		{object}	LedgerResponse
//	@Param			table	path		string		true	"invested or proposal"
//	@Param			index	path		int			true	"Position of the row, starting at 0"
//	@Param			row		body		RowEditable	true	"Amounts"
//	@Router			/v1/ledger/{table}/{index} [patch]
func (co Controller) UpdateLedgerRow(c *gin.Context) {
	table, index, err := rowParams(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	var editable RowEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	err = co.modify(c, func(l *ledger.Ledger) error {
		if editable.Sponsor != nil {
			if err := l.Edit(table, index, ledger.ColumnSponsor, *editable.Sponsor); err != nil {
				return err
			}
		}

		if editable.Total != nil {
			return l.Edit(table, index, ledger.ColumnTotal, *editable.Total)
		}

		// Nothing to change, but the row must exist
		if index >= l.Len(table) {
			return ledger.ErrRowNotFound
		}
		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	co.respondLedger(c, http.StatusOK)
}

// DeleteLedgerRow removes a row
//
//	@Summary		Delete row
//	@Description	Deletes a row. The following rows move up by one position.
//	@Tags			Ledger
//	@Success		204
//	@Failure		400		{object}	httputil.HTTPError
//	@Failure		500		{object}	httputil.HTTPError
//	@Param			table	path		string	true	"invested or proposal"
//	@Param			index	path		int		true	"Position of the row, starting at 0"
//	@Router			/v1/ledger/{table}/{index} [delete]
func (co Controller) DeleteLedgerRow(c *gin.Context) {
	table, index, err := rowParams(c)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = co.modify(c, func(l *ledger.Ledger) error {
		return l.Delete(table, index)
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
