package controllers

import (
	"errors"
	"net/http"

	"github.com/acoes-municipais/simulador/internal/httputil"
	"github.com/acoes-municipais/simulador/internal/importer"
	"github.com/acoes-municipais/simulador/internal/ledger"
	"github.com/acoes-municipais/simulador/internal/models"
)

// status returns the HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, errMunicipalityNotFound) || errors.Is(err, ledger.ErrRowNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMunicipalityNotFound = errors.New("there is no municipality with this name")
	errNoMunicipality       = errors.New("no municipality is selected")
	errNoFile               = errors.New("you must send a file to this endpoint")
	errFileType             = errors.New("this endpoint only supports .csv files")
	errDatabase             = errors.New("there is a problem with the database connection")
)

// messages are shown on the page when an action fails.
var messages = []struct {
	err     error
	message string
}{
	{ledger.ErrNoInitiative, "Selecione uma iniciativa."},
	{ledger.ErrUnknownInitiative, "A iniciativa selecionada não existe no catálogo."},
	{ledger.ErrNegativeAmount, "Os valores não podem ser negativos."},
	{ledger.ErrRowNotFound, "A linha selecionada não existe mais."},
	{ledger.ErrColumnLocked, "Esta coluna não pode ser editada."},
	{httputil.ErrInvalidIndex, "A linha selecionada não existe mais."},
	{httputil.ErrInvalidAmount, "Valor inválido. Use ponto como separador decimal."},
	{errMunicipalityNotFound, "O município selecionado não existe."},
	{errNoMunicipality, "Selecione um município."},
	{errNoFile, "Erro ao carregar: selecione um arquivo."},
	{errFileType, "Erro ao carregar: o arquivo precisa ser um .csv."},
	{importer.ErrMissingType, "Erro ao carregar: o arquivo não possui a coluna TIPO."},
	{importer.ErrEmptyFile, "Erro ao carregar: o arquivo está vazio."},
}

// message returns the text shown on the page for a failed action. Errors
// without a translation are shown after the prefix.
func message(err error, prefix string) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}

	return prefix + err.Error()
}
