package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ContextURL is the key of the external base URL in the gin context.
const ContextURL = "simulador-url"

// URL returns the external base URL the request was made to.
func URL(c *gin.Context) string {
	return c.GetString(ContextURL)
}

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data interface{}) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ParseIndex parses the path parameter as row index.
func ParseIndex(c *gin.Context, param string) (int, error) {
	index, err := strconv.Atoi(c.Param(param))
	if err != nil || index < 0 {
		return 0, ErrInvalidIndex
	}

	return index, nil
}

// FormAmount parses a form field as amount. An empty or missing field is zero.
func FormAmount(c *gin.Context, field string) (decimal.Decimal, error) {
	value := strings.TrimSpace(c.PostForm(field))
	if value == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	return amount, nil
}
