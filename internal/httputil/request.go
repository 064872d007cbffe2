package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gigbook/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
func BindData(c *gin.Context, data any) error {
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

// QueryMonth parses the query parameter with the given name as a month.
// If the parameter is not set, the zero Month and false are returned.
func QueryMonth(c *gin.Context, name string) (types.Month, bool, error) {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return types.Month{}, false, nil
	}

	m, err := types.ParseMonth(value)
	if err != nil {
		return types.Month{}, false, ErrInvalidMonth
	}

	return m, true, nil
}
