package common

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type request struct {
	Query string `validate:"required,notblank"`
	Model string `validate:"omitempty,oneof=flux midjourney"`
}

func TestGenericEchoValidator(t *testing.T) {
	v := &GenericEchoValidator{}

	assert.NoError(t, v.Validate(request{Query: "quantum"}))
	assert.NoError(t, v.Validate(request{Query: "quantum", Model: "flux"}))

	for _, invalid := range []request{
		{},
		{Query: "   "},
		{Query: "quantum", Model: "dall-e"},
	} {
		err := v.Validate(invalid)
		var httpErr *echo.HTTPError
		if assert.True(t, errors.As(err, &httpErr), "expected HTTPError for %+v", invalid) {
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		}
	}
}
