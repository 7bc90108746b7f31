package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/genres/7?dry=1", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/genres/:id")

	values := requestContext(c)

	assert.Equal(t, map[string]sentrygo.Context{
		"request": {
			"method": http.MethodPut,
			"route":  "/genres/:id",
			"uri":    "/genres/7?dry=1",
		},
	}, values)
}
