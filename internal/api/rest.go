package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/markusressel/fanctrl/internal/controller"
	"github.com/markusressel/fanctrl/internal/persistence"
	"github.com/prometheus/client_golang/prometheus"
	"net/http"
)

const (
	urlParamId      = "id"
	queryParamLimit = "limit"
	indentationChar = "  "

	defaultHistoryLimit = 100
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}

	// StateSource provides snapshots of the controller state
	StateSource interface {
		Snapshot() controller.State
	}
)

// CreateRestService creates the REST API. history may be nil, if the history is disabled.
// Request metrics are registered with the given registerer.
func CreateRestService(state StateSource, history persistence.Persistence, registerer prometheus.Registerer) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())

	echoRest.Use(middleware.Logger())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "fanctrl_api",
		Registerer: registerer,
	}))

	echoRest.GET("/alive/", isAlive)

	registerStateEndpoints(echoRest, state)
	registerProfileEndpoints(echoRest)
	registerHistoryEndpoints(echoRest, history)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return a "bad request" message
func returnBadRequest(c echo.Context, message string) (err error) {
	return c.JSONPretty(http.StatusBadRequest, &Result{
		Name:    "Bad request",
		Message: message,
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusInternalServerError, &Result{
		Name:    "Unknown Error",
		Message: e.Error(),
	}, indentationChar)
}
