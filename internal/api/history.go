package api

import (
	"github.com/labstack/echo/v4"
	"github.com/markusressel/fanctrl/internal/persistence"
	"github.com/markusressel/fanctrl/internal/statelog"
	"net/http"
	"strconv"
)

func registerHistoryEndpoints(rest *echo.Echo, history persistence.Persistence) {
	group := rest.Group("/history")

	group.GET("/", func(c echo.Context) error {
		return getHistory(c, history)
	})
}

func getHistory(c echo.Context, history persistence.Persistence) error {
	if history == nil {
		return returnNotFound(c, "history")
	}

	limit := defaultHistoryLimit
	if value := c.QueryParam(queryParamLimit); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return returnBadRequest(c, "limit must be a non-negative number, was: "+value)
		}
		limit = parsed
	}

	records, err := history.LoadStateRecords(limit)
	if err != nil {
		return returnError(c, err)
	}
	if records == nil {
		records = []statelog.Record{}
	}
	return c.JSONPretty(http.StatusOK, records, indentationChar)
}
