package api

import (
	"github.com/labstack/echo/v4"
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/qdm12/reprint"
	"net/http"
)

func registerProfileEndpoints(rest *echo.Echo) {
	group := rest.Group("/profile")

	group.GET("/", getProfiles)
	group.GET("/:"+urlParamId+"/", getProfile)
	group.GET("/scaling/", getScaling)
}

func getProfiles(c echo.Context) error {
	var result []curves.Profile
	for _, name := range curves.ProfileNames() {
		profile, _ := curves.GetProfile(name)
		result = append(result, profile)
	}
	data := reprint.This(result)
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getProfile(c echo.Context) error {
	id := c.Param(urlParamId)
	profile, exists := curves.GetProfile(id)
	if !exists {
		return returnNotFound(c, id)
	}
	data := reprint.This(profile)
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getScaling(c echo.Context) error {
	data := reprint.This(curves.FanScaling)
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
