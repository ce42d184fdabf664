package api

import (
	"github.com/labstack/echo/v4"
	"github.com/markusressel/fanctrl/internal/controller"
	"net/http"
	"time"
)

type stateResponse struct {
	Phase         string    `json:"phase"`
	Temperature   float64   `json:"temperature"`
	FanOn         bool      `json:"fanOn"`
	Intensity     float64   `json:"intensity"`
	DutyCycle     float64   `json:"dutyCycle"`
	ActiveProfile string    `json:"activeProfile"`
	NextProfile   string    `json:"nextProfile"`
	SwitchAt      time.Time `json:"switchAt"`
}

func registerStateEndpoints(rest *echo.Echo, source StateSource) {
	group := rest.Group("/state")

	group.GET("/", func(c echo.Context) error {
		return getState(c, source.Snapshot())
	})
}

func getState(c echo.Context, state controller.State) error {
	return c.JSONPretty(http.StatusOK, toStateResponse(state), indentationChar)
}

func toStateResponse(state controller.State) stateResponse {
	return stateResponse{
		Phase:         state.Phase.String(),
		Temperature:   state.Temperature,
		FanOn:         !state.Intensity.IsOff(),
		Intensity:     state.Intensity.Value(),
		DutyCycle:     state.DutyCycle,
		ActiveProfile: state.ActiveProfile,
		NextProfile:   state.NextProfile,
		SwitchAt:      state.SwitchAt,
	}
}
