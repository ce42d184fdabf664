package internal

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/markusressel/fanctrl/internal/api"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/controller"
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/markusressel/fanctrl/internal/fans"
	"github.com/markusressel/fanctrl/internal/mqtt"
	"github.com/markusressel/fanctrl/internal/persistence"
	"github.com/markusressel/fanctrl/internal/sensors"
	"github.com/markusressel/fanctrl/internal/statelog"
	"github.com/markusressel/fanctrl/internal/statistics"
	"github.com/markusressel/fanctrl/internal/ticker"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func RunDaemon() {
	config := configuration.CurrentConfig

	if err := curves.ValidateRegistry(); err != nil {
		ui.Fatal("Invalid built-in profile: %v", err)
	}

	if os.Geteuid() != 0 && (config.Fan.Sysfs != nil || config.Fan.Gpio != nil) {
		ui.Warning("Not running as root, controlling the fan will probably fail")
	}

	sensor, err := sensors.NewSensor(config.Sensor)
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to process sensor configuration: %v", err)
	}
	fan, err := fans.NewFan(config.Fan)
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to process fan configuration: %v", err)
	}

	sinks, history := createSinks(config)

	fanController, err := controller.NewController(config, sensor, fan, sinks, ticker.RealClock{}, configuration.ReadScheduleConfig)
	if err != nil {
		ui.FatalWithoutStacktrace("Unable to create controller: %v", err)
	}

	registerCollectors(config, fanController)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			addr := fmt.Sprintf(":%d", config.Statistics.Port)
			addServer(&g, "statistics", api.CreateWebserver(), addr)
		}
	}
	{
		if config.Api.Enabled {
			// === REST API
			rest := api.CreateRestService(fanController, history, prometheus.DefaultRegisterer)
			addr := fmt.Sprintf("%s:%d", config.Api.Host, config.Api.Port)
			addServer(&g, "api", rest, addr)
		}
	}
	{
		// === fan controller
		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", fan.GetId())
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %s signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		ui.ErrorAndNotify("fanctrl stopped", "Fan control failed, the fan was stopped: %v", err)
		os.Exit(1)
	}
	ui.Info("Done.")
}

// createSinks creates all enabled state record outputs.
// Outputs that cannot be created are skipped, the controller does not depend on them.
func createSinks(config configuration.Configuration) (statelog.Multi, persistence.Persistence) {
	sinks := statelog.Multi{statelog.LogSink{}}

	var history persistence.Persistence
	if config.History.Enabled {
		p := persistence.NewPersistence(config.DbPath, config.History.MaxRecords)
		if err := p.Init(); err != nil {
			ui.Warning("Unable to initialize history, state records will not be stored: %v", err)
		} else {
			history = p
			sinks = append(sinks, p)
		}
	}

	if config.StatusFile != "" {
		sinks = append(sinks, statelog.StatusFileSink{Path: config.StatusFile})
	}

	if config.Mqtt.Enabled {
		publisher, err := mqtt.NewRealPublisher(config.Mqtt)
		if err != nil {
			ui.Warning("Unable to connect to MQTT broker %s, state records will not be published: %v", config.Mqtt.Broker, err)
		} else {
			sinks = append(sinks, publisher)
		}
	}

	return sinks, history
}

func registerCollectors(config configuration.Configuration, source statistics.StateSource) {
	if !config.Statistics.Enabled {
		return
	}
	statistics.Register(statistics.NewControllerCollector(config.Fan.ID, source))
	statistics.Register(statistics.NewFanCollector(config.Fan.ID, source))
	statistics.Register(statistics.NewSensorCollector(config.Sensor.ID, source))
	statistics.Register(statistics.NewProfileCollector(source))
}

func addServer(g *run.Group, name string, server *echo.Echo, addr string) {
	g.Add(func() error {
		ui.Info("Starting %s server on %s", name, addr)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ui.Error("Cannot start %s server (%v)", name, err)
			return err
		}
		return nil
	}, func(err error) {
		ui.Info("Stopping %s server...", name)
		timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer timeoutCancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			ui.Warning("Error stopping %s server: %v", name, err)
		}
	})
}
