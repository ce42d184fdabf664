package controller

import (
	"context"
	"errors"
	"fmt"
	"github.com/asecurityteam/rolling"
	"github.com/markusressel/fanctrl/internal/configuration"
	"github.com/markusressel/fanctrl/internal/control_loop"
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/markusressel/fanctrl/internal/fans"
	"github.com/markusressel/fanctrl/internal/schedule"
	"github.com/markusressel/fanctrl/internal/sensors"
	"github.com/markusressel/fanctrl/internal/statelog"
	"github.com/markusressel/fanctrl/internal/ticker"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/markusressel/fanctrl/internal/util"
	"io"
	"sync"
	"time"
)

// ScheduleSource provides the most recent schedule configuration
type ScheduleSource func() schedule.Config

// Controller drives a single fan based on a single temperature sensor.
//
// All fields except state are only ever touched by the goroutine calling Run.
type Controller struct {
	config         configuration.Configuration
	sensor         sensors.Sensor
	fan            fans.Fan
	sink           statelog.Sink
	clock          ticker.Clock
	scheduleSource ScheduleSource

	timing   *ticker.Timing
	loop     *control_loop.ExponentialControlLoop
	schedule schedule.Config
	profile  curves.Curve

	temperatures       *rolling.PointPolicy
	temperatureSamples int
	temperatureRead    bool
	dutyCycleWritten   bool

	mu    sync.RWMutex
	state State
}

func NewController(
	config configuration.Configuration,
	sensor sensors.Sensor,
	fan fans.Fan,
	sink statelog.Sink,
	clock ticker.Clock,
	scheduleSource ScheduleSource,
) (*Controller, error) {
	timing, err := ticker.NewTiming(config.UpdateFanInterval, config.LogInterval, config.ConfigUpdateInterval, clock.Now())
	if err != nil {
		return nil, err
	}

	// hold the readings of one log interval
	samples := int(timing.LogInterval / timing.FanUpdateInterval)
	if samples < 1 {
		samples = 1
	}

	return &Controller{
		config:             config,
		sensor:             sensor,
		fan:                fan,
		sink:               sink,
		clock:              clock,
		scheduleSource:     scheduleSource,
		timing:             timing,
		loop:               control_loop.NewExponentialControlLoop(timing.FanUpdatePeriod(), config.FanChangeCharacteristicTime),
		schedule:           config.Schedule,
		temperatures:       util.CreateRollingWindow(samples),
		temperatureSamples: samples,
		state: State{
			Phase: PhaseStartup,
		},
	}, nil
}

// Snapshot returns a copy of the current state, safe to use from any goroutine
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Controller) Timing() ticker.Timing {
	return *c.timing
}

func (c *Controller) update(f func(state *State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(&c.state)
}

// Run starts the fan, then updates it on every tick until the context is cancelled
// or an error occurs. The fan is stopped on every exit path.
//
// Returns nil if the context was cancelled.
func (c *Controller) Run(ctx context.Context) (err error) {
	defer func() {
		shutdownErr := c.Shutdown()
		if shutdownErr != nil {
			ui.Error("Error during shutdown: %v", shutdownErr)
		}
	}()

	err = c.Startup(ctx)
	if err != nil {
		return ignoreCancellation(err)
	}

	c.timing.Align(c.clock.Now())
	ui.Info("Starting control loop with a tick period of %v", c.timing.Period)
	for {
		if ctx.Err() != nil {
			return nil
		}

		err = c.Tick(c.clock.Now())
		if err != nil {
			return err
		}

		c.timing.Advance()
		err = c.clock.Sleep(ctx, c.timing.SleepDuration(c.clock.Now()))
		if err != nil {
			return ignoreCancellation(err)
		}
	}
}

func ignoreCancellation(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// Startup resolves the schedule and runs the fan at full speed for a moment,
// so that it can be heard working, before settling on the intensity for the
// current temperature.
func (c *Controller) Startup(ctx context.Context) error {
	ui.Info("Beginning startup procedure")
	c.update(func(state *State) {
		state.Phase = PhaseStartup
	})

	c.UpdateFromConfig(c.clock.Now())

	err := c.writeDutyCycle(fans.MaxDutyCycle)
	if err != nil {
		return err
	}
	err = c.clock.Sleep(ctx, c.config.StartupSelfTestDuration)
	if err != nil {
		return err
	}

	err = c.UpdateFanSetting(control_loop.NewExponentialControlLoopWithFactor(control_loop.SnapFactor))
	if err != nil {
		return err
	}

	c.update(func(state *State) {
		state.Phase = PhaseRunning
	})
	ui.Info("Startup procedure complete")
	return nil
}

// Tick runs all actions that are due at the current tick
func (c *Controller) Tick(now time.Time) error {
	if c.timing.IsConfigUpdateTick() {
		c.UpdateFromConfig(now)
	}

	c.switchProfileIfDue(now)

	if c.timing.IsFanUpdateTick() {
		err := c.UpdateFanSetting(c.loop)
		if err != nil {
			return err
		}
	}

	if c.timing.IsLogTick() {
		c.recordState(now)
	}

	return nil
}

// UpdateFromConfig reloads the schedule and determines the active profile
func (c *Controller) UpdateFromConfig(now time.Time) {
	if c.scheduleSource != nil {
		c.schedule = c.scheduleSource()
	}
	c.applySchedule(now)
}

func (c *Controller) applySchedule(now time.Time) {
	resolution := schedule.Resolve(now, c.schedule)
	if !resolution.SwitchAt.After(now) {
		// exactly at the switching time, the upcoming profile takes over
		resolution = schedule.Resolve(now.Add(time.Nanosecond), c.schedule)
	}

	profile, ok := curves.GetProfile(resolution.Active)
	if !ok {
		// the schedule is validated when loading, this is just a safety net
		ui.Warning("Unknown profile '%s', using '%s'", resolution.Active, schedule.DefaultConfig.DayProfile)
		profile, _ = curves.GetProfile(schedule.DefaultConfig.DayProfile)
	}

	previous := c.Snapshot().ActiveProfile
	if previous != "" && previous != profile.Name {
		ui.Info("Switching from profile %s to %s", previous, profile.Name)
	}

	c.profile = profile.Curve
	c.update(func(state *State) {
		state.ActiveProfile = profile.Name
		state.NextProfile = resolution.Next
		state.SwitchAt = resolution.SwitchAt
	})
	ui.Debug("Active profile: %s, switching to %s at %s", profile.Name, resolution.Next, resolution.SwitchAt.Format(time.RFC3339))
}

func (c *Controller) switchProfileIfDue(now time.Time) {
	switchAt := c.Snapshot().SwitchAt
	if switchAt.IsZero() || now.Before(switchAt) {
		return
	}
	c.applySchedule(now)
}

// UpdateFanSetting reads the current temperature and moves the fan intensity
// towards the intensity of the active profile, using the given control loop.
func (c *Controller) UpdateFanSetting(loop control_loop.ControlLoop) error {
	temperature, err := c.sensor.GetValue()
	if err != nil {
		return fmt.Errorf("sensor %s: %w", c.sensor.GetId(), err)
	}
	c.recordTemperature(temperature)

	target, err := curves.Interpolate(c.profile, temperature)
	if err != nil {
		return err
	}

	state := c.Snapshot()
	value := loop.Cycle(state.Intensity, target)

	intensity := control_loop.Percent(value)
	if value == 0 {
		if control_loop.ShouldTreatZeroAsOff(c.profile, state.DutyCycle, target, temperature, c.config.FanOffTempHysteresis) {
			intensity = control_loop.Off()
		} else if !state.Intensity.IsOff() {
			intensity = state.Intensity
		}
	}

	c.update(func(state *State) {
		state.Temperature = temperature
	})
	return c.commit(intensity)
}

// commit applies the given intensity to the fan
func (c *Controller) commit(intensity control_loop.Intensity) error {
	dutyCycle := 0.0
	if !intensity.IsOff() {
		dutyCycle = curves.MustInterpolate(curves.FanScaling, intensity.Value())
	}

	err := c.writeDutyCycle(dutyCycle)
	if err != nil {
		return err
	}

	c.update(func(state *State) {
		state.Intensity = intensity
	})
	return nil
}

func (c *Controller) writeDutyCycle(dutyCycle float64) error {
	if c.dutyCycleWritten && c.Snapshot().DutyCycle == dutyCycle {
		return nil
	}

	err := c.fan.SetDutyCycle(c.config.Fan.PwmFrequency, dutyCycle)
	if err != nil {
		return fmt.Errorf("fan %s: %w", c.fan.GetId(), err)
	}
	c.dutyCycleWritten = true

	c.update(func(state *State) {
		state.DutyCycle = dutyCycle
	})
	return nil
}

func (c *Controller) recordTemperature(temperature float64) {
	if !c.temperatureRead {
		// the statistics would be skewed by the zero values of an unused window
		util.FillWindow(c.temperatures, c.temperatureSamples, temperature)
		c.temperatureRead = true
		return
	}
	c.temperatures.Append(temperature)
}

func (c *Controller) recordState(now time.Time) {
	state := c.Snapshot()
	record := statelog.Record{
		Timestamp:     now,
		DutyCycle:     state.DutyCycle,
		Intensity:     state.Intensity,
		Temperature:   state.Temperature,
		ActiveProfile: state.ActiveProfile,
		NextProfile:   state.NextProfile,
		SwitchAt:      state.SwitchAt,
	}
	if c.temperatureRead {
		record.MinTemperature = util.GetWindowMin(c.temperatures)
		record.AvgTemperature = util.GetWindowAvg(c.temperatures)
		record.MaxTemperature = util.GetWindowMax(c.temperatures)
	}

	err := c.sink.Record(record)
	if err != nil {
		ui.Warning("Unable to record state: %v", err)
	}
}

// Shutdown stops the fan, records the final state and releases all outputs.
// Calling it more than once has no effect.
func (c *Controller) Shutdown() error {
	phase := c.Snapshot().Phase
	if phase == PhaseShuttingDown || phase == PhaseTerminated {
		return nil
	}
	c.update(func(state *State) {
		state.Phase = PhaseShuttingDown
	})
	ui.Info("Shutting down, stopping fan...")

	var errs []error

	c.dutyCycleWritten = false
	err := c.commit(control_loop.Off())
	if err != nil {
		errs = append(errs, err)
	}

	c.recordState(c.clock.Now())

	if closer, ok := c.sink.(io.Closer); ok {
		err = closer.Close()
		if err != nil {
			errs = append(errs, err)
		}
	}
	err = c.fan.Close()
	if err != nil {
		errs = append(errs, fmt.Errorf("fan %s: %w", c.fan.GetId(), err))
	}

	c.update(func(state *State) {
		state.Phase = PhaseTerminated
	})
	ui.Info("Graceful shutdown complete")
	return errors.Join(errs...)
}
