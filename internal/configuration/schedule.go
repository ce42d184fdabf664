package configuration

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/markusressel/fanctrl/internal/curves"
	"github.com/markusressel/fanctrl/internal/schedule"
	"github.com/markusressel/fanctrl/internal/ui"
	"github.com/markusressel/fanctrl/internal/util"
	"os"
	"strings"
)

const (
	DirectiveDayProfile   = "DayProfile"
	DirectiveNightProfile = "NightProfile"
	DirectiveNightHours   = "NightHours"
)

var (
	ErrConfigUnavailable = errors.New("schedule config unavailable")
)

// ConfigMalformedLineError describes a single directive of the schedule file that was ignored
type ConfigMalformedLineError struct {
	Path   string
	Line   int
	Text   string
	Reason string
}

func (e *ConfigMalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: %s: '%s'", e.Path, e.Line, e.Reason, e.Text)
}

// LoadScheduleConfig reads the schedule directive file at path.
//
// Every directive that is missing or malformed keeps its value from defaults.
// If the file cannot be read at all, defaults is returned along with an error wrapping
// ErrConfigUnavailable. Malformed directives are reported as *ConfigMalformedLineError,
// joined into the returned error. None of these errors prevent using the returned config.
func LoadScheduleConfig(path string, defaults schedule.Config) (schedule.Config, error) {
	expandedPath, err := util.ExpandPath(path)
	if err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	file, err := os.Open(expandedPath)
	if err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	result := defaults
	var problems []error

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		text := scanner.Text()
		err := applyDirective(&result, text)
		if err != nil {
			problems = append(problems, &ConfigMalformedLineError{
				Path:   path,
				Line:   lineNumber,
				Text:   strings.TrimSpace(text),
				Reason: err.Error(),
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return defaults, fmt.Errorf("%w: %v", ErrConfigUnavailable, err)
	}

	return result, errors.Join(problems...)
}

func applyDirective(config *schedule.Config, line string) error {
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	if len(fields) != 2 {
		return errors.New("expected a directive followed by a single value")
	}

	directive, value := fields[0], fields[1]
	switch directive {
	case DirectiveDayProfile:
		if !curves.ProfileExists(value) {
			return fmt.Errorf("unknown profile '%s'", value)
		}
		config.DayProfile = value
	case DirectiveNightProfile:
		if !curves.ProfileExists(value) {
			return fmt.Errorf("unknown profile '%s'", value)
		}
		config.NightProfile = value
	case DirectiveNightHours:
		nightHours, err := schedule.ParseNightHours(value)
		if err != nil {
			return err
		}
		config.NightHours = nightHours
	default:
		return fmt.Errorf("unknown directive '%s'", directive)
	}

	return nil
}

// ReadScheduleConfig loads the schedule file of the current configuration,
// logging every problem as a warning and falling back to the configured defaults.
func ReadScheduleConfig() schedule.Config {
	result, err := LoadScheduleConfig(CurrentConfig.SchedulePath, CurrentConfig.Schedule)
	if errors.Is(err, ErrConfigUnavailable) {
		ui.Warning("Could not read schedule file, using default schedule: %v", err)
	} else if err != nil {
		var malformed *ConfigMalformedLineError
		for _, problem := range unwrapAll(err) {
			if errors.As(problem, &malformed) {
				ui.Warning("Ignoring schedule directive %v", malformed)
			}
		}
	}
	return result
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
