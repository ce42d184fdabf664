package configuration

import (
	"reflect"
	"strconv"

	"github.com/markusressel/fanctrl/internal/schedule"
	"github.com/mitchellh/mapstructure"
)

// Optional is a container for configuration values that may be absent.
type Optional[T any] struct {
	Value T
	// Present indicates if the value was present in the configuration
	Present bool
}

// DefaultTrueBool is a boolean that is true unless explicitly configured otherwise
type DefaultTrueBool struct {
	Optional[bool]
}

func (b DefaultTrueBool) Get() bool {
	if !b.Present {
		return true
	}
	return b.Value
}

// defaultTrueBoolHookFunc returns a mapstructure decode hook that marks a configured DefaultTrueBool as present.
func defaultTrueBoolHookFunc() mapstructure.DecodeHookFuncType {
	defaultTrueBoolType := reflect.TypeOf(DefaultTrueBool{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != defaultTrueBoolType {
			return data, nil
		}

		var value bool
		switch v := data.(type) {
		case bool:
			value = v
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return data, nil
			}
			value = parsed
		default:
			return data, nil
		}

		return DefaultTrueBool{
			Optional: Optional[bool]{
				Value:   value,
				Present: true,
			},
		}, nil
	}
}

// scheduleTypesHookFunc returns a mapstructure decode hook that parses
// "HH:MM" strings into schedule.TimeOfDay and "HH:MM-HH:MM" strings into schedule.NightHours.
func scheduleTypesHookFunc() mapstructure.DecodeHookFuncType {
	timeOfDayType := reflect.TypeOf(schedule.TimeOfDay{})
	nightHoursType := reflect.TypeOf(schedule.NightHours{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		text, ok := data.(string)
		if !ok {
			return data, nil
		}

		switch t {
		case timeOfDayType:
			return schedule.ParseTimeOfDay(text)
		case nightHoursType:
			return schedule.ParseNightHours(text)
		}

		return data, nil
	}
}
