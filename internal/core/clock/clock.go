package clock

import (
	"fmt"
	"time"

	"github.com/penwyp/go-countdown/internal/core/constants"
	"github.com/penwyp/go-countdown/internal/util"
)

// Display is the wall clock readout shown above the countdown
type Display struct {
	Date string
	Time string
}

func (d Display) String() string {
	return d.Date + " " + d.Time
}

// Clock derives the readout from the time provider
type Clock struct {
	provider   *util.TimeProvider
	timeLayout string
}

// New creates a clock for the given time format (12h or 24h)
func New(provider *util.TimeProvider, timeFormat string) (*Clock, error) {
	layout, err := layoutFor(timeFormat)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		provider = util.GetTimeProvider()
	}
	return &Clock{provider: provider, timeLayout: layout}, nil
}

func layoutFor(timeFormat string) (string, error) {
	switch timeFormat {
	case "", "24h":
		return constants.Time24Layout, nil
	case "12h":
		return constants.Time12Layout, nil
	default:
		return "", fmt.Errorf("invalid time format '%s': must be either '12h' or '24h'", timeFormat)
	}
}

// Now returns the readout for the current instant
func (c *Clock) Now() Display {
	return c.At(time.Now())
}

// At returns the readout for t in the configured timezone
func (c *Clock) At(t time.Time) Display {
	local := c.provider.In(t)
	return Display{
		Date: local.Format(constants.DateLayout),
		Time: local.Format(c.timeLayout),
	}
}
