package formatter

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/younsl/awsls/internal/models"
)

// stateColors maps instance states to their table color.
// States missing here, terminated included, use fallbackStateColor.
var stateColors = map[models.InstanceState]text.Colors{
	models.StateRunning: {text.FgGreen},
	models.StateStopped: {text.FgYellow},
}

var fallbackStateColor = text.Colors{text.FgBlue}

// colorState pads the state to width and wraps it in its color escape codes
func colorState(state models.InstanceState, width int, color bool) string {
	padded := fmt.Sprintf("%-*s", width, state)
	if !color {
		return padded
	}

	colors, ok := stateColors[state]
	if !ok {
		colors = fallbackStateColor
	}
	return colors.Sprint(padded)
}
