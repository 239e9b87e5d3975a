package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/younsl/awsls/internal/models"
)

// Column widths of the instance table
const (
	instanceIDWidth = 20
	typeWidth       = 15
	coresWidth      = 6
	memoryWidth     = 10
	regionWidth     = 12
	stateWidth      = 15
)

// PrintInstancesTable prints instances as fixed-width columns in the given order.
// The state column is colored when color is true.
func PrintInstancesTable(w io.Writer, instances []models.InstanceInfo, color bool) {
	fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %-*s %-*s\n",
		instanceIDWidth, "instance id",
		typeWidth, "type",
		coresWidth, "cores",
		memoryWidth, "memory",
		regionWidth, "region",
		stateWidth, "state")

	for _, instance := range instances {
		fmt.Fprintf(w, "%-*s %-*s %-*s %-*s %-*s %s\n",
			instanceIDWidth, instance.InstanceID,
			typeWidth, instance.InstanceType,
			coresWidth, instance.Details.CoresString(),
			memoryWidth, instance.Details.MemoryString(),
			regionWidth, instance.Region,
			colorState(instance.State, stateWidth, color))
	}
}

// PrintInstancesSummary prints the instance count per state on one line
func PrintInstancesSummary(w io.Writer, instances []models.InstanceInfo) {
	if len(instances) == 0 {
		return
	}

	counts := make(map[models.InstanceState]int)
	for _, instance := range instances {
		counts[instance.State]++
	}

	parts := make([]string, 0, len(models.AllInstanceStates))
	for _, state := range models.AllInstanceStates {
		parts = append(parts, fmt.Sprintf("%d %s", counts[state], state))
	}

	fmt.Fprintf(w, "\nTotal: %d instances (%s)\n", len(instances), strings.Join(parts, ", "))
}
