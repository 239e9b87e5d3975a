package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younsl/awsls/internal/models"
)

func testInstances() []models.InstanceInfo {
	return []models.InstanceInfo{
		{InstanceID: "i-0123456789abcdef0", InstanceType: "t3.micro", State: models.StateRunning, Details: models.KnownInstanceType(1, 1024), Region: "us-east-1"},
		{InstanceID: "i-0fedcba9876543210", InstanceType: "p4d.24xlarge", State: models.StateStopped, Details: models.UnknownInstanceType(), Region: "eu-west-1"},
		{InstanceID: "i-0aaaabbbbccccdddd", InstanceType: "m5.large", State: models.StateTerminated, Details: models.KnownInstanceType(1, 8192), Region: "ap-south-1"},
	}
}

func TestPrintInstancesTable_NoColor(t *testing.T) {
	var buf bytes.Buffer
	PrintInstancesTable(&buf, testInstances(), false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "instance id          type            cores  memory     region       state          ", lines[0])
	assert.Equal(t, "i-0123456789abcdef0  t3.micro        1      1024       us-east-1    running        ", lines[1])
	assert.Equal(t, "i-0fedcba9876543210  p4d.24xlarge    N/A    N/A        eu-west-1    stopped        ", lines[2])
	assert.Equal(t, "i-0aaaabbbbccccdddd  m5.large        1      8192       ap-south-1   terminated     ", lines[3])
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrintInstancesTable_StateColors(t *testing.T) {
	var buf bytes.Buffer
	PrintInstancesTable(&buf, testInstances(), true)

	out := buf.String()
	assert.Contains(t, out, text.Colors{text.FgGreen}.Sprint("running        "))
	assert.Contains(t, out, text.Colors{text.FgYellow}.Sprint("stopped        "))
	assert.Contains(t, out, text.Colors{text.FgBlue}.Sprint("terminated     "))
}

func TestColorState_UnknownStateFallsBackToBlue(t *testing.T) {
	assert.Equal(t,
		text.Colors{text.FgBlue}.Sprint("pending  "),
		colorState(models.InstanceState("pending"), 9, true))
	assert.Equal(t, "pending  ", colorState(models.InstanceState("pending"), 9, false))
}

func TestPrintInstancesSummary(t *testing.T) {
	instances := append(testInstances(), models.InstanceInfo{InstanceID: "i-1", State: models.StateRunning})

	var buf bytes.Buffer
	PrintInstancesSummary(&buf, instances)

	assert.Equal(t, "\nTotal: 4 instances (2 running, 1 stopped, 1 terminated)\n", buf.String())
}
