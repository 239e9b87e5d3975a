package models

import (
	"fmt"
	"strconv"
)

// InstanceState is the lifecycle stage of an EC2 instance
type InstanceState string

const (
	StateRunning    InstanceState = "running"
	StateStopped    InstanceState = "stopped"
	StateTerminated InstanceState = "terminated"
)

// AllInstanceStates is the default state filter
var AllInstanceStates = []InstanceState{StateRunning, StateStopped, StateTerminated}

// ParseInstanceState converts a state name given on the command line
func ParseInstanceState(s string) (InstanceState, error) {
	for _, state := range AllInstanceStates {
		if string(state) == s {
			return state, nil
		}
	}
	return "", fmt.Errorf("unknown instance state %q (expected running, stopped or terminated)", s)
}

// NotAvailable is printed in place of values that could not be resolved
const NotAvailable = "N/A"

// InstanceTypeDetails is the outcome of an instance type lookup.
// When Known is false, Cores and MemoryMiB carry no meaning.
type InstanceTypeDetails struct {
	Known     bool
	Cores     int32
	MemoryMiB int64
}

// KnownInstanceType returns resolved instance type details
func KnownInstanceType(cores int32, memoryMiB int64) InstanceTypeDetails {
	return InstanceTypeDetails{Known: true, Cores: cores, MemoryMiB: memoryMiB}
}

// UnknownInstanceType marks details that could not be looked up
func UnknownInstanceType() InstanceTypeDetails {
	return InstanceTypeDetails{}
}

// CoresString returns the core count or N/A
func (d InstanceTypeDetails) CoresString() string {
	if !d.Known {
		return NotAvailable
	}
	return strconv.FormatInt(int64(d.Cores), 10)
}

// MemoryString returns the memory size in MiB or N/A
func (d InstanceTypeDetails) MemoryString() string {
	if !d.Known {
		return NotAvailable
	}
	return strconv.FormatInt(d.MemoryMiB, 10)
}

// InstanceInfo represents EC2 instance information
type InstanceInfo struct {
	InstanceID   string
	InstanceType string
	State        InstanceState
	Details      InstanceTypeDetails
	Region       string
}
