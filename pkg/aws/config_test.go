package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	var o options
	for _, opt := range []Option{WithProfile("prod"), WithRegion("eu-west-1")} {
		opt(&o)
	}

	assert.Equal(t, "prod", o.profile)
	assert.Equal(t, "eu-west-1", o.region)
}
