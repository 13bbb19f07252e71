package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelToVolume(t *testing.T) {
	assert.Equal(t, 0.0, levelToVolume(1.0), "full level should be no gain change")
	assert.Equal(t, -1.0, levelToVolume(0.5), "half level should be -1 (half volume)")
	assert.Equal(t, -2.0, levelToVolume(0.25), "quarter level should be -2")
	assert.Equal(t, -10.0, levelToVolume(0.0), "zero level should be essentially silent")
	assert.Equal(t, -10.0, levelToVolume(-0.3), "negative level clamps to silent")
	assert.Equal(t, 0.0, levelToVolume(1.7), "over-unity level clamps to no change")
}
