package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", TruncateRunes("", 50))
	assert.Equal(t, "short", TruncateRunes("short", 50))
	assert.Equal(t, "", TruncateRunes("anything", 0))
	assert.Equal(t, "", TruncateRunes("anything", -1))

	exact := strings.Repeat("a", 50)
	assert.Equal(t, exact, TruncateRunes(exact, 50))

	over := strings.Repeat("a", 51)
	assert.Equal(t, exact, TruncateRunes(over, 50))
}

func TestTruncateRunesCountsRunesNotBytes(t *testing.T) {
	japanese := strings.Repeat("寿", 60)
	got := TruncateRunes(japanese, 50)

	assert.Equal(t, 50, len([]rune(got)))
	assert.Equal(t, strings.Repeat("寿", 50), got)
}
