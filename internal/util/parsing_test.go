package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseStringAs(t *testing.T) {
	assert.Equal(t, "hello", ParseStringAs("hello", "def"))
	assert.Equal(t, `quoted`, ParseStringAs(`"quoted"`, "def"))
	assert.Equal(t, 42, ParseStringAs("42", 0))
	assert.Equal(t, int64(-7), ParseStringAs("-7", int64(0)))
	assert.Equal(t, 2.5, ParseStringAs("2.5", 0.0))
	assert.Equal(t, true, ParseStringAs("true", false))
	assert.Equal(t, 150*time.Millisecond, ParseStringAs("150ms", time.Duration(0)))
	assert.True(t, decimal.RequireFromString("1.05").Equal(ParseStringAs("1.05", decimal.Zero)))

	ts := ParseStringAs("2026-08-23T10:00:00Z", time.Time{})
	assert.Equal(t, 2026, ts.Year())
}

func TestParseStringAsFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 9, ParseStringAs("not-a-number", 9))
	assert.Equal(t, time.Second, ParseStringAs("???", time.Second))
	assert.Equal(t, false, ParseStringAs("maybe", false))
}

func TestGetenv(t *testing.T) {
	t.Setenv("GLOWSYNC_TEST_INTERVAL", "80ms")
	assert.Equal(t, 80*time.Millisecond, Getenv("GLOWSYNC_TEST_INTERVAL", time.Second))
	assert.Equal(t, time.Second, Getenv("GLOWSYNC_TEST_MISSING", time.Second))

	t.Setenv("GLOWSYNC_TEST_THRESHOLD", "0.1")
	got := Getenv("GLOWSYNC_TEST_THRESHOLD", decimal.NewFromInt(2))
	assert.True(t, decimal.RequireFromString("0.1").Equal(got))
	assert.Equal(t, "0.1", got.String())
}

func TestRandomString(t *testing.T) {
	for _, l := range []int{1, 6, 32, 64} {
		s := RandomString(l)
		assert.Len(t, s, l)
		assert.NotContains(t, s, "-")
	}
	assert.NotEqual(t, RandomString(16), RandomString(16))
}
