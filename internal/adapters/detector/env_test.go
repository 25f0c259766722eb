package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/reform/internal/adapters/detector"
)

func TestDetectEnvironment_CIForcesLinear(t *testing.T) {
	for _, value := range []string{"true", "1"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("CI", value)
			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NoTTYIsLinear(t *testing.T) {
	// Test binaries run with stderr redirected, so detection never picks the TUI.
	t.Setenv("CI", "")
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		flag     string
		auto     detector.OutputMode
		expected detector.OutputMode
	}{
		{flag: "", auto: detector.ModeTUI, expected: detector.ModeTUI},
		{flag: "auto", auto: detector.ModeLinear, expected: detector.ModeLinear},
		{flag: "tui", auto: detector.ModeLinear, expected: detector.ModeTUI},
		{flag: "linear", auto: detector.ModeTUI, expected: detector.ModeLinear},
		{flag: "ci", auto: detector.ModeTUI, expected: detector.ModeLinear},
		{flag: "json", auto: detector.ModeTUI, expected: detector.ModeQuiet},
		{flag: "bogus", auto: detector.ModeTUI, expected: detector.ModeTUI},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.auto, tt.flag))
		})
	}
}
