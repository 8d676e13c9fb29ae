package theme

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Brand gradient endpoints (indigo-500 → purple-500).
const (
	gradientFrom = "#6366f1"
	gradientTo   = "#a855f7"

	gradientSteps = 8
	frameInterval = 200 * time.Millisecond
)

var (
	globalOnce sync.Once
	keyframes  []lipgloss.Color
)

// EnsureGlobalStyles builds the process-wide brand gradient keyframes. It is
// called once during bootstrap; later calls do nothing and the keyframes
// live for the rest of the process.
func EnsureGlobalStyles() {
	globalOnce.Do(func() {
		keyframes = buildKeyframes(gradientFrom, gradientTo, gradientSteps)
	})
}

// Keyframes returns the brand gradient, or nil before EnsureGlobalStyles.
func Keyframes() []lipgloss.Color {
	return keyframes
}

// FrameInterval is the delay between gradient frames.
func FrameInterval() time.Duration {
	return frameInterval
}

// GradientFrame maps t onto a keyframe index.
func GradientFrame(t time.Time) int {
	if len(keyframes) == 0 {
		return 0
	}
	return int(t.UnixMilli()/frameInterval.Milliseconds()) % len(keyframes)
}

// RenderGradient colors each rune of text starting at keyframe offset.
// Before EnsureGlobalStyles it renders text with base unchanged.
func RenderGradient(text string, offset int, base lipgloss.Style) string {
	frames := keyframes
	if len(frames) == 0 {
		return base.Render(text)
	}
	var b strings.Builder
	for i, r := range []rune(text) {
		color := frames[(offset+i)%len(frames)]
		b.WriteString(base.Foreground(color).Render(string(r)))
	}
	return b.String()
}

// buildKeyframes blends from→to→from so the animation loops without a jump.
func buildKeyframes(from, to string, steps int) []lipgloss.Color {
	start, err := colorful.Hex(from)
	if err != nil {
		return []lipgloss.Color{lipgloss.Color(from)}
	}
	end, err := colorful.Hex(to)
	if err != nil {
		return []lipgloss.Color{lipgloss.Color(from)}
	}
	if steps < 2 {
		steps = 2
	}

	out := make([]lipgloss.Color, 0, steps*2-2)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		out = append(out, lipgloss.Color(start.BlendLuv(end, t).Clamped().Hex()))
	}
	for i := steps - 2; i > 0; i-- {
		out = append(out, out[i])
	}
	return out
}
