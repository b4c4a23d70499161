package style

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// TerminalCapability ranks what color depth a detected terminal supports,
// used to pick "the most capable generator permitted by the detected
// terminal" (spec §4.2).
type TerminalCapability int

const (
	CapGrayscale TerminalCapability = iota
	CapANSI256
	CapTrueColor
)

// DetectTerminalCapability wraps termenv's color-profile detection.
func DetectTerminalCapability(out *termenv.Output) TerminalCapability {
	switch out.Profile() {
	case termenv.TrueColor:
		return CapTrueColor
	case termenv.ANSI256:
		return CapANSI256
	case termenv.ANSI:
		return CapANSI256
	default:
		return CapGrayscale
	}
}

// GeneratorKind enumerates the recognized gradient generators (spec §4.2).
type GeneratorKind int

const (
	GenStops GeneratorKind = iota
	GenRandom
	GenANSI256Gradient
	GenLolcat
)

// ColorWheelConfig configures one of the four generator kinds. Only the
// fields relevant to Kind are read.
type ColorWheelConfig struct {
	Kind GeneratorKind

	// GenStops
	StopsHex []string
	Steps    int

	// Shared
	Speed int // how many characters share one color

	// GenANSI256Gradient
	ANSI256GradientIndex int

	// GenLolcat
	Lolcat LolcatBuilder
}

// LolcatBuilder parameterizes the stateful hue-rotating lolcat generator by
// a (seed, spread, frequency) float triple plus a speed, per
// original_source/tui/src/core/color_wheel/gradients/truecolor.rs.
type LolcatBuilder struct {
	Seed      float64
	Spread    float64
	Frequency float64
	Speed     int
}

// NewLolcatBuilder returns a builder seeded the way the original picks a
// random session seed when none is supplied.
func NewLolcatBuilder() LolcatBuilder {
	return LolcatBuilder{Seed: rand.Float64() * 256, Spread: 3.0, Frequency: 0.1, Speed: 1}
}

// ColorAt returns the lolcat color for the i-th unit along the rotation
// (a character or word index, depending on the colorization policy).
func (l LolcatBuilder) ColorAt(i int) TuiColor {
	step := float64(i / maxInt(l.Speed, 1))
	hue := l.Frequency*step + l.Seed/l.Spread
	c := colorful.Hsv(math.Mod(hue*360, 360), 1, 1)
	r, g, b := c.RGB255()
	return RGB(r, g, b)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ColorWheel resolves a ColorWheelConfig (at a given terminal capability)
// into either a finite vector of colors (stops/random/ansi256 generators) or
// defers to a per-character lolcat evaluation.
type ColorWheel struct {
	cfg ColorWheelConfig
	cap TerminalCapability

	// cached finite gradient, built lazily by StepVector()
	steps []TuiColor
}

func NewColorWheel(cfg ColorWheelConfig, capability TerminalCapability) *ColorWheel {
	return &ColorWheel{cfg: cfg, cap: capability}
}

// IsLolcat reports whether this wheel defers to per-character evaluation
// instead of a precomputed step vector.
func (w *ColorWheel) IsLolcat() bool { return w.cfg.Kind == GenLolcat }

// ColorForIndex returns the color for the i-th colorization unit (character
// or word, per the active ColorizationPolicy), advancing through the
// generator at the configured Speed.
func (w *ColorWheel) ColorForIndex(i int) TuiColor {
	if w.cfg.Kind == GenLolcat {
		return w.cfg.Lolcat.ColorAt(i)
	}
	steps := w.StepVector()
	if len(steps) == 0 {
		return Reset()
	}
	speed := maxInt(w.cfg.Speed, 1)
	idx := (i / speed) % len(steps)
	return steps[idx]
}

// StepVector returns (and caches) the finite color vector for stop/random/
// ANSI256-gradient generators, downsampled to the wheel's detected terminal
// capability.
func (w *ColorWheel) StepVector() []TuiColor {
	if w.steps != nil {
		return w.steps
	}
	switch w.cfg.Kind {
	case GenStops:
		w.steps = interpolateStops(w.cfg.StopsHex, w.cfg.Steps)
	case GenRandom:
		w.steps = randomStops(w.cfg.Steps)
	case GenANSI256Gradient:
		w.steps = ansi256GradientSteps(w.cfg.ANSI256GradientIndex, w.cfg.Steps)
	}
	return w.downsample(w.steps)
}

// downsample clamps each generated color to what the detected terminal can
// render: truecolor passes through, ANSI256 snaps to the palette, grayscale
// desaturates.
func (w *ColorWheel) downsample(in []TuiColor) []TuiColor {
	if w.cap == CapTrueColor {
		return in
	}
	out := make([]TuiColor, len(in))
	for i, c := range in {
		r, g, b := c.ResolveRGB()
		if w.cap == CapGrayscale {
			gray := uint8((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
			out[i] = RGB(gray, gray, gray)
			continue
		}
		out[i] = ANSI256(rgbToANSI256(r, g, b))
	}
	return out
}

func rgbToANSI256(r, g, b uint8) uint8 {
	// 6x6x6 color cube, matching the inverse of ansi256ToRGB's cube mapping.
	levels := [6]int{0, 95, 135, 175, 215, 255}
	toLevel := func(v uint8) int {
		best := 0
		for i, l := range levels {
			if math.Abs(float64(int(v)-l)) < math.Abs(float64(int(v)-levels[best])) {
				best = i
			}
		}
		return best
	}
	ri, gi, bi := toLevel(r), toLevel(g), toLevel(b)
	return uint8(16 + 36*ri + 6*gi + bi)
}

// interpolateStops linearly interpolates sRGB through the given hex stops,
// producing `steps` colors via go-colorful's BlendRgb.
func interpolateStops(hexStops []string, steps int) []TuiColor {
	if len(hexStops) == 0 || steps <= 0 {
		return nil
	}
	parsed := make([]colorful.Color, 0, len(hexStops))
	for _, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			c = colorful.Color{}
		}
		parsed = append(parsed, c)
	}
	if len(parsed) == 1 {
		r, g, b := parsed[0].RGB255()
		out := make([]TuiColor, steps)
		for i := range out {
			out[i] = RGB(r, g, b)
		}
		return out
	}
	out := make([]TuiColor, steps)
	segments := len(parsed) - 1
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(maxInt(steps-1, 1))
		segF := t * float64(segments)
		seg := int(segF)
		if seg >= segments {
			seg = segments - 1
		}
		localT := segF - float64(seg)
		blended := parsed[seg].BlendRgb(parsed[seg+1], localT)
		r, g, b := blended.RGB255()
		out[i] = RGB(r, g, b)
	}
	return out
}

// randomStops picks three random stops for the session, matching the
// {random, speed} generator in spec §4.2.
func randomStops(steps int) []TuiColor {
	stops := make([]colorful.Color, 3)
	for i := range stops {
		stops[i] = colorful.Color{R: rand.Float64(), G: rand.Float64(), B: rand.Float64()}
	}
	hexes := make([]string, len(stops))
	for i, s := range stops {
		hexes[i] = s.Hex()
	}
	return interpolateStops(hexes, steps)
}

// ansi256GradientGroups names a handful of recognizable named-palette
// gradients, picked by index.
var ansi256GradientGroups = [][]uint8{
	{196, 202, 208, 214, 220, 226}, // reds to yellows
	{21, 27, 33, 39, 45, 51},       // blues to cyans
	{46, 82, 118, 154, 190, 226},   // greens to yellows
}

func ansi256GradientSteps(groupIdx, steps int) []TuiColor {
	if groupIdx < 0 || groupIdx >= len(ansi256GradientGroups) {
		groupIdx = 0
	}
	group := ansi256GradientGroups[groupIdx]
	hexes := make([]string, 0, len(group))
	for _, idx := range group {
		r, g, b := ansi256ToRGB(idx)
		hexes = append(hexes, colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex())
	}
	return interpolateStops(hexes, steps)
}

// ColorizationPolicy decides the granularity at which the gradient index
// advances (spec §4.2).
type ColorizationPolicy int

const (
	ColorEachCharacter ColorizationPolicy = iota
	ColorEachWord
)
