package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeRightWins(t *testing.T) {
	red := Basic(Red)
	blue := Basic(Blue)
	left := TuiStyle{Fg: &red, Attrs: AttrBold}
	right := TuiStyle{Fg: &blue, Attrs: AttrItalic}
	composed := left.Compose(right)
	require.Equal(t, blue, *composed.Fg)
	require.True(t, composed.Has(AttrBold))
	require.True(t, composed.Has(AttrItalic))
}

func TestComposeLeavesUnsetFieldsAlone(t *testing.T) {
	red := Basic(Red)
	left := TuiStyle{Fg: &red, Attrs: AttrBold}
	right := TuiStyle{Attrs: AttrUnderline}
	composed := left.Compose(right)
	require.Equal(t, red, *composed.Fg)
}

func TestSGRCodes(t *testing.T) {
	require.Equal(t, "39", Reset().SGRCode(true))
	require.Equal(t, "31", Basic(Red).SGRCode(true))
	require.Equal(t, "91", Basic(BrightRed).SGRCode(true))
	require.Equal(t, "38;5;200", ANSI256(200).SGRCode(true))
	require.Equal(t, "38;2;1;2;3", RGB(1, 2, 3).SGRCode(true))
	require.Equal(t, "48;2;1;2;3", RGB(1, 2, 3).SGRCode(false))
}

func TestStylesheetResolveInlineWins(t *testing.T) {
	sheet := NewStylesheet()
	red := Basic(Red)
	sheet.Put(ID(1), TuiStyle{Fg: &red, Attrs: AttrBold})

	blue := Basic(Blue)
	resolved := sheet.Resolve(TuiStyle{StyleID: ID(1), HasID: true, Fg: &blue})
	require.Equal(t, blue, *resolved.Fg)
	require.True(t, resolved.Has(AttrBold))
}

func TestColorWheelStopsProducesRequestedSteps(t *testing.T) {
	w := NewColorWheel(ColorWheelConfig{
		Kind:     GenStops,
		StopsHex: []string{"#ff0000", "#0000ff"},
		Steps:    5,
		Speed:    1,
	}, CapTrueColor)
	steps := w.StepVector()
	require.Len(t, steps, 5)
	r0, _, _ := steps[0].ResolveRGB()
	require.InDelta(t, 255, int(r0), 2)
}

func TestColorWheelDownsamplesToGrayscale(t *testing.T) {
	w := NewColorWheel(ColorWheelConfig{
		Kind:     GenStops,
		StopsHex: []string{"#ff0000", "#00ff00"},
		Steps:    3,
	}, CapGrayscale)
	for _, c := range w.StepVector() {
		r, g, b := c.ResolveRGB()
		require.Equal(t, r, g)
		require.Equal(t, g, b)
	}
}

func TestLolcatAdvancesWithSpeed(t *testing.T) {
	l := LolcatBuilder{Seed: 0, Spread: 3, Frequency: 0.1, Speed: 2}
	c0 := l.ColorAt(0)
	c1 := l.ColorAt(1)
	require.Equal(t, c0, c1) // same speed bucket
}
