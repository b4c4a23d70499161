package backend

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectCapabilitiesNonTerminalDefaultsConservatively(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	c := DetectCapabilities(f)
	require.False(t, c.IsTerminal)
	w, h := c.Size()
	require.Equal(t, 80, int(w))
	require.Equal(t, 24, int(h))
}

func TestCapabilitiesSetSize(t *testing.T) {
	c := &Capabilities{Width: 80, Height: 24}
	c.SetSize(100, 40)
	w, h := c.Size()
	require.Equal(t, 100, int(w))
	require.Equal(t, 40, int(h))
}
