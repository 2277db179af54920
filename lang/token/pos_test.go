package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakePos(t *testing.T) {
	p := MakePos(42)
	require.Equal(t, 42, p.Line())
	require.False(t, p.Unknown())
}

func TestPosUnknown(t *testing.T) {
	require.True(t, Pos(0).Unknown())
	require.False(t, MakePos(1).Unknown())
}
