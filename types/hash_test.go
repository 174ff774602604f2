package types_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/Warchant/interbtc-clients/types"
)

// hash of the Bitcoin genesis block, as displayed by explorers (big-endian)
const genesisHashHex = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"

func TestH256LeHexRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := types.NewH256LeFromHexBE(genesisHashHex)
	require.NoError(t, err)
	require.Equal(t, genesisHashHex, h.HexBE())
	require.Equal(t, genesisHashHex, h.String())

	// the first bytes of the LE form are the last bytes of the BE hex
	le := h.BytesLE()
	require.Len(t, le, types.HashLen)
	require.Equal(t, byte(0x6f), le[0])
	require.Equal(t, byte(0x00), le[types.HashLen-1])
}

func TestH256LeBytesRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := types.NewH256LeFromHexBE(genesisHashHex)
	require.NoError(t, err)

	h2, err := types.NewH256LeFromBytesLE(h.BytesLE())
	require.NoError(t, err)
	require.Equal(t, h, h2)
}

func TestH256LeDecodeFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hex  string
	}{
		{name: "not hex", hex: strings.Repeat("zz", 32)},
		{name: "too short", hex: "aabb"},
		{name: "too long", hex: strings.Repeat("ab", 33)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := types.NewH256LeFromHexBE(tt.hex)
			require.Error(t, err)
			require.True(t, errors.Is(err, types.ErrDecodeHash))
		})
	}

	_, err := types.NewH256LeFromBytesLE([]byte{0x01, 0x02})
	require.Error(t, err)
	require.True(t, errors.Is(err, types.ErrDecodeHash))
}

func TestH256LeIsZero(t *testing.T) {
	t.Parallel()

	require.True(t, types.ZeroH256Le.IsZero())

	h, err := types.NewH256LeFromHexBE(genesisHashHex)
	require.NoError(t, err)
	require.False(t, h.IsZero())
}
