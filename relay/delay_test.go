package relay_test

import (
	"context"
	"crypto/sha256"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Warchant/interbtc-clients/relay"
)

func TestBoundedDelayDeterministic(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(20))

	var entropy [sha256.Size]byte
	r.Read(entropy[:])
	delay := relay.NewBoundedDelayWithEntropy(zap.NewNop(), 10, time.Second, entropy)

	var seed [sha256.Size]byte
	r.Read(seed[:])

	first := delay.Wait(seed)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, delay.Wait(seed))
	}
}

func TestBoundedDelayWithinBounds(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(21))

	const (
		maxSlots = 10
		slot     = time.Second
	)

	var entropy [sha256.Size]byte
	r.Read(entropy[:])
	delay := relay.NewBoundedDelayWithEntropy(zap.NewNop(), maxSlots, slot, entropy)

	for i := 0; i < 1000; i++ {
		var seed [sha256.Size]byte
		r.Read(seed[:])
		require.LessOrEqual(t, delay.Wait(seed), maxSlots*slot)
	}
}

func TestBoundedDelayDivergesAcrossEntropy(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(22))

	var seed [sha256.Size]byte
	r.Read(seed[:])

	waits := make(map[time.Duration]struct{})
	for i := 0; i < 32; i++ {
		var entropy [sha256.Size]byte
		r.Read(entropy[:])
		delay := relay.NewBoundedDelayWithEntropy(zap.NewNop(), 1000, time.Second, entropy)
		waits[delay.Wait(seed)] = struct{}{}
	}

	// relayers with different entropy must not all pick the same slot
	require.Greater(t, len(waits), 1)
}

func TestBoundedDelayZeroSlots(t *testing.T) {
	t.Parallel()

	delay := relay.NewBoundedDelayWithEntropy(zap.NewNop(), 0, time.Hour, [sha256.Size]byte{})

	var seed [sha256.Size]byte
	require.Zero(t, delay.Wait(seed))
	require.NoError(t, delay.Delay(context.Background(), seed))
}

func TestBoundedDelayCancellation(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(23))

	var entropy [sha256.Size]byte
	r.Read(entropy[:])
	delay := relay.NewBoundedDelayWithEntropy(zap.NewNop(), 100, time.Hour, entropy)

	// find a seed with a non-zero wait so the cancellation path is exercised
	var seed [sha256.Size]byte
	for delay.Wait(seed) == 0 {
		r.Read(seed[:])
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := delay.Delay(ctx, seed)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Minute)
}

func TestZeroDelay(t *testing.T) {
	t.Parallel()

	require.NoError(t, relay.ZeroDelay{}.Delay(context.Background(), [sha256.Size]byte{}))
}
