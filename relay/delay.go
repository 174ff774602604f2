package relay

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// RandomDelay decides how long a relayer waits before submitting a given
// header. Concurrent relayers run the same policy with different entropy, so
// their waits diverge; whoever wakes last finds the header already stored and
// skips its own submission.
type RandomDelay interface {
	// Delay suspends until the policy's wait for the given seed elapses or
	// ctx is cancelled, in which case ctx.Err() is returned.
	Delay(ctx context.Context, seed [sha256.Size]byte) error
}

// ZeroDelay never waits. Suitable for tests and single-relayer deployments
// where flooding is not a concern.
type ZeroDelay struct{}

var _ RandomDelay = ZeroDelay{}

func (ZeroDelay) Delay(_ context.Context, _ [sha256.Size]byte) error {
	return nil
}

// BoundedDelay waits between zero and maxSlots slots. The slot count is
// derived from the seed and a per-instance entropy value, so the same relayer
// always waits the same time for a given header while distinct relayers
// spread out over the slot range.
type BoundedDelay struct {
	maxSlots     uint64
	slotDuration time.Duration
	entropy      [sha256.Size]byte
	logger       *zap.SugaredLogger
}

var _ RandomDelay = (*BoundedDelay)(nil)

func NewBoundedDelay(parentLogger *zap.Logger, maxSlots uint64, slotDuration time.Duration) (*BoundedDelay, error) {
	var entropy [sha256.Size]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		return nil, errors.Wrap(err, "failed to draw delay entropy")
	}

	return NewBoundedDelayWithEntropy(parentLogger, maxSlots, slotDuration, entropy), nil
}

// NewBoundedDelayWithEntropy fixes the entropy, making the policy fully
// deterministic. Used in tests.
func NewBoundedDelayWithEntropy(
	parentLogger *zap.Logger,
	maxSlots uint64,
	slotDuration time.Duration,
	entropy [sha256.Size]byte,
) *BoundedDelay {
	return &BoundedDelay{
		maxSlots:     maxSlots,
		slotDuration: slotDuration,
		entropy:      entropy,
		logger:       parentLogger.With(zap.String("module", "random-delay")).Sugar(),
	}
}

// Wait returns the duration the policy will wait for the given seed.
func (d *BoundedDelay) Wait(seed [sha256.Size]byte) time.Duration {
	if d.maxSlots == 0 {
		return 0
	}

	h := sha256.New()
	h.Write(seed[:])
	h.Write(d.entropy[:])
	digest := h.Sum(nil)

	slots := binary.BigEndian.Uint64(digest[:8]) % (d.maxSlots + 1)

	return time.Duration(slots) * d.slotDuration // #nosec G115 -- slots is bounded by maxSlots
}

func (d *BoundedDelay) Delay(ctx context.Context, seed [sha256.Size]byte) error {
	wait := d.Wait(seed)
	if wait == 0 {
		return nil
	}

	d.logger.Debugf("Waiting %s before submitting", wait)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
