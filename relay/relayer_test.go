package relay_test

import (
	"context"
	"crypto/sha256"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Warchant/interbtc-clients/config"
	"github.com/Warchant/interbtc-clients/metrics"
	"github.com/Warchant/interbtc-clients/relay"
)

func testRelayConfig() *config.RelayConfig {
	return &config.RelayConfig{
		PollInterval:      20 * time.Millisecond,
		MaxHeadersInBatch: 10,
		CatchUpMargin:     6,
	}
}

func newTestRelayer(
	t *testing.T,
	cfg *config.RelayConfig,
	source *fakeHeaderSource,
	gateway relay.Issuing,
	randomDelay relay.RandomDelay,
) *relay.Relayer {
	t.Helper()

	relayer, err := relay.New(
		cfg,
		zap.NewNop(),
		source,
		gateway,
		randomDelay,
		10*time.Millisecond,
		100*time.Millisecond,
		3,
		metrics.NewRelayerMetrics(),
	)
	require.NoError(t, err)

	return relayer
}

func TestRelayerCatchUp(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(30))
	ctx := context.Background()

	// local node at height 150, relay stuck at 99
	headers := genHeaderChain(t, r, 61)
	source := &fakeHeaderSource{startHeight: 90, headers: headers}

	chain := newFakeChainClient()
	gateway := relay.NewGateway(zap.NewNop(), chain)
	require.NoError(t, gateway.Initialize(ctx, headers[9], 99))

	relayer := newTestRelayer(t, testRelayConfig(), source, gateway, relay.ZeroDelay{})
	relayer.Start()
	defer func() {
		relayer.Stop()
		relayer.WaitForShutdown()
	}()

	require.Eventually(t, func() bool {
		height, err := gateway.GetBestHeight(ctx)

		return err == nil && height == 150 && relayer.State() == relay.StateTrackingTip
	}, 5*time.Second, 10*time.Millisecond)

	// the gap was closed in batches, not header by header
	require.Zero(t, chain.StoreCalls())
	require.Equal(t, 6, chain.BatchCalls())

	hash, err := gateway.GetBlockHash(ctx, 150)
	require.NoError(t, err)
	require.Equal(t, headers[60].Hash(), hash)
}

func TestRelayerInitializesFromCheckpoint(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(31))
	ctx := context.Background()

	headers := genHeaderChain(t, r, 61)
	source := &fakeHeaderSource{startHeight: 90, headers: headers}

	chain := newFakeChainClient()
	gateway := relay.NewGateway(zap.NewNop(), chain)

	cfg := testRelayConfig()
	cfg.CheckpointHeight = 120

	relayer := newTestRelayer(t, cfg, source, gateway, relay.ZeroDelay{})
	relayer.Start()
	defer func() {
		relayer.Stop()
		relayer.WaitForShutdown()
	}()

	require.Eventually(t, func() bool {
		height, err := gateway.GetBestHeight(ctx)

		return err == nil && height == 150
	}, 5*time.Second, 10*time.Millisecond)

	hash, err := gateway.GetBlockHash(ctx, 120)
	require.NoError(t, err)
	require.Equal(t, headers[30].Hash(), hash)
}

func TestRelayerInitializesFromLocalTip(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(32))
	ctx := context.Background()

	headers := genHeaderChain(t, r, 11)
	source := &fakeHeaderSource{startHeight: 140, headers: headers}

	chain := newFakeChainClient()
	gateway := relay.NewGateway(zap.NewNop(), chain)

	// checkpoint height 0 means seed the relay with the current local tip
	relayer := newTestRelayer(t, testRelayConfig(), source, gateway, relay.ZeroDelay{})
	relayer.Start()
	defer func() {
		relayer.Stop()
		relayer.WaitForShutdown()
	}()

	require.Eventually(t, func() bool {
		initialized, err := gateway.IsInitialized(ctx)

		return err == nil && initialized
	}, 5*time.Second, 10*time.Millisecond)

	hash, err := gateway.GetBlockHash(ctx, 150)
	require.NoError(t, err)
	require.Equal(t, headers[10].Hash(), hash)
}

// TestRelayerRace runs two independent relayers against one light client. The
// zero-delay relayer wins each submission; the delayed one finds the header
// stored during its recheck and never writes.
func TestRelayerRace(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(33))
	ctx := context.Background()

	headers := genHeaderChain(t, r, 61)
	sourceA := &fakeHeaderSource{startHeight: 90, headers: headers}
	sourceB := &fakeHeaderSource{startHeight: 90, headers: headers}

	chain := newFakeChainClient()
	gatewayA := relay.NewGateway(zap.NewNop(), chain)
	gatewayB := relay.NewGateway(zap.NewNop(), chain)
	require.NoError(t, gatewayA.Initialize(ctx, headers[59], 149))

	// a delay long enough that the zero-delay relayer always wins
	var delayB *relay.BoundedDelay
	for i := 0; i < 256; i++ {
		candidate := relay.NewBoundedDelayWithEntropy(zap.NewNop(), 3, 300*time.Millisecond, [sha256.Size]byte{byte(i)})
		if candidate.Wait(headers[60].Seed()) >= 300*time.Millisecond {
			delayB = candidate
			break
		}
	}
	require.NotNil(t, delayB)

	relayerA := newTestRelayer(t, testRelayConfig(), sourceA, gatewayA, relay.ZeroDelay{})
	relayerB := newTestRelayer(t, testRelayConfig(), sourceB, gatewayB, delayB)

	relayerA.Start()
	relayerB.Start()
	defer func() {
		relayerA.Stop()
		relayerB.Stop()
		relayerA.WaitForShutdown()
		relayerB.WaitForShutdown()
	}()

	require.Eventually(t, func() bool {
		height, err := gatewayA.GetBestHeight(ctx)

		return err == nil && height == 150
	}, 5*time.Second, 10*time.Millisecond)

	// give the delayed relayer time to wake up and recheck
	time.Sleep(time.Second)

	require.Equal(t, 1, chain.StoreCalls())
	require.Equal(t, relay.StateTrackingTip, relayerA.State())
	require.Equal(t, relay.StateTrackingTip, relayerB.State())
}

// blockingDelay suspends until the relayer shuts down, signalling once the
// wait has started.
type blockingDelay struct {
	entered chan struct{}
	once    sync.Once
}

func (d *blockingDelay) Delay(ctx context.Context, _ [sha256.Size]byte) error {
	d.once.Do(func() { close(d.entered) })
	<-ctx.Done()

	return ctx.Err()
}

func TestRelayerCleanShutdownDuringDelay(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(34))
	ctx := context.Background()

	headers := genHeaderChain(t, r, 61)
	source := &fakeHeaderSource{startHeight: 90, headers: headers}

	chain := newFakeChainClient()
	gateway := relay.NewGateway(zap.NewNop(), chain)
	require.NoError(t, gateway.Initialize(ctx, headers[59], 149))

	delay := &blockingDelay{entered: make(chan struct{})}
	relayer := newTestRelayer(t, testRelayConfig(), source, gateway, delay)
	relayer.Start()

	select {
	case <-delay.entered:
	case <-time.After(5 * time.Second):
		t.Fatal("relayer never reached the submission delay")
	}

	relayer.Stop()
	relayer.WaitForShutdown()

	// the suspended submission was abandoned without touching the relay
	require.Zero(t, chain.StoreCalls())
	height, err := gateway.GetBestHeight(ctx)
	require.NoError(t, err)
	require.Equal(t, uint32(149), height)
}

func TestRelayerStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "uninitialized", relay.StateUninitialized.String())
	require.Equal(t, "catching-up", relay.StateCatchingUp.String())
	require.Equal(t, "tracking-tip", relay.StateTrackingTip.String())
}

func TestRelayerRejectsNilCollaborators(t *testing.T) {
	t.Parallel()

	_, err := relay.New(testRelayConfig(), zap.NewNop(), nil, nil, relay.ZeroDelay{},
		time.Millisecond, time.Millisecond, 1, metrics.NewRelayerMetrics())
	require.Error(t, err)

	_, err = relay.New(testRelayConfig(), zap.NewNop(), nil, relay.NewGateway(zap.NewNop(), newFakeChainClient()), nil,
		time.Millisecond, time.Millisecond, 1, metrics.NewRelayerMetrics())
	require.Error(t, err)
}
