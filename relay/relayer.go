package relay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/Warchant/interbtc-clients/btcclient"
	"github.com/Warchant/interbtc-clients/config"
	"github.com/Warchant/interbtc-clients/metrics"
	"github.com/Warchant/interbtc-clients/retrywrap"
	"github.com/Warchant/interbtc-clients/types"
)

// State is the driver's position in the Uninitialized -> CatchingUp ->
// TrackingTip lifecycle. Transitions only move forward during a run; a large
// height gap reappearing after downtime is handled by an explicit re-entry
// decision when the relayer starts, never by a hidden mid-run flip.
type State int32

const (
	StateUninitialized State = iota
	StateCatchingUp
	StateTrackingTip
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCatchingUp:
		return "catching-up"
	case StateTrackingTip:
		return "tracking-tip"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Relayer drives the header relay: check initialization, determine the next
// headers needed, submit them through the gateway, verify acceptance, and
// advance. Remote failures are retried here with backoff; the gateway itself
// never retries.
type Relayer struct {
	cfg    *config.RelayConfig
	logger *zap.SugaredLogger

	btcClient   btcclient.HeaderSource
	gateway     Issuing
	randomDelay RandomDelay

	// retry attributes
	retrySleepTime    time.Duration
	maxRetrySleepTime time.Duration
	maxRetryTimes     uint

	state   *atomic.Int32
	metrics *metrics.RelayerMetrics
	wg      sync.WaitGroup
	started bool
	quit    chan struct{}
	quitMu  sync.Mutex
}

func New(
	cfg *config.RelayConfig,
	parentLogger *zap.Logger,
	btcClient btcclient.HeaderSource,
	gateway Issuing,
	randomDelay RandomDelay,
	retrySleepTime,
	maxRetrySleepTime time.Duration,
	maxRetryTimes uint,
	metrics *metrics.RelayerMetrics,
) (*Relayer, error) {
	if gateway == nil {
		return nil, errors.New("gateway must not be nil")
	}
	if randomDelay == nil {
		return nil, errors.New("random delay must not be nil")
	}

	return &Relayer{
		cfg:               cfg,
		logger:            parentLogger.With(zap.String("module", "relayer")).Sugar(),
		btcClient:         btcClient,
		gateway:           gateway,
		randomDelay:       randomDelay,
		retrySleepTime:    retrySleepTime,
		maxRetrySleepTime: maxRetrySleepTime,
		maxRetryTimes:     maxRetryTimes,
		state:             atomic.NewInt32(int32(StateUninitialized)),
		metrics:           metrics,
		quit:              make(chan struct{}),
	}, nil
}

// Start starts the goroutines necessary to run the relayer.
func (r *Relayer) Start() {
	r.quitMu.Lock()
	select {
	case <-r.quit:
		// Restart the relayer goroutines after shutdown finishes.
		r.WaitForShutdown()
		r.quit = make(chan struct{})
	default:
		// Ignore when the relayer is still running.
		if r.started {
			r.quitMu.Unlock()

			return
		}
		r.started = true
	}
	r.quitMu.Unlock()

	r.wg.Add(1)
	go r.relayLoop()

	// start record time-related metrics
	r.metrics.RecordMetrics()

	r.logger.Infof("Successfully started the header relayer")
}

// State returns the driver's current lifecycle state.
func (r *Relayer) State() State {
	return State(r.state.Load())
}

func (r *Relayer) setState(next State) {
	prev := State(r.state.Swap(int32(next)))
	if prev != next {
		r.logger.Infof("State transition: %s -> %s", prev, next)
		r.metrics.RelayerStateGauge.Set(float64(next))
	}
}

// quitChan atomically reads the quit channel.
func (r *Relayer) quitChan() <-chan struct{} {
	r.quitMu.Lock()
	c := r.quit
	r.quitMu.Unlock()

	return c
}

// Stop signals all relayer goroutines to shutdown.
func (r *Relayer) Stop() {
	r.quitMu.Lock()
	quit := r.quit
	r.quitMu.Unlock()

	select {
	case <-quit:
	default:
		// closing the `quit` channel will trigger all select case `<-quit`,
		// and thus making all handler routines to break the for loop.
		close(quit)
	}
}

// ShuttingDown returns whether the relayer is currently in the process of shutting down or not.
func (r *Relayer) ShuttingDown() bool {
	select {
	case <-r.quitChan():
		return true
	default:
		return false
	}
}

// WaitForShutdown blocks until all relayer goroutines have finished executing.
func (r *Relayer) WaitForShutdown() {
	r.wg.Wait()
}

// quitCtx returns a context cancelled when the relayer shuts down, so that
// suspended delays and remote calls are abandoned cleanly.
func (r *Relayer) quitCtx() (context.Context, func()) {
	quit := r.quitChan()
	ctx, cancel := context.WithCancel(context.Background())
	r.wg.Add(1)
	go func() {
		defer cancel()
		defer r.wg.Done()

		select {
		case <-quit:

		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func (r *Relayer) relayLoop() {
	defer r.wg.Done()

	ctx, cancel := r.quitCtx()
	defer cancel()

	if err := r.ensureInitialized(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// we failed to initialize multiple times, something unexpected is happening
		r.logger.Fatalf("Failed to initialize the BTC relay: %v", err)
	}

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if err := r.relayOnce(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			r.logger.Warnf("Failed to relay headers: %v", err)
		}

		select {
		case <-ticker.C:
		case <-r.quitChan():
			return
		}
	}
}

// ensureInitialized seeds the light client with the trusted checkpoint if it
// has not been initialized yet, and picks the starting state. The choice
// between catching up and tracking the tip after a restart is made here, once
// and observably, instead of being inferred implicitly later.
func (r *Relayer) ensureInitialized(ctx context.Context) error {
	var initialized bool
	err := retrywrap.Do(func() error {
		var err error
		initialized, err = r.gateway.IsInitialized(ctx)

		return err
	},
		retry.Context(ctx),
		retry.Delay(r.retrySleepTime),
		retry.MaxDelay(r.maxRetrySleepTime),
		retry.Attempts(r.maxRetryTimes),
	)
	if err != nil {
		return fmt.Errorf("failed to check initialization: %w", err)
	}

	if !initialized {
		height := r.cfg.CheckpointHeight
		if height == 0 {
			localHeight, err := r.btcClient.GetBestHeight()
			if err != nil {
				return fmt.Errorf("failed to get local BTC height: %w", err)
			}
			height = localHeight
		}

		header, err := r.btcClient.GetHeader(height)
		if err != nil {
			return fmt.Errorf("failed to get checkpoint header at height %d: %w", height, err)
		}

		err = retrywrap.Do(func() error {
			return r.gateway.Initialize(ctx, header, height)
		},
			retry.Context(ctx),
			retry.Delay(r.retrySleepTime),
			retry.MaxDelay(r.maxRetrySleepTime),
			retry.Attempts(r.maxRetryTimes),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize the BTC relay: %w", err)
		}

		r.setState(StateCatchingUp)

		return nil
	}

	localHeight, remoteHeight, err := r.heights(ctx)
	if err != nil {
		return err
	}

	if localHeight > remoteHeight && localHeight-remoteHeight > r.cfg.CatchUpMargin {
		r.logger.Infof("Relay is %d blocks behind, re-entering catch-up", localHeight-remoteHeight)
		r.setState(StateCatchingUp)
	} else {
		r.setState(StateTrackingTip)
	}

	return nil
}

func (r *Relayer) heights(ctx context.Context) (uint32, uint32, error) {
	localHeight, err := r.btcClient.GetBestHeight()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get local BTC height: %w", err)
	}
	r.metrics.LocalBestHeightGauge.Set(float64(localHeight))

	var remoteHeight uint32
	err = retrywrap.Do(func() error {
		var err error
		remoteHeight, err = r.gateway.GetBestHeight(ctx)

		return err
	},
		retry.Context(ctx),
		retry.Delay(r.retrySleepTime),
		retry.MaxDelay(r.maxRetrySleepTime),
		retry.Attempts(r.maxRetryTimes),
	)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get relay best height: %w", err)
	}
	r.metrics.RelayBestHeightGauge.Set(float64(remoteHeight))

	return localHeight, remoteHeight, nil
}

// relayOnce performs one round of the relay loop: observe both tips and
// submit whatever the current state calls for.
func (r *Relayer) relayOnce(ctx context.Context) error {
	localHeight, remoteHeight, err := r.heights(ctx)
	if err != nil {
		return err
	}

	if localHeight <= remoteHeight {
		r.logger.Debugf("Relay tip %d is not behind local tip %d, nothing to submit", remoteHeight, localHeight)

		return nil
	}

	switch r.State() {
	case StateCatchingUp:
		if err := r.catchUp(ctx, remoteHeight+1, localHeight); err != nil {
			return err
		}
		// the gap is closed up to the local tip observed at the start of this
		// round, which is within the margin by definition
		r.setState(StateTrackingTip)

		return nil
	case StateTrackingTip:
		return r.trackTip(ctx, remoteHeight+1, localHeight)
	default:
		return fmt.Errorf("cannot relay headers in state %s", r.State())
	}
}

// catchUp submits the headers in [start, end] as contiguous batches.
func (r *Relayer) catchUp(ctx context.Context, start, end uint32) error {
	batchSize := r.cfg.MaxHeadersInBatch

	r.logger.Infof("Catching up: relaying headers %d to %d with batch size %d", start, end, batchSize)

	for chunkStart := start; chunkStart <= end; chunkStart += batchSize {
		select {
		case <-r.quitChan():
			return context.Canceled
		default:
		}

		chunkEnd := chunkStart + batchSize - 1
		if chunkEnd > end {
			chunkEnd = end
		}

		headers, err := r.fetchHeaderRange(chunkStart, chunkEnd)
		if err != nil {
			return err
		}

		err = retrywrap.Do(func() error {
			return r.gateway.SubmitBlockHeaderBatch(ctx, headers)
		},
			retry.Context(ctx),
			retry.Delay(r.retrySleepTime),
			retry.MaxDelay(r.maxRetrySleepTime),
			retry.Attempts(r.maxRetryTimes),
			retry.OnRetry(func(n uint, err error) {
				r.logger.Warnf("Failed to submit headers %d-%d: %v. Attempt: %d, Max attempts: %d",
					chunkStart, chunkEnd, err, n+1, r.maxRetryTimes)
			}),
		)
		if err != nil {
			r.metrics.FailedHeadersCounter.Add(float64(len(headers)))

			return fmt.Errorf("failed to submit headers %d-%d: %w", chunkStart, chunkEnd, err)
		}

		r.metrics.SuccessfulHeadersCounter.Add(float64(len(headers)))
		r.metrics.SecondsSinceLastHeaderGauge.Set(0)
		r.logger.Infof("Successfully relayed headers %d to %d", chunkStart, chunkEnd)
	}

	return nil
}

// trackTip submits the headers in [start, end] one by one through the
// randomized delay protocol.
func (r *Relayer) trackTip(ctx context.Context, start, end uint32) error {
	for height := start; height <= end; height++ {
		select {
		case <-r.quitChan():
			return context.Canceled
		default:
		}

		header, err := r.btcClient.GetHeader(height)
		if err != nil {
			return fmt.Errorf("failed to get header at height %d: %w", height, err)
		}

		err = retrywrap.Do(func() error {
			return r.gateway.SubmitBlockHeader(ctx, header, r.randomDelay)
		},
			retry.Context(ctx),
			retry.Delay(r.retrySleepTime),
			retry.MaxDelay(r.maxRetrySleepTime),
			retry.Attempts(r.maxRetryTimes),
		)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				// clean shutdown during the delay, nothing was submitted
				return err
			}
			r.metrics.FailedHeadersCounter.Inc()

			return fmt.Errorf("failed to submit header %s at height %d: %w", header.Hash(), height, err)
		}

		r.metrics.SuccessfulHeadersCounter.Inc()
		r.metrics.SecondsSinceLastHeaderGauge.Set(0)
		r.logger.Infof("Successfully relayed header %s at height %d", header.Hash(), height)
	}

	return nil
}

func (r *Relayer) fetchHeaderRange(start, end uint32) ([]types.RawBlockHeader, error) {
	headers := make([]types.RawBlockHeader, 0, end-start+1)
	for height := start; height <= end; height++ {
		header, err := r.btcClient.GetHeader(height)
		if err != nil {
			return nil, fmt.Errorf("failed to get header at height %d: %w", height, err)
		}
		headers = append(headers, header)
	}

	return headers, nil
}
