package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// maxHeadersInBatch is the most headers packed into one store-block-headers call
	maxHeadersInBatch = 100
	minPollInterval   = time.Second
)

// RelayConfig defines configuration for the header relay driver.
type RelayConfig struct {
	// PollInterval is how often the driver compares local and remote tips
	PollInterval time.Duration `mapstructure:"poll-interval"`
	// MaxHeadersInBatch caps the number of headers per batch submission
	MaxHeadersInBatch uint32 `mapstructure:"max-headers-in-batch"`
	// CatchUpMargin is the local-minus-remote height gap above which the
	// driver switches to batch catch-up instead of tip tracking
	CatchUpMargin uint32 `mapstructure:"catch-up-margin"`
	// CheckpointHeight is the trusted height used to initialize the light
	// client; 0 means start from the current local tip
	CheckpointHeight uint32 `mapstructure:"checkpoint-height"`
	// MaxDelaySlots bounds the randomized submission delay, in slots
	MaxDelaySlots uint64 `mapstructure:"max-delay-slots"`
	// DelaySlotDuration is the length of one delay slot
	DelaySlotDuration time.Duration `mapstructure:"delay-slot-duration"`
}

func (cfg *RelayConfig) Validate() error {
	if cfg.PollInterval < minPollInterval {
		return fmt.Errorf("poll-interval has to be at least %s", minPollInterval)
	}

	if cfg.MaxHeadersInBatch == 0 || cfg.MaxHeadersInBatch > maxHeadersInBatch {
		return fmt.Errorf("max-headers-in-batch has to be within [1, %d]", maxHeadersInBatch)
	}

	if cfg.CatchUpMargin == 0 {
		return errors.New("catch-up-margin must be positive")
	}

	if cfg.MaxDelaySlots > 0 && cfg.DelaySlotDuration <= 0 {
		return errors.New("delay-slot-duration must be positive when max-delay-slots is set")
	}

	return nil
}

func DefaultRelayConfig() RelayConfig {
	return RelayConfig{
		PollInterval:      10 * time.Second,
		MaxHeadersInBatch: maxHeadersInBatch,
		CatchUpMargin:     6,
		CheckpointHeight:  0,
		MaxDelaySlots:     10,
		DelaySlotDuration: 6 * time.Second,
	}
}
