// Package sessions expires in-memory per-session state once its token can no longer be used.
package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/naturesnacks/snackstore/pkg/logger"
)

// Target holds per-session state that can be swept by idle time.
type Target interface {
	Sweep(ttl time.Duration) int
}

// SweeperParams configure the sweeper.
type SweeperParams struct {
	Logger   *logger.Logger
	Targets  map[string]Target
	TTL      time.Duration
	Interval time.Duration
}

// Sweeper drops session state idle for longer than the session token lifetime.
type Sweeper struct {
	logg     *logger.Logger
	targets  map[string]Target
	ttl      time.Duration
	interval time.Duration
}

func NewSweeper(params SweeperParams) (*Sweeper, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if len(params.Targets) == 0 {
		return nil, fmt.Errorf("at least one sweep target required")
	}
	if params.TTL <= 0 || params.Interval <= 0 {
		return nil, fmt.Errorf("ttl and interval must be positive")
	}
	return &Sweeper{
		logg:     params.Logger,
		targets:  params.Targets,
		ttl:      params.TTL,
		interval: params.Interval,
	}, nil
}

// Run sweeps on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs every target once and returns the dropped count per target.
func (s *Sweeper) SweepOnce(ctx context.Context) map[string]int {
	dropped := make(map[string]int, len(s.targets))
	for name, target := range s.targets {
		dropped[name] = target.Sweep(s.ttl)
	}
	s.logg.Debug(s.logg.WithField(ctx, "dropped", dropped), "session sweep complete")
	return dropped
}
