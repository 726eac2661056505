// internal/agents/dispatcher.go
package agents

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"suggestion-mesh/internal/common/errors"
	"suggestion-mesh/internal/common/logger"
	"suggestion-mesh/internal/common/metrics"
	"suggestion-mesh/internal/scoring"

	"github.com/panjf2000/ants/v2"
)

// LatencyFunc draws a simulated processing duration for one unit of work.
type LatencyFunc func(min, max time.Duration) time.Duration

// ConfidenceFunc draws a confidence score for one unit of work.
type ConfidenceFunc func(min, max float64) float64

func uniformLatency(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

func uniformConfidence(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rand.Float64()*(max-min)
}

// Dispatcher fans a query out to a selection of agent profiles and joins
// their results under a single deadline.
type Dispatcher struct {
	config     *Config
	profiles   []Profile
	pool       *ants.Pool
	logger     logger.Logger
	latency    LatencyFunc
	confidence ConfidenceFunc
}

// NewDispatcher creates a dispatcher over the given profiles. The pool may
// be nil, in which case units run on plain goroutines without a global cap.
func NewDispatcher(cfg *Config, profiles []Profile, pool *ants.Pool, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		config:     cfg,
		profiles:   profiles,
		pool:       pool,
		logger:     log,
		latency:    uniformLatency,
		confidence: uniformConfidence,
	}
}

// Profiles returns the static profile table.
func (d *Dispatcher) Profiles() []Profile {
	return d.profiles
}

type unitOutcome struct {
	index    int
	response AgentResponse
	err      error
}

// Dispatch runs one unit of work per selected profile and waits for all of
// them, or for the deadline, whichever comes first. There are no partial
// results: on timeout the whole batch fails, and only after every
// outstanding unit has stopped.
func (d *Dispatcher) Dispatch(ctx context.Context, query string, agentCount int, timeout time.Duration) ([]AgentResponse, error) {
	if agentCount < 1 || agentCount > len(d.profiles) {
		return nil, errors.NewInvalidArgumentError(
			fmt.Sprintf("Agent count must be between 1 and %d", len(d.profiles)),
			fmt.Sprintf("requested: %d", agentCount),
		)
	}

	selected := d.profiles[:agentCount]

	metrics.DispatchesActive.Inc()
	defer metrics.DispatchesActive.Dec()

	d.logger.Info("Dispatching query to agents", map[string]interface{}{
		"agentCount": agentCount,
		"timeout":    timeout.String(),
	})

	dispatchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so a unit finishing after the deadline never blocks on send.
	outcomes := make(chan unitOutcome, agentCount)
	var wg sync.WaitGroup
	wg.Add(agentCount)

	// Pool submission can block while the pool is saturated, so it runs off
	// the join loop's goroutine.
	go func() {
		for i := range selected {
			index := i
			profile := selected[i]
			unit := func() {
				defer wg.Done()
				response, err := d.runUnit(dispatchCtx, profile, query)
				outcomes <- unitOutcome{index: index, response: response, err: err}
			}

			if d.pool != nil {
				if err := d.pool.Submit(unit); err != nil {
					outcomes <- unitOutcome{index: index, err: err}
					wg.Done()
				}
			} else {
				go unit()
			}
		}
	}()

	results := make([]AgentResponse, agentCount)
	completed := 0
	for completed < agentCount {
		select {
		case out := <-outcomes:
			if out.err != nil {
				cancel()
				wg.Wait()
				if out.err == context.DeadlineExceeded || out.err == context.Canceled {
					return nil, errors.NewDispatchTimeoutError(agentCount, timeout)
				}
				return nil, errors.NewInternalError(out.err)
			}
			results[out.index] = out.response
			completed++
		case <-dispatchCtx.Done():
			// Cancellation wakes every sleeping unit; wait for their
			// teardown before surfacing the timeout.
			wg.Wait()
			d.logger.Warn("Dispatch timed out", map[string]interface{}{
				"agentCount": agentCount,
				"completed":  completed,
				"timeout":    timeout.String(),
			})
			return nil, errors.NewDispatchTimeoutError(agentCount, timeout)
		}
	}

	d.logger.Info("Dispatch complete", map[string]interface{}{
		"agentCount": agentCount,
	})
	return results, nil
}

func (d *Dispatcher) runUnit(ctx context.Context, profile Profile, query string) (AgentResponse, error) {
	start := time.Now()
	defer func() {
		metrics.AgentTaskDuration.WithLabelValues(profile.ID).Observe(time.Since(start).Seconds())
	}()

	delay := d.latency(d.config.LatencyMin, d.config.LatencyMax)

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return AgentResponse{}, ctx.Err()
	}

	confidence := d.confidence(d.config.ConfidenceMin, d.config.ConfidenceMax)

	return AgentResponse{
		AgentID:    profile.ID,
		Suggestion: suggestionFor(profile, query),
		Confidence: scoring.Round4(confidence),
		Reasoning:  fmt.Sprintf("Based on %s perspective", profile.Specialty),
	}, nil
}
