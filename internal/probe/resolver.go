package probe

import (
	"context"
	"time"

	"github.com/conkygen/conkygen/internal/logger"
)

// DefaultTimeout bounds each individual probe.
const DefaultTimeout = 5 * time.Second

// Resolved is the outcome of one probe. Failure travels inside the value:
// OK false, a categorized Code, and the underlying error in Err.
type Resolved struct {
	Identity Identity
	Value    string
	OK       bool
	Code     FailCode
	Err      error
	At       time.Time
	Latency  time.Duration
}

// Resolver memoizes probe outcomes for one generation run. Construct a
// fresh Resolver per run and discard it afterwards; a run is
// single-threaded, so the Resolver does no locking.
type Resolver struct {
	prober  Prober
	timeout time.Duration
	results map[Identity]Resolved
	order   []Identity
	log     logger.Logger
}

// NewResolver creates an empty resolver backed by the given prober. A zero
// or negative timeout falls back to DefaultTimeout.
func NewResolver(p Prober, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Resolver{
		prober:  p,
		timeout: timeout,
		results: make(map[Identity]Resolved),
		log:     logger.NewEnvLogger("[probe]"),
	}
}

// SetLogger replaces the resolver's logger.
func (r *Resolver) SetLogger(l logger.Logger) {
	if l != nil {
		r.log = l
	}
}

// Resolve returns the outcome for identity, probing on first use. Repeat
// calls return the stored outcome - including stored failures - so a probe
// runs at most once per identity per resolver. Resolve never panics and
// never returns an error.
func (r *Resolver) Resolve(identity Identity) Resolved {
	if cached, ok := r.results[identity]; ok {
		return cached
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	value, err := r.prober.Probe(ctx, identity)

	resolved := Resolved{
		Identity: identity,
		At:       start,
		Latency:  time.Since(start),
	}
	if err != nil {
		probeErr := categorize(identity, err)
		resolved.Code = probeErr.Reason
		resolved.Err = probeErr
		r.log.Debug("probe %s failed after %s: %v", identity, resolved.Latency, err)
	} else {
		resolved.Value = value
		resolved.OK = true
		r.log.Debug("probe %s resolved in %s", identity, resolved.Latency)
	}

	r.results[identity] = resolved
	r.order = append(r.order, identity)
	return resolved
}

// Probed returns the outcomes recorded so far, in probe order.
func (r *Resolver) Probed() []Resolved {
	out := make([]Resolved, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.results[id])
	}
	return out
}

// Timeout returns the per-probe timeout.
func (r *Resolver) Timeout() time.Duration {
	return r.timeout
}
