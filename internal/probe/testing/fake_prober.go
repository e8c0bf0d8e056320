// Package testing provides test doubles for the probe package.
package testing

import (
	"context"
	"fmt"
	"time"

	"github.com/conkygen/conkygen/internal/probe"
)

// FakeResult configures what a FakeProber returns for one identity.
type FakeResult struct {
	Value string
	Err   error
	Delay time.Duration
}

// FakeProber is a configurable Prober for tests. Configure outcomes with
// Respond, Fail, and RespondSlow, then inspect Calls and CallCounts to
// assert how the code under test probed.
type FakeProber struct {
	results map[probe.Identity]FakeResult

	// Calls records every Probe invocation in order.
	Calls []probe.Identity

	// CallCounts tracks invocations per identity.
	CallCounts map[probe.Identity]int
}

// NewFakeProber creates a FakeProber with no configured results.
func NewFakeProber() *FakeProber {
	return &FakeProber{
		results:    make(map[probe.Identity]FakeResult),
		CallCounts: make(map[probe.Identity]int),
	}
}

// Respond configures a successful outcome for identity.
func (f *FakeProber) Respond(identity probe.Identity, value string) *FakeProber {
	f.results[identity] = FakeResult{Value: value}
	return f
}

// Fail configures a failing outcome for identity.
func (f *FakeProber) Fail(identity probe.Identity, err error) *FakeProber {
	f.results[identity] = FakeResult{Err: err}
	return f
}

// RespondSlow configures a successful outcome that takes delay to arrive.
// If the context expires first, Probe returns the context's error.
func (f *FakeProber) RespondSlow(identity probe.Identity, value string, delay time.Duration) *FakeProber {
	f.results[identity] = FakeResult{Value: value, Delay: delay}
	return f
}

// Probe implements probe.Prober.
func (f *FakeProber) Probe(ctx context.Context, identity probe.Identity) (string, error) {
	f.Calls = append(f.Calls, identity)
	f.CallCounts[identity]++

	result, ok := f.results[identity]
	if !ok {
		return "", fmt.Errorf("fake prober: no result configured for %q", identity)
	}

	if result.Delay > 0 {
		select {
		case <-time.After(result.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if result.Err != nil {
		return "", result.Err
	}
	return result.Value, nil
}

// Reset clears all configured results and recorded calls.
func (f *FakeProber) Reset() {
	f.results = make(map[probe.Identity]FakeResult)
	f.Calls = nil
	f.CallCounts = make(map[probe.Identity]int)
}
