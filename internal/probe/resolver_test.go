package probe

import (
	"context"
	"errors"
	"testing"
	"time"
)

// proberFunc adapts a function to the Prober interface for tests.
type proberFunc func(ctx context.Context, identity Identity) (string, error)

func (f proberFunc) Probe(ctx context.Context, identity Identity) (string, error) {
	return f(ctx, identity)
}

func TestResolver_ResolveSuccess(t *testing.T) {
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		return "workstation", nil
	})

	resolver := NewResolver(prober, time.Second)
	resolved := resolver.Resolve(IdentityHostname)

	if !resolved.OK {
		t.Fatalf("Resolve should succeed, got %+v", resolved)
	}
	if resolved.Value != "workstation" {
		t.Errorf("Value = %q, want \"workstation\"", resolved.Value)
	}
	if resolved.Identity != IdentityHostname {
		t.Errorf("Identity = %q, want %q", resolved.Identity, IdentityHostname)
	}
	if resolved.Err != nil {
		t.Errorf("Err = %v, want nil", resolved.Err)
	}
	if resolved.At.IsZero() {
		t.Error("At should record when the probe ran")
	}
}

func TestResolver_ProbesAtMostOncePerIdentity(t *testing.T) {
	calls := 0
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		calls++
		return "6.8.0-45-generic", nil
	})

	resolver := NewResolver(prober, time.Second)
	first := resolver.Resolve(IdentityKernel)
	second := resolver.Resolve(IdentityKernel)
	third := resolver.Resolve(IdentityKernel)

	if calls != 1 {
		t.Errorf("prober ran %d times, want 1", calls)
	}
	if first != second || second != third {
		t.Error("repeat Resolve calls should return the stored outcome")
	}
}

func TestResolver_CachesFailures(t *testing.T) {
	calls := 0
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		calls++
		return "", errors.New("no route to host")
	})

	resolver := NewResolver(prober, time.Second)
	first := resolver.Resolve(IdentityExternalIP)
	second := resolver.Resolve(IdentityExternalIP)

	if calls != 1 {
		t.Errorf("prober ran %d times, want 1; failures must not retrigger the probe", calls)
	}
	if first.OK || second.OK {
		t.Error("failed probe should stay failed")
	}
	if first.Code != FailUnreachable {
		t.Errorf("Code = %v, want FailUnreachable", first.Code)
	}
	if first.Err == nil {
		t.Fatal("Err should carry the categorized failure")
	}

	var probeErr *ProbeError
	if !errors.As(first.Err, &probeErr) {
		t.Fatalf("Err = %T, want *ProbeError", first.Err)
	}
	if probeErr.Identity != IdentityExternalIP {
		t.Errorf("ProbeError.Identity = %q, want %q", probeErr.Identity, IdentityExternalIP)
	}
}

func TestResolver_DistinctIdentitiesProbeSeparately(t *testing.T) {
	perIdentity := make(map[Identity]int)
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		perIdentity[identity]++
		return string(identity) + "-value", nil
	})

	resolver := NewResolver(prober, time.Second)
	resolver.Resolve(IdentityHostname)
	resolver.Resolve(IdentityKernel)
	resolver.Resolve(IdentityHostname)
	resolver.Resolve(IdentityKernel)

	if perIdentity[IdentityHostname] != 1 || perIdentity[IdentityKernel] != 1 {
		t.Errorf("per-identity probe counts = %v, want one each", perIdentity)
	}
}

func TestResolver_Timeout(t *testing.T) {
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		select {
		case <-time.After(time.Second):
			return "too late", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})

	resolver := NewResolver(prober, 10*time.Millisecond)
	resolved := resolver.Resolve(IdentityExternalIP)

	if resolved.OK {
		t.Fatal("Resolve should fail when the probe outlives the timeout")
	}
	if resolved.Code != FailTimeout {
		t.Errorf("Code = %v, want FailTimeout", resolved.Code)
	}
}

func TestResolver_ProbedOrder(t *testing.T) {
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		if identity == IdentityUptime {
			return "", errors.New("open /proc/uptime: no such file or directory")
		}
		return "value", nil
	})

	resolver := NewResolver(prober, time.Second)
	resolver.Resolve(IdentityKernel)
	resolver.Resolve(IdentityUptime)
	resolver.Resolve(IdentityHostname)
	resolver.Resolve(IdentityKernel)

	probed := resolver.Probed()
	if len(probed) != 3 {
		t.Fatalf("Probed() returned %d outcomes, want 3", len(probed))
	}

	wantOrder := []Identity{IdentityKernel, IdentityUptime, IdentityHostname}
	for i, want := range wantOrder {
		if probed[i].Identity != want {
			t.Errorf("Probed()[%d].Identity = %q, want %q", i, probed[i].Identity, want)
		}
	}

	if probed[1].OK {
		t.Error("uptime outcome should be a failure")
	}
	if probed[1].Code != FailUnsupported {
		t.Errorf("uptime Code = %v, want FailUnsupported", probed[1].Code)
	}
}

func TestResolver_FreshResolverProbesAgain(t *testing.T) {
	calls := 0
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		calls++
		return "workstation", nil
	})

	NewResolver(prober, time.Second).Resolve(IdentityHostname)
	NewResolver(prober, time.Second).Resolve(IdentityHostname)

	if calls != 2 {
		t.Errorf("prober ran %d times across two resolvers, want 2", calls)
	}
}

func TestNewResolver_DefaultTimeout(t *testing.T) {
	prober := proberFunc(func(ctx context.Context, identity Identity) (string, error) {
		return "", nil
	})

	if got := NewResolver(prober, 0).Timeout(); got != DefaultTimeout {
		t.Errorf("Timeout() with zero = %v, want %v", got, DefaultTimeout)
	}
	if got := NewResolver(prober, -time.Second).Timeout(); got != DefaultTimeout {
		t.Errorf("Timeout() with negative = %v, want %v", got, DefaultTimeout)
	}
	if got := NewResolver(prober, 2*time.Second).Timeout(); got != 2*time.Second {
		t.Errorf("Timeout() = %v, want 2s", got)
	}
}
