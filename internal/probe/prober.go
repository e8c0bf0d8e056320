package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultExternalIPURL is the service queried for the machine's public IP.
// The service returns the caller's address as a plain text body.
const DefaultExternalIPURL = "https://ifconfig.me/"

// uptimeFile is where Linux exposes seconds since boot.
const uptimeFile = "/proc/uptime"

// Prober performs one external lookup. Implementations must honor the
// context deadline on anything that can block.
type Prober interface {
	Probe(ctx context.Context, identity Identity) (string, error)
}

// SystemProber is the real prober: it reads local system facts and queries
// the external IP service over HTTP.
type SystemProber struct {
	// ExternalIPURL overrides the external IP endpoint. Empty means
	// DefaultExternalIPURL.
	ExternalIPURL string
	// Client overrides the HTTP client for the external IP lookup.
	Client *http.Client
}

// NewSystemProber creates a prober with default settings.
func NewSystemProber() *SystemProber {
	return &SystemProber{
		ExternalIPURL: DefaultExternalIPURL,
		Client:        http.DefaultClient,
	}
}

// Probe implements Prober.
func (p *SystemProber) Probe(ctx context.Context, identity Identity) (string, error) {
	switch identity {
	case IdentityExternalIP:
		return p.externalIP(ctx)
	case IdentityHostname:
		return os.Hostname()
	case IdentityKernel:
		return p.kernel(ctx)
	case IdentityUptime:
		return p.uptime()
	}
	return "", fmt.Errorf("unknown probe identity %q", identity)
}

func (p *SystemProber) externalIP(ctx context.Context) (string, error) {
	url := p.ExternalIPURL
	if url == "" {
		url = DefaultExternalIPURL
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("external IP service returned %s", resp.Status)
	}

	// An IP address is tiny; anything longer than this is not one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", err
	}

	ip := strings.TrimSpace(string(body))
	if ip == "" {
		return "", fmt.Errorf("external IP service returned an empty body")
	}
	return ip, nil
}

func (p *SystemProber) kernel(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "uname", "-r").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (p *SystemProber) uptime() (string, error) {
	data, err := os.ReadFile(uptimeFile)
	if err != nil {
		return "", err
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "", fmt.Errorf("%s is empty", uptimeFile)
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "", fmt.Errorf("unexpected %s contents: %w", uptimeFile, err)
	}

	return FormatUptime(time.Duration(seconds * float64(time.Second))), nil
}

// FormatUptime renders a boot age like "3d 2h 14m". Leading zero units are
// omitted; minutes always show.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if days > 0 || hours > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	fmt.Fprintf(&b, "%dm", minutes)
	return b.String()
}
