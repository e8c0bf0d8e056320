package probe

// Identity names one external lookup. Identities are the resolver's cache
// keys: at most one probe runs per identity per run.
type Identity string

// The probe identities designs can reference.
const (
	IdentityExternalIP Identity = "external-ip"
	IdentityHostname   Identity = "hostname"
	IdentityKernel     Identity = "kernel"
	IdentityUptime     Identity = "uptime"
)

// Identities returns all known identities in stable order.
func Identities() []Identity {
	return []Identity{IdentityExternalIP, IdentityHostname, IdentityKernel, IdentityUptime}
}

// IdentityNames returns the string form of all known identities.
func IdentityNames() []string {
	ids := Identities()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return names
}

// ParseIdentity maps a raw string to an Identity.
func ParseIdentity(s string) (Identity, bool) {
	switch Identity(s) {
	case IdentityExternalIP, IdentityHostname, IdentityKernel, IdentityUptime:
		return Identity(s), true
	}
	return "", false
}

func (i Identity) String() string {
	return string(i)
}

// Describe returns a short human description of what the identity probes.
func (i Identity) Describe() string {
	switch i {
	case IdentityExternalIP:
		return "public IP address via HTTP lookup"
	case IdentityHostname:
		return "machine host name"
	case IdentityKernel:
		return "kernel release (uname -r)"
	case IdentityUptime:
		return "time since boot"
	}
	return "unknown"
}
