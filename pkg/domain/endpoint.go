package domain

// Transport identifies which protocol family should be used to reach a
// remote repository location.
type Transport string

const (
	// TransportSSH indicates an SSH shorthand endpoint ([user@]host:path).
	TransportSSH Transport = "SSH"
	// TransportHTTP indicates a location with an explicit URL scheme.
	TransportHTTP Transport = "HTTP"
	// TransportLocal indicates a plain filesystem path.
	TransportLocal Transport = "LOCAL"
)

// Endpoint is the host/path pair extracted from an SSH shorthand remote
// location. Joining Host, ":" and Path reconstructs the matched portion of
// the original location string.
type Endpoint struct {
	// Host is the token before the final ":" separator. It may be a bare
	// hostname, an IP address, a bracketed IPv6 literal, or garbage; the
	// classifier decides whether it is trustworthy, the guard decides
	// whether it is safe to hand to an SSH client.
	Host string
	// Path is the remainder after the separator.
	Path string
}

// String reassembles the shorthand form.
func (e Endpoint) String() string {
	return e.Host + ":" + e.Path
}
