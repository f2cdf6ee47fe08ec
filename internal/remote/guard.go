package remote

import (
	"strings"

	"hgbridge/pkg/metrics"
	"hgbridge/pkg/serrors"
)

// CheckSafeHost rejects hostnames that an SSH client would parse as a
// command-line option. A location crafted as "-oProxyCommand=..." would
// otherwise be forwarded verbatim to the SSH invocation and execute an
// arbitrary command. The host is percent-decoded first so that encoded
// hyphens ("%2D") cannot slip past a literal check. On violation the
// decoded host is reported back in a serrors.ErrUnsafeHost error and
// nothing is stripped or escaped.
func CheckSafeHost(host string) error {
	decoded := unquote(host)

	if strings.HasPrefix(decoded, "-") {
		metrics.UnsafeHostRejections.Inc()

		return serrors.With(serrors.ErrUnsafeHost, "potentially unsafe hostname: %q", decoded)
	}

	return nil
}

// unquote percent-decodes every valid %XX sequence and keeps invalid
// escapes literal. Leniency matters here: an all-or-nothing decoder would
// let one malformed escape anywhere in the host mask a valid encoded
// hyphen at the front.
func unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2

				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// unhex decodes a single hex digit.
func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
