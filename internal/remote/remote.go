// Package remote decides how an opaque repository-location string should be
// reached: over SSH shorthand, over an explicit URL scheme, or as a local
// path. Classification is purely lexical; nothing here talks to the network.
package remote

import (
	"regexp"
	"strings"

	"hgbridge/pkg/domain"
	"hgbridge/pkg/metrics"
)

// gitSchemes are the explicit scheme prefixes of the foreign system. A
// location starting with any of them (followed by "://") is never SSH
// shorthand.
var gitSchemes = []string{"git", "git+ssh", "git+http", "git+https"} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// shorthandRE matches the [user@]host:path form. The user prefix is
	// greedy, so the last "@" wins; the host token allows word characters,
	// dots, colons, hyphens and optional brackets for IPv6 literals.
	shorthandRE = regexp.MustCompile(`^(?:.+@)*(\[?[\w.:-]+\]?):(.*)`)

	// fqdnLabelsRE matches one or more dot-terminated labels of 1-63
	// alphanumerics/hyphens with no leading or trailing hyphen, followed by
	// a 2-63 letter top-level label. The 4-253 total-length bound is
	// enforced separately because the regexp engine has no lookahead.
	fqdnLabelsRE = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,63}$`)
)

// IsSSHEndpoint reports whether uri looks like an SSH shorthand remote of
// the foreign system ([user@]host:path) rather than an explicit-scheme URL
// or a local path.
//
// The heuristic deliberately favors precision over recall: a shorthand
// match counts only when the path ends in ".git" or the host is a
// well-formed FQDN, so local paths containing colons are not misread as
// remotes. A bracketed IPv6 host can therefore only classify true through
// the ".git" branch; the FQDN check always rejects brackets. That asymmetry
// matches the established behavior callers rely on and is kept on purpose.
func IsSSHEndpoint(uri string) bool {
	if hasExplicitScheme(uri) {
		return false
	}

	m := shorthandRE.FindStringSubmatch(uri)
	if m == nil {
		return false
	}

	// a ".git" suffix on the path is conclusive
	if strings.HasSuffix(m[2], ".git") {
		return true
	}

	return isFQDN(m[1])
}

// SplitEndpoint extracts the host and path tokens of an SSH shorthand
// location. The second return value is false when uri does not match the
// shorthand shape at all. Joining Host, ":" and Path reconstructs the
// matched portion of uri.
func SplitEndpoint(uri string) (domain.Endpoint, bool) {
	if hasExplicitScheme(uri) {
		return domain.Endpoint{}, false
	}

	m := shorthandRE.FindStringSubmatch(uri)
	if m == nil {
		return domain.Endpoint{}, false
	}

	return domain.Endpoint{Host: m[1], Path: m[2]}, true
}

// Classify maps a location string to the transport the dispatcher should
// use and records the decision.
func Classify(uri string) domain.Transport {
	switch {
	case IsSSHEndpoint(uri):
		metrics.EndpointClassifications.WithLabelValues(metrics.OutcomeSSH).Inc()

		return domain.TransportSSH
	case hasExplicitScheme(uri):
		metrics.EndpointClassifications.WithLabelValues(metrics.OutcomeScheme).Inc()

		return domain.TransportHTTP
	default:
		metrics.EndpointClassifications.WithLabelValues(metrics.OutcomePath).Inc()

		return domain.TransportLocal
	}
}

// hasExplicitScheme reports whether uri starts with one of the foreign
// scheme prefixes or with http:/https:.
func hasExplicitScheme(uri string) bool {
	for _, scheme := range gitSchemes {
		if strings.HasPrefix(uri, scheme+"://") {
			return true
		}
	}

	return strings.HasPrefix(uri, "http:") || strings.HasPrefix(uri, "https:")
}

// isFQDN applies the conservative fully-qualified-domain-name heuristic:
// label shape via fqdnLabelsRE plus the 4-253 character total bound. This
// is not RFC 1035 validation and does not need to be.
func isFQDN(host string) bool {
	if len(host) < 4 || len(host) > 253 {
		return false
	}

	return fqdnLabelsRE.MatchString(host)
}
