package classifier

import (
	"net/url"
	"regexp"
	"strings"
)

// genericURI is the reference decomposition from RFC 3986 Appendix B.
// It matches every string, so it never rejects input.
var genericURI = regexp.MustCompile(`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// relativeRef is genericURI without the scheme group, applied to the text
// after a scheme net/url accepted. It also matches every string.
var relativeRef = regexp.MustCompile(`^(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// schemeSyntax is the RFC 3986 scheme production.
var schemeSyntax = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*$`)

// Components are the five generic parts of a URI. Absent parts are empty.
type Components struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// Decompose splits raw into its generic components. net/url decides whether
// raw starts with a valid scheme; the components themselves are sliced from
// raw, so they keep the text exactly as typed (no percent-encoding added or
// removed). Strings net/url refuses are split by the RFC 3986 reference
// expression, so Decompose always returns a result.
func Decompose(raw string) Components {
	u, err := url.Parse(raw)
	if err != nil {
		return decomposeGeneric(raw)
	}

	if u.Scheme == "" {
		return splitReference("", raw)
	}
	return splitReference(u.Scheme, raw[len(u.Scheme)+1:])
}

// splitReference splits what follows the scheme (the whole string when
// there is none).
func splitReference(scheme, rest string) Components {
	m := relativeRef.FindStringSubmatch(rest)
	return Components{
		Scheme:    strings.ToLower(scheme),
		Authority: m[2],
		Path:      m[3],
		Query:     m[5],
		Fragment:  m[7],
	}
}

// decomposeGeneric ignores a leading "x:" that is not a valid scheme, as
// net/url does.
func decomposeGeneric(raw string) Components {
	m := genericURI.FindStringSubmatch(raw)
	if m[2] != "" && !schemeSyntax.MatchString(m[2]) {
		return splitReference("", raw)
	}
	return Components{
		Scheme:    strings.ToLower(m[2]),
		Authority: m[4],
		Path:      m[5],
		Query:     m[7],
		Fragment:  m[9],
	}
}
