package floats

import "fmt"

// MustParse is like [Parse] but panics if s has no finite numeric
// prefix. It simplifies safe initialization of package-level values
// from literals known to be valid.
func MustParse(s string) float64 {
	f, ok := Parse(s)
	if !ok {
		panic(fmt.Sprintf("MustParse(%q) failed: no finite numeric prefix", s))
	}
	return f
}
