package surface

// Patch wraps a cell's rendered output in caller-supplied setup and
// cleanup strings (escape sequences a renderer is expected to emit
// immediately before and after the cell, such as a hyperlink or a
// custom SGR extension the base attribute set cannot express).
//
// Optimize tells a renderer it may coalesce adjacent cells carrying a
// byte-identical Patch into a single setup/cleanup pair spanning the
// run, instead of emitting the pair once per cell. Surface itself never
// reads Optimize; it is exposed for the out-of-scope renderer
// collaborator to act on.
type Patch struct {
	Setup    string
	Cleanup  string
	Optimize bool
}

// IsZero reports whether p carries no patch data.
func (p Patch) IsZero() bool {
	return p == Patch{}
}
