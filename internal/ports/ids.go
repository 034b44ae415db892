package ports

// IDGenerator hands out identifiers unique within a collection. Callers
// retry a bounded number of times on collisions, so repeated values are
// tolerated but not relied upon.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a plain function to IDGenerator
type IDFunc func() string

// NewID calls f
func (f IDFunc) NewID() string {
	return f()
}
