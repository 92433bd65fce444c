package suggest

// Catalog is the closed, ordered set of category labels corrections are
// validated against. It is injected configuration, not learned state, so
// tests and deployments can substitute their own.
type Catalog []string

// Contains reports whether name is a valid category label.
func (c Catalog) Contains(name string) bool {
	for _, label := range c {
		if label == name {
			return true
		}
	}
	return false
}
