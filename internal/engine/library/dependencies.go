package library

import "go.trai.ch/hdlc/internal/core/domain"

// Dependencies returns the dependencies of every source in insertion order.
// Dependencies on the "work" library are rewritten to this library's name;
// every other pair is returned as declared. The cache is not touched.
func (c *Cache) Dependencies() ([]SourceDependencies, error) {
	self := domain.NewInternedString(c.name)

	result := make([]SourceDependencies, 0, len(c.sources))
	for _, src := range c.sources {
		declared, err := src.Dependencies()
		if err != nil {
			return nil, err
		}

		deps := make([]domain.Dependency, 0, len(declared))
		for _, dep := range declared {
			if dep.IsWork() {
				dep.Library = self
			}
			deps = append(deps, dep)
		}
		result = append(result, SourceDependencies{Source: src, Dependencies: deps})
	}
	return result, nil
}
