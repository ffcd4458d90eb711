package systems

import "github.com/yohamta/donburi"

// first returns the data of the first entity carrying c. Systems use it for
// world singletons and skip their pass when it reports false.
func first[T any](w donburi.World, c *donburi.ComponentType[T]) (*T, bool) {
	e, ok := c.First(w)
	if !ok {
		return nil, false
	}
	return c.Get(e), true
}
