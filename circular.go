package schemafu

import (
	"github.com/samber/lo"
)

// checkForInterfaceCycles makes sure that no pending interface implements itself, directly or
// through other interfaces. Only edges between pending interfaces are followed.
func (b *Builder) checkForInterfaceCycles() error {
	isInterface := func(name string) bool {
		_, ok := b.pending[name].(*InterfaceTypeDef)
		return ok
	}

	checked := map[string]bool{}
	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		path = append(path, name)
		for _, next := range b.interfaceEdges[name] {
			if !isInterface(next) {
				continue
			} else if next == name {
				return &SelfImplementationError{Interface: name}
			} else if i := lo.IndexOf(path, next); i >= 0 {
				cycle := append(append([]string(nil), path[i:]...), next)
				return &InterfaceCycleError{Path: cycle}
			} else if checked[next] {
				continue
			}
			if err := visit(next, path); err != nil {
				return err
			}
		}
		checked[name] = true
		return nil
	}

	for _, name := range b.pendingOrder {
		if !isInterface(name) || checked[name] {
			continue
		}
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}
