package schema

import "fmt"

type lazyState struct {
	forcing bool
	done    bool
	err     error
}

func (s *lazyState) force(name string, f func() error) error {
	if s.done {
		return s.err
	} else if s.forcing {
		return fmt.Errorf("%v was finalized by its own thunks", name)
	}
	s.forcing = true
	err := f()
	s.forcing = false
	s.done = true
	s.err = err
	return err
}
