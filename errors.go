package schemafu

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotAuthorized is returned by resolvers whose Authorize function denies access.
var ErrNotAuthorized = errors.New("not authorized")

// DuplicateTypeError is returned when two different definitions are given the same name.
type DuplicateTypeError struct {
	Name     string
	Existing Kind
	New      Kind
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("%v was already defined as %v and cannot be redefined as %v", e.Name, e.Existing, e.New)
}

// ConfigError indicates an invalid definition.
type ConfigError struct {
	// The name of the type the error pertains to, if any.
	Type    string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Type == "" {
		return e.Message
	}
	return e.Type + ": " + e.Message
}

func configErrorf(typeName string, format string, args ...interface{}) error {
	return &ConfigError{
		Type:    typeName,
		Message: fmt.Sprintf(format, args...),
	}
}

// CircularBuildError is returned when a type is needed to build itself.
type CircularBuildError struct {
	Building string
}

func (e *CircularBuildError) Error() string {
	return fmt.Sprintf("%v was referenced while it was being built", e.Building)
}

type SelfImplementationError struct {
	Interface string
}

func (e *SelfImplementationError) Error() string {
	return fmt.Sprintf("interface %v cannot implement itself", e.Interface)
}

// InterfaceCycleError describes interfaces that implement each other. The path starts and ends
// with the same interface.
type InterfaceCycleError struct {
	Path []string
}

func (e *InterfaceCycleError) Error() string {
	return "interface cycle detected: " + strings.Join(e.Path, " -> ")
}

// MissingTypeError is returned by AssertNoMissingTypes.
type MissingTypeError struct {
	Name       string
	FromObject bool

	// Names of existing types that are similar to the missing one.
	Suggestions []string
}

func (e *MissingTypeError) Error() string {
	var msg string
	if e.FromObject {
		msg = fmt.Sprintf("missing type %v, did you forget to import a type to the root query?", e.Name)
	} else {
		msg = fmt.Sprintf("missing type %v", e.Name)
	}
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" did you mean %v?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}
