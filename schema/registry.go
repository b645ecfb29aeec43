package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/nsat/validatron/assert"
	commonErrors "github.com/nsat/validatron/errors"
	"github.com/nsat/validatron/validation"
)

var (
	// ErrAlreadyRegistered is returned when a type is registered twice.
	ErrAlreadyRegistered = errors.New("schema already registered")

	// ErrNotRegistered is returned when validating a type with no schema.
	ErrNotRegistered = errors.New("no schema registered")
)

type entry func(value any) (*validation.Error, error)

// Registry maps Go types to schemas. It is safe for concurrent use. There is
// no global registry: create one and carry it (validate.WithRegistry puts it
// in a context).
type Registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[reflect.Type]entry)}
}

// Register adds a routine for values of exactly type T. Lookup matches the
// dynamic type of a value, which is never an interface type, so registering
// an interface T fails with errors.ErrWrongType.
func Register[T any](r *Registry, routine Routine[T]) error {
	typ := reflect.TypeFor[T]()
	if typ.Kind() == reflect.Interface {
		return fmt.Errorf("%w: cannot register interface type %s, register each concrete type",
			commonErrors.ErrWrongType, typ)
	}

	s := Of(routine)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.schemas[typ]; found {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, typ)
	}

	r.schemas[typ] = func(value any) (*validation.Error, error) {
		typed, err := assert.Type[T](value)
		if err != nil {
			return nil, err
		}

		return s.Validate(typed), nil
	}

	return nil
}

// MustRegister is Register for package initialization; it panics on error.
func MustRegister[T any](r *Registry, routine Routine[T]) {
	if err := Register(r, routine); err != nil {
		panic(err)
	}
}

// Lookup returns the registered schema bound to value.
func (r *Registry) Lookup(value any) (Check, bool) {
	if r == nil || value == nil {
		return nil, false
	}

	r.mu.RLock()
	found, ok := r.schemas[reflect.TypeOf(value)]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}

	return func() *validation.Error {
		report, err := found(value)
		assert.True(err == nil, "schema: registry entry type mismatch: %v", err)

		return report
	}, true
}

// Validate runs the schema registered for value's dynamic type.
func (r *Registry) Validate(value any) (*validation.Error, error) {
	check, ok := r.Lookup(value)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotRegistered, value)
	}

	return check.Validate(), nil
}

// Len is the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.schemas)
}
