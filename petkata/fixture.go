package petkata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	validator "github.com/go-playground/validator/v10"
	"github.com/mitchellh/copystructure"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collections-kata/collections"
)

//go:embed roster.yaml
var rosterYAML []byte

var (
	// ErrInvalidRoster is returned when a decoded roster fails validation.
	ErrInvalidRoster = errors.New("petkata: invalid roster")

	// ErrCopyFailed is returned when the deep copy of a roster does not
	// produce the original type.
	ErrCopyFailed = errors.New("petkata: copy failed at type assertion")
)

type roster struct {
	People []*Person `yaml:"people" validate:"dive,required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("pettype", func(fl validator.FieldLevel) bool {
		return PetType(fl.Field().String()).Valid()
	})
	return v
}

type loadOptions struct {
	strict bool
}

// Option configures [LoadPeople].
type Option func(*loadOptions)

// WithStrict rejects roster files containing fields that Person and Pet do
// not declare.
func WithStrict() Option {
	return func(o *loadOptions) { o.strict = true }
}

// LoadPeople decodes a YAML roster from r and validates it. An empty input
// yields an empty list.
func LoadPeople(r io.Reader, opts ...Option) (*collections.FastList[*Person], error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(o.strict)

	var rs roster
	if err := dec.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("petkata: decode roster: %w", err)
	}
	if err := validate.Struct(&rs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoster, err)
	}
	return collections.AdaptList(rs.People), nil
}

// LoadFile is [LoadPeople] reading from the file at path.
func LoadFile(path string, opts ...Option) (*collections.FastList[*Person], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("petkata: open roster: %w", err)
	}
	defer f.Close()

	return LoadPeople(f, opts...)
}

var (
	defaultOnce   sync.Once
	defaultPeople []*Person
	defaultErr    error
)

// People returns the built-in eight-person roster. Every call returns a
// fresh deep copy, so callers may change the result freely.
//
// People panics if the embedded roster cannot be loaded.
func People() *collections.FastList[*Person] {
	defaultOnce.Do(func() {
		var people *collections.FastList[*Person]
		people, defaultErr = LoadPeople(bytes.NewReader(rosterYAML), WithStrict())
		if defaultErr == nil {
			defaultPeople = people.ToSlice()
		}
	})
	if defaultErr != nil {
		panic(defaultErr)
	}

	people, err := deepCopy(defaultPeople)
	if err != nil {
		panic(err)
	}
	return collections.AdaptList(people)
}

func deepCopy[T any](t T) (T, error) {
	v, err := copystructure.Copy(t)
	if err != nil {
		return t, err
	}
	out, ok := v.(T)
	if !ok {
		return t, ErrCopyFailed
	}
	return out, nil
}
