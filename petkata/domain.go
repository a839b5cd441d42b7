package petkata

import (
	"strings"

	"github.com/hasbyte1/go-collections-kata/collections"
)

// PetType is the kind of a pet. Its value is the lowercase name used in
// roster files.
type PetType string

const (
	Cat     PetType = "cat"
	Dog     PetType = "dog"
	Hamster PetType = "hamster"
	Turtle  PetType = "turtle"
	Bird    PetType = "bird"
	Snake   PetType = "snake"
)

var emojis = map[PetType]string{
	Cat:     "🐱",
	Dog:     "🐶",
	Hamster: "🐹",
	Turtle:  "🐢",
	Bird:    "🐦",
	Snake:   "🐍",
}

// PetTypes lists every pet type in declaration order.
func PetTypes() []PetType {
	return []PetType{Cat, Dog, Hamster, Turtle, Bird, Snake}
}

// Emoji returns the pictogram for t, or "" for an unknown type.
func (t PetType) Emoji() string { return emojis[t] }

// Valid reports whether t is one of the known pet types.
func (t PetType) Valid() bool {
	_, ok := emojis[t]
	return ok
}

// Pet is an animal owned by a [Person].
type Pet struct {
	Type PetType `yaml:"type" json:"type" validate:"required,pettype"`
	Name string  `yaml:"name" json:"name" validate:"required"`
	Age  int     `yaml:"age" json:"age" validate:"gte=0"`
}

// Person is a pet owner. A person may have no pets.
type Person struct {
	FirstName string `yaml:"firstName" json:"firstName" validate:"required"`
	LastName  string `yaml:"lastName" json:"lastName" validate:"required"`
	Pets      []Pet  `yaml:"pets" json:"pets" validate:"dive"`
}

// FullName returns "First Last".
func (p *Person) FullName() string { return p.FirstName + " " + p.LastName }

// Named reports whether name matches the person's full name.
func (p *Person) Named(name string) bool { return p.FullName() == name }

// HasPet reports whether the person owns at least one pet of type t.
func (p *Person) HasPet(t PetType) bool {
	for _, pet := range p.Pets {
		if pet.Type == t {
			return true
		}
	}
	return false
}

// IsPetPerson reports whether the person owns any pet.
func (p *Person) IsPetPerson() bool { return len(p.Pets) > 0 }

// NumberOfPets returns how many pets the person owns.
func (p *Person) NumberOfPets() int { return len(p.Pets) }

// PetTypes counts the person's pets by type.
func (p *Person) PetTypes() *collections.HashBag[PetType] {
	bag := collections.NewBag[PetType]()
	for _, pet := range p.Pets {
		bag.Add(pet.Type)
	}
	return bag
}

// PetNames returns the names of the person's pets, in roster order.
func (p *Person) PetNames() []string {
	names := make([]string, len(p.Pets))
	for i, pet := range p.Pets {
		names[i] = pet.Name
	}
	return names
}

// String returns the full name followed by the person's pet emojis.
func (p *Person) String() string {
	var sb strings.Builder
	sb.WriteString(p.FullName())
	for _, pet := range p.Pets {
		sb.WriteString(" ")
		sb.WriteString(pet.Type.Emoji())
	}
	return sb.String()
}
