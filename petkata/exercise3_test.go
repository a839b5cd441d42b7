package petkata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-collections-kata/collections"
	"github.com/hasbyte1/go-collections-kata/petkata"
	"github.com/hasbyte1/go-collections-kata/verify"
)

func TestGetCountsByPetType(t *testing.T) {
	people := petkata.People()

	petTypes := collections.Collect(
		collections.FlatCollect(people, func(p *petkata.Person) []petkata.Pet { return p.Pets }),
		func(p petkata.Pet) petkata.PetType { return p.Type },
	)
	counts := collections.ToBag(petTypes)

	want := map[petkata.PetType]int{
		petkata.Cat:     2,
		petkata.Dog:     2,
		petkata.Hamster: 2,
		petkata.Snake:   1,
		petkata.Turtle:  1,
		petkata.Bird:    1,
	}
	for petType, n := range want {
		assert.Equal(t, n, counts.OccurrencesOf(petType), petType)
	}
	verify.BagsEqual(t, counts, petkata.CountsByPetType(people))
}

func TestGetPeopleByLastName(t *testing.T) {
	lastNamesToPeople := collections.GroupBy(petkata.People(), func(p *petkata.Person) string { return p.LastName })
	verify.IterableSize[*petkata.Person](t, 3, lastNamesToPeople.Get("Smith"))

	byLastName := petkata.PeopleByLastName(petkata.People())
	verify.IterableSize[*petkata.Person](t, 3, byLastName.Get("Smith"))
	assert.Equal(t, []string{"Smith", "Snake", "Bird", "Turtle", "Hamster", "Doe"}, byLastName.KeysView())
}

func TestGetPeopleByTheirPets(t *testing.T) {
	peopleByPetType := petkata.PeopleByPetType(petkata.People())

	want := map[petkata.PetType]int{
		petkata.Cat:     2,
		petkata.Dog:     2,
		petkata.Hamster: 1,
		petkata.Turtle:  1,
		petkata.Bird:    1,
		petkata.Snake:   1,
	}
	for petType, n := range want {
		verify.IterableSize[*petkata.Person](t, n, peopleByPetType.Get(petType))
	}
}
