package petkata

import (
	"github.com/hasbyte1/go-collections-kata/collections"
	"github.com/hasbyte1/go-collections-kata/primitive"
)

// AllPets returns every pet of every person, in roster order.
func AllPets(people collections.RichIterable[*Person]) *collections.FastList[Pet] {
	return collections.FlatCollect(people, func(p *Person) []Pet { return p.Pets })
}

// FirstNames returns each person's first name, in roster order.
func FirstNames(people collections.RichIterable[*Person]) *collections.FastList[string] {
	return collections.Collect(people, func(p *Person) string { return p.FirstName })
}

// CountsByPetType counts the pets of all people by type.
func CountsByPetType(people collections.RichIterable[*Person]) *collections.HashBag[PetType] {
	return collections.CountBy(AllPets(people), func(p Pet) PetType { return p.Type })
}

// PeopleByLastName groups people by last name, keeping roster order.
func PeopleByLastName(people collections.RichIterable[*Person]) *collections.ListMultimap[string, *Person] {
	return collections.GroupBy(people, func(p *Person) string { return p.LastName })
}

// PeopleByPetType indexes people under every pet type they own. A person
// with two pets of the same type appears once under that type.
func PeopleByPetType(people collections.RichIterable[*Person]) *collections.SetMultimap[PetType, *Person] {
	return collections.GroupByEachInto(
		people,
		func(p *Person) []PetType { return p.PetTypes().ToSet().ToSlice() },
		collections.NewSetMultimap[PetType, *Person](),
	)
}

// PetAgeStatistics summarises the ages of all pets.
func PetAgeStatistics(people collections.RichIterable[*Person]) primitive.Statistics[int] {
	ages := collections.CollectInt(AllPets(people), func(p Pet) int { return p.Age })
	return ages.SummaryStatistics()
}
