package petkata_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections-kata/petkata"
)

func TestPeopleReturnsFreshCopies(t *testing.T) {
	first := petkata.People()
	mary, _ := first.GetFirst()
	mary.FirstName = "Changed"
	mary.Pets[0].Name = "Changed"

	second := petkata.People()
	again, _ := second.GetFirst()
	assert.Equal(t, "Mary", again.FirstName)
	assert.Equal(t, "Tabby", again.Pets[0].Name)
	assert.Equal(t, 8, second.Size())
}

func TestLoadPeople(t *testing.T) {
	const roster = `
people:
  - firstName: Ann
    lastName: Lee
    pets:
      - {type: dog, name: Rex, age: 5}
`
	people, err := petkata.LoadPeople(strings.NewReader(roster))
	require.NoError(t, err)
	require.Equal(t, 1, people.Size())

	ann, _ := people.GetFirst()
	assert.Equal(t, "Ann Lee", ann.FullName())
	assert.True(t, ann.HasPet(petkata.Dog))
}

func TestLoadPeopleEmpty(t *testing.T) {
	people, err := petkata.LoadPeople(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, people.IsEmpty())
}

func TestLoadPeopleValidation(t *testing.T) {
	cases := map[string]string{
		"unknown pet type": `people: [{firstName: A, lastName: B, pets: [{type: goldfish, name: C, age: 1}]}]`,
		"missing name":     `people: [{firstName: A, pets: []}]`,
		"negative age":     `people: [{firstName: A, lastName: B, pets: [{type: cat, name: C, age: -1}]}]`,
		"missing pet name": `people: [{firstName: A, lastName: B, pets: [{type: cat, age: 1}]}]`,
	}
	for name, roster := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := petkata.LoadPeople(strings.NewReader(roster))
			assert.ErrorIs(t, err, petkata.ErrInvalidRoster)
		})
	}
}

func TestLoadPeopleStrict(t *testing.T) {
	const roster = `people: [{firstName: A, lastName: B, nickname: C}]`

	_, err := petkata.LoadPeople(strings.NewReader(roster))
	require.NoError(t, err)

	_, err = petkata.LoadPeople(strings.NewReader(roster), petkata.WithStrict())
	require.Error(t, err)
	assert.NotErrorIs(t, err, petkata.ErrInvalidRoster)
}

func TestLoadFile(t *testing.T) {
	_, err := petkata.LoadFile(filepath.Join("testdata", "invalid.yaml"))
	assert.ErrorIs(t, err, petkata.ErrInvalidRoster)

	_, err = petkata.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPetType(t *testing.T) {
	for _, pt := range petkata.PetTypes() {
		assert.True(t, pt.Valid(), pt)
		assert.NotEmpty(t, pt.Emoji(), pt)
	}
	assert.False(t, petkata.PetType("goldfish").Valid())
	assert.Equal(t, "🐱", petkata.Cat.Emoji())
}
