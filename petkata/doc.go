// Package petkata is the pet kata domain: a small roster of people and their
// pets, plus the reports the kata exercises ask for, written with the
// collections library.
//
//	people := petkata.People()
//	counts := petkata.CountsByPetType(people)
//	counts.OccurrencesOf(petkata.Cat) // 2
//
// The roster ships embedded in the package. [LoadPeople] and [LoadFile]
// read any other roster in the same YAML layout.
package petkata
