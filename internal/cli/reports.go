package cli

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collections-kata/collections"
	"github.com/hasbyte1/go-collections-kata/petkata"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func countsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Count pets by type, most common first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			people, err := opts.loadPeople()
			if err != nil {
				return err
			}

			counts := petkata.CountsByPetType(people)
			ranked := counts.TopOccurrences(counts.SizeDistinct())

			out := make(map[petkata.PetType]int, len(ranked))
			for _, p := range ranked {
				out[p.First] = p.Second
			}
			return opts.render(cmd, out, func(buf *bytes.Buffer) {
				for _, p := range ranked {
					fmt.Fprintf(buf, "%s %-8s %d\n", p.First.Emoji(), p.First, p.Second)
				}
			})
		},
	}
}

func byLastNameCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "by-last-name [LAST_NAME]",
		Short: "Group people by last name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := opts.loadPeople()
			if err != nil {
				return err
			}

			groups := petkata.PeopleByLastName(people)
			keys := groups.KeysView()
			if len(args) == 1 {
				keys = slices.DeleteFunc(keys, func(k string) bool { return k != args[0] })
				if len(keys) == 0 {
					return fmt.Errorf("no people with last name %q", args[0])
				}
			}

			out := make(map[string][]string, len(keys))
			for _, k := range keys {
				out[k] = collections.Collect(groups.Get(k), (*petkata.Person).FullName).ToSlice()
			}
			return opts.render(cmd, out, func(buf *bytes.Buffer) {
				for _, k := range keys {
					fmt.Fprintf(buf, "%s: %s\n", k, strings.Join(out[k], ", "))
				}
			})
		},
	}
}

func byPetTypeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "by-pet-type [TYPE]",
		Short: "List the owners of each pet type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := petkata.PetTypes()
			if len(args) == 1 {
				t := petkata.PetType(strings.ToLower(args[0]))
				if !t.Valid() {
					return fmt.Errorf("unknown pet type %q", args[0])
				}
				types = []petkata.PetType{t}
			}

			people, err := opts.loadPeople()
			if err != nil {
				return err
			}

			owners := petkata.PeopleByPetType(people)
			out := make(map[petkata.PetType][]string, len(types))
			for _, t := range types {
				names := collections.Collect(owners.Get(t), (*petkata.Person).FullName).ToSlice()
				slices.Sort(names)
				out[t] = names
			}
			return opts.render(cmd, out, func(buf *bytes.Buffer) {
				for _, t := range types {
					fmt.Fprintf(buf, "%s %-8s %s\n", t.Emoji(), t, strings.Join(out[t], ", "))
				}
			})
		},
	}
}

type ageStats struct {
	Count   int     `json:"count"`
	Sum     int     `json:"sum"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
}

func statsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise pet ages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			people, err := opts.loadPeople()
			if err != nil {
				return err
			}

			s := petkata.PetAgeStatistics(people)
			out := ageStats{Count: s.Count, Sum: s.Sum, Min: s.Min, Max: s.Max, Average: s.Average()}
			return opts.render(cmd, out, func(buf *bytes.Buffer) {
				fmt.Fprintf(buf, "pets:    %d\n", out.Count)
				fmt.Fprintf(buf, "ages:    %d-%d\n", out.Min, out.Max)
				fmt.Fprintf(buf, "total:   %d\n", out.Sum)
				fmt.Fprintf(buf, "average: %.2f\n", out.Average)
			})
		},
	}
}
