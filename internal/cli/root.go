package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-collections-kata/collections"
	"github.com/hasbyte1/go-collections-kata/internal/logger"
	"github.com/hasbyte1/go-collections-kata/petkata"
)

// rosterEnv names the environment variable consulted when --roster is not
// given.
const rosterEnv = "PETKATA_ROSTER"

func Execute() {
	cmd, cleanup := newRootCmd()
	err := cmd.Execute()
	cleanup()
	if err != nil {
		os.Exit(1)
	}
}

// options are the persistent flags shared by every subcommand.
type options struct {
	roster  string
	json    bool
	debug   bool
	cleanup func()
}

// newRootCmd builds the command tree. The returned cleanup restores the
// silent logger and must run after Execute, whether or not it failed.
func newRootCmd() (*cobra.Command, func()) {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "petkata",
		Short:        "Run the pet kata reports against a roster",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.cleanup = logger.Setup(logger.Config{
				Output: cmd.ErrOrStderr(),
				Debug:  opts.debug,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.roster, "roster", "", "YAML roster file (default: $"+rosterEnv+", else the built-in roster)")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		countsCmd(opts),
		byLastNameCmd(opts),
		byPetTypeCmd(opts),
		statsCmd(opts),
	)
	return cmd, func() {
		if opts.cleanup != nil {
			opts.cleanup()
			opts.cleanup = nil
		}
	}
}

// loadPeople resolves the roster from --roster, then $PETKATA_ROSTER, then
// the built-in roster.
func (o *options) loadPeople() (*collections.FastList[*petkata.Person], error) {
	path := o.roster
	if path == "" {
		path = os.Getenv(rosterEnv)
	}

	log := logger.L()
	if path == "" {
		people := petkata.People()
		log.Debug("roster.loaded", "source", "builtin", "people", people.Size())
		return people, nil
	}

	people, err := petkata.LoadFile(path, petkata.WithStrict())
	if err != nil {
		log.Error("roster.load_failed", "path", path, "err", err)
		return nil, err
	}
	log.Debug("roster.loaded", "source", path, "people", people.Size())
	return people, nil
}

// render writes v as indented JSON when --json is set and calls text
// otherwise.
func (o *options) render(cmd *cobra.Command, v any, text func(*bytes.Buffer)) error {
	var buf bytes.Buffer
	if o.json {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		buf.Write(b)
		buf.WriteByte('\n')
	} else {
		text(&buf)
	}
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
