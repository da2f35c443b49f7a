package main

import (
	"context"
	"io"

	"github.com/japaniel/abfrag/pkg/abfrag"
	"github.com/japaniel/abfrag/pkg/config"
	"github.com/japaniel/abfrag/pkg/db"
	"github.com/japaniel/abfrag/pkg/prompt"
	"github.com/spf13/cobra"
)

// cli holds what the commands share for one invocation.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	verbose bool
	debug   bool

	cfg   *config.Config
	store *db.Store
	app   *abfrag.App
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	c := &cli{in: in, out: out, errOut: errOut}
	defer c.close()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "abfrag",
		Short: "Drill German verb conjugations from a local vocabulary database",
		Long: `abfrag quizzes you on German verb forms (infinitive, present, preterite,
perfect) stored in a local SQLite database, and upserts vocabulary from JSON
files or interactive entry.

Without a subcommand it runs the irregular verb exercise.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := abfrag.DefaultVerbOptions()
			opts.WordAmount = c.cfg.Exercise.WordAmount
			_, err := c.app.StartVerbExercise(cmd.Context(), opts)
			return err
		},
	}
	root.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Run command verbosely")
	root.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "Turn debugging information on")

	root.AddCommand(c.exerciseCmd(), c.upsertCmd())
	return root
}

func (c *cli) exerciseCmd() *cobra.Command {
	exercise := &cobra.Command{
		Use:   "exercise",
		Short: "Run an exercise",
	}

	var (
		opts        abfrag.VerbExerciseOptions
		noIrregular bool
	)
	verb := &cobra.Command{
		Use:   "verb",
		Short: "Quiz verb conjugations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noIrregular {
				opts.Irregular = false
			}
			if !cmd.Flags().Changed("word-amount") {
				opts.WordAmount = c.cfg.Exercise.WordAmount
			}
			_, err := c.app.StartVerbExercise(cmd.Context(), opts)
			return err
		},
	}
	verb.Flags().BoolVarP(&opts.Irregular, "irregular", "i", true, "Only irregular verbs")
	verb.Flags().BoolVar(&noIrregular, "no-irregular", false, "Only regular verbs")
	verb.Flags().BoolVar(&opts.FreqBias, "freq-bias", false, "Bias sampling toward frequent verbs (accepted, not applied)")
	verb.Flags().Int32VarP(&opts.WordAmount, "word-amount", "w", 10, "Number of verbs to quiz")
	verb.MarkFlagsMutuallyExclusive("irregular", "no-irregular")

	exercise.AddCommand(verb)
	return exercise
}

func (c *cli) upsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upsert [PAYLOAD]",
		Short: "Insert or replace vocabulary from a .json file or interactive entry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input *string
			if len(args) == 1 {
				input = &args[0]
			}
			n, err := c.app.HandleUpsert(cmd.Context(), input)
			if err != nil {
				return err
			}
			cmd.Printf("Upserted %d records.\n", n)
			return nil
		},
	}
}

// setup loads config, configures logging and readies the database before
// any command runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg

	logCfg := cfg.Log
	switch {
	case c.debug:
		logCfg.Level = "debug"
	case c.verbose:
		logCfg.Level = "info"
	}
	abfrag.NewLogger(logCfg, c.errOut)

	path, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}
	store, err := db.EnsureReady(cmd.Context(), path)
	if err != nil {
		return err
	}
	c.store = store
	c.app = &abfrag.App{
		Store:    store,
		Prompter: prompt.NewTerminal(c.in, c.out),
		Out:      c.out,
	}
	return nil
}

func (c *cli) close() {
	if c.store != nil {
		c.store.Close()
	}
}
