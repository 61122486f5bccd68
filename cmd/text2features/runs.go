package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cognicore/text2features/pkg/text2features/internalerr"
	"github.com/cognicore/text2features/pkg/text2features/store/sqlite"
)

func (a *app) runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List extraction runs recorded in a database",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			a.bindFlags(cmd, map[string]string{
				"db":       "db",
				"limit":    "limit",
				"universe": "universe",
			})
		},
		RunE: a.runRuns,
	}

	f := cmd.Flags()
	f.String("db", "", "SQLite database (required)")
	f.Int("limit", 20, "runs to list, 0 for all")
	f.String("universe", "", "print the keyword universe of this run instead")
	return cmd
}

func (a *app) runRuns(cmd *cobra.Command, args []string) error {
	dbPath := a.v.GetString("db")
	if dbPath == "" {
		return fmt.Errorf("%w: --db is required", internalerr.ErrInvalidInput)
	}

	ctx := cmd.Context()
	st, err := sqlite.Open(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	if runID := a.v.GetString("universe"); runID != "" {
		universe, err := st.Universe(ctx, runID)
		if err != nil {
			return err
		}
		if len(universe) > 0 {
			fmt.Fprintln(out, strings.Join(universe, "\n"))
		}
		return nil
	}

	runs, err := st.Runs(ctx, a.v.GetInt("limit"))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSTARTED\tALGORITHM\tDOCUMENTS\tOUTPUT")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.StartedAt.Local().Format(time.DateTime), r.Algorithm, r.Documents, r.Output)
	}
	return tw.Flush()
}
