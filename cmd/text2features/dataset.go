package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognicore/text2features/pkg/text2features/dataset"
	"github.com/cognicore/text2features/pkg/text2features/internalerr"
)

func (a *app) datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Turn an extract report into a boolean feature dataset",
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			a.bindFlags(cmd, map[string]string{
				"input":     "input",
				"output":    "output",
				"features":  "features",
				"delimiter": "delimiter",
			})
		},
		RunE: a.runDataset,
	}

	f := cmd.Flags()
	f.StringP("input", "i", "", "extract report (required)")
	f.StringP("output", "o", "", "dataset CSV (required)")
	f.String("features", "", "universe file fixing the feature columns (default: all report keywords)")
	f.String("delimiter", ",", `report field delimiter, a single character or "tab"`)
	return cmd
}

func (a *app) runDataset(cmd *cobra.Command, args []string) error {
	input, output := a.v.GetString("input"), a.v.GetString("output")
	if input == "" || output == "" {
		return fmt.Errorf("%w: --input and --output are required", internalerr.ErrInvalidInput)
	}
	delim, err := parseDelimiter(a.v.GetString("delimiter"))
	if err != nil {
		return err
	}

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()
	rows, err := dataset.ReadKeywordsCSV(in, delim)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	ds := dataset.FromRows(rows)
	if path := a.v.GetString("features"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		features, err := dataset.ReadUniverse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		ds = dataset.WithFeatures(rows, features)
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := ds.WriteCSV(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	a.log.WithField("features", len(ds.Features)).WithField("documents", len(ds.Names)).Info("dataset written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d documents x %d features to %s\n", len(ds.Names), len(ds.Features), output)
	return nil
}
