// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndflat/flatten"
	"github.com/katalvlaran/ndflat/nested"
)

type flattenFlags struct {
	shape    []int
	colex    bool
	strategy string
	input    string
}

func newFlattenCmd() *cobra.Command {
	var f flattenFlags
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Read a JSON nested array and print it as a flat JSON array",
		Long: `Reads a JSON nested array from --input (stdin by default), checks it
against --shape and prints the selected elements as one flat JSON array.

Without --shape the full extents are inferred, which requires a rectangular
input. A --shape smaller than the input crops it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFlatten(cmd, f)
		},
	}
	fs := cmd.Flags()
	fs.IntSliceVar(&f.shape, "shape", nil, "extents to read, e.g. 2,3 (inferred when omitted)")
	fs.BoolVar(&f.colex, "colex", false, "colexicographic (first index fastest) output")
	fs.StringVar(&f.strategy, "strategy", flatten.DefaultStrategy.String(), "colexicographic strategy: reindex or direct")
	fs.StringVarP(&f.input, "input", "i", "", "input file (default stdin)")

	return cmd
}

func runFlatten(cmd *cobra.Command, f flattenFlags) error {
	strategy, err := flatten.ParseStrategy(f.strategy)
	if err != nil {
		return err
	}

	var r io.Reader = cmd.InOrStdin()
	if f.input != "" {
		file, err := os.Open(f.input)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}

	var x nested.Value[any]
	if err = json.NewDecoder(r).Decode(&x); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	shape := f.shape
	if !cmd.Flags().Changed("shape") {
		if shape, err = nested.InferShape(x); err != nil {
			return err
		}
	}
	if err = nested.Validate(x, shape); err != nil {
		return err
	}

	out := flatten.Flatten(x, shape, f.colex, flatten.WithStrategy(strategy))

	return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
}
