// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/ndflat/index"
	"github.com/katalvlaran/ndflat/strides"
)

// layoutFlags describe a strided view on the command line.
type layoutFlags struct {
	shape   []int
	strides []int
	offset  int
	order   string
	mode    string
}

// layout is the parsed form of layoutFlags.
type layout struct {
	shape   []int
	strides []int
	offset  int
	order   strides.Order
	mode    index.Mode
}

func addLayoutFlags(fs *pflag.FlagSet, l *layoutFlags) {
	fs.IntSliceVar(&l.shape, "shape", nil, "view extents, e.g. 2,3 (required)")
	fs.IntSliceVar(&l.strides, "strides", nil, "view strides (default: contiguous in --order)")
	fs.IntVar(&l.offset, "offset", 0, "buffer index of the first view element")
	fs.StringVar(&l.order, "order", strides.RowMajor.String(), "row-major or column-major")
	fs.StringVar(&l.mode, "mode", index.Throw.String(), "out-of-range handling: throw, normalize, wrap or clamp")
}

func (l layoutFlags) parse() (layout, error) {
	order, err := strides.ParseOrder(l.order)
	if err != nil {
		return layout{}, err
	}
	mode, err := index.ParseMode(l.mode)
	if err != nil {
		return layout{}, err
	}
	if err = strides.ValidateShape(l.shape); err != nil {
		return layout{}, err
	}
	sx := l.strides
	if sx == nil {
		sx = strides.Shape2Strides(l.shape, order)
	}
	if len(sx) != len(l.shape) {
		return layout{}, fmt.Errorf("%d strides for %d dims: %w", len(sx), len(l.shape), index.ErrDimensionMismatch)
	}

	return layout{shape: l.shape, strides: sx, offset: l.offset, order: order, mode: mode}, nil
}

// parseInts converts positional arguments to integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// joinInts formats subscripts as a comma-separated tuple.
func joinInts(v []int) string {
	return strings.Join(lo.Map(v, func(x, _ int) string { return strconv.Itoa(x) }), ",")
}

// newLinearCmd builds a command converting each positional index with conv
// and printing one result per line.
func newLinearCmd(use, short string, conv func(l layout, idx int) (string, error)) *cobra.Command {
	var lf layoutFlags
	cmd := &cobra.Command{
		Use:   use + " IDX...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.parse()
			if err != nil {
				return err
			}
			idxs, err := parseInts(args)
			if err != nil {
				return err
			}
			for _, idx := range idxs {
				s, err := conv(l, idx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}

			return nil
		},
	}
	addLayoutFlags(cmd.Flags(), &lf)
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}

func newVind2BindCmd() *cobra.Command {
	return newLinearCmd("vind2bind", "Convert view indices to buffer indices", func(l layout, idx int) (string, error) {
		j, err := index.Vind2Bind(l.shape, l.strides, l.offset, l.order, idx, l.mode)
		return strconv.Itoa(j), err
	})
}

func newBind2VindCmd() *cobra.Command {
	return newLinearCmd("bind2vind", "Convert buffer indices to view indices", func(l layout, idx int) (string, error) {
		j, err := index.Bind2Vind(l.shape, l.strides, l.offset, l.order, idx, l.mode)
		return strconv.Itoa(j), err
	})
}

func newInd2SubCmd() *cobra.Command {
	return newLinearCmd("ind2sub", "Convert linear indices to subscripts", func(l layout, idx int) (string, error) {
		sub, err := index.Ind2Sub(l.shape, l.strides, l.offset, l.order, idx, l.mode)
		return joinInts(sub), err
	})
}

func newSub2IndCmd() *cobra.Command {
	var lf layoutFlags
	cmd := &cobra.Command{
		Use:   "sub2ind SUB...",
		Short: "Convert one subscript tuple to a buffer index",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lf.parse()
			if err != nil {
				return err
			}
			subs, err := parseInts(args)
			if err != nil {
				return err
			}
			j, err := index.Sub2Ind(l.shape, l.strides, l.offset, subs, l.mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), j)

			return nil
		},
	}
	addLayoutFlags(cmd.Flags(), &lf)
	_ = cmd.MarkFlagRequired("shape")

	return cmd
}
