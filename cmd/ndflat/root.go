// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ndflat",
		Short:         "Flatten n-dimensional nested arrays and convert strided indices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newFlattenCmd(),
		newVind2BindCmd(),
		newBind2VindCmd(),
		newInd2SubCmd(),
		newSub2IndCmd(),
	)

	return root
}
