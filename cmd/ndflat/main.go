// SPDX-License-Identifier: MIT

// Command ndflat flattens JSON nested arrays and converts between linear
// indices and subscripts of strided layouts.
//
//	echo '[[1,2],[3,4]]' | ndflat flatten --colex
//	ndflat vind2bind --shape 2,2 --strides -2,1 --offset 2 0 1 2 3
//	ndflat ind2sub --shape 2,3 --order column-major 4
package main

import "log"

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("ndflat: %v", err)
	}
}
