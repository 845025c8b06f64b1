// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ik5/subsynth/synth"
)

func runParams(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDEFAULT\tNORMALIZED\tRANGE")

	params := synth.NewParams()
	for id := range synth.NumParams {
		fmt.Fprintf(tw, "%d\t%s\t%g %s\t%.4f\t0-%g %s\n",
			id, id, params.Value(id), id.Unit(), params.Normalized(id), id.Scale(), id.Unit())
	}

	return tw.Flush()
}
