package runner

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Summary renders results as an aligned text table: one row per case with
// scale, optimum, achieved makespan, relative error and time. Unsolved
// cases are marked as such.
func Summary(results []Result) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tProblem\tSolver\tjob x machine\tOptimum\tSolution\tError %\tTime")
	for _, r := range results {
		if !r.Solved {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d x %d\t%s\tunsolved\t-\t%.1fs\n",
				r.CaseID+1, r.Problem, r.Solver, r.Jobs, r.Machines,
				r.Optimum, r.Elapsed.Seconds())
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d x %d\t%s\t%g\t%.1f\t%.1fs\n",
			r.CaseID+1, r.Problem, r.Solver, r.Jobs, r.Machines,
			r.Optimum, r.Makespan, r.Error(), r.Elapsed.Seconds())
	}
	w.Flush()
	return sb.String()
}
