package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/edp1096/toy-cell/pkg/analysis"
	"github.com/edp1096/toy-cell/pkg/interp"
	"github.com/edp1096/toy-cell/pkg/params"
	"github.com/edp1096/toy-cell/pkg/table"
	"github.com/edp1096/toy-cell/pkg/util"
)

func (a *app) sweepCmd() *cobra.Command {
	var (
		variable string
		from, to float64
		at       map[string]string
	)

	cmd := &cobra.Command{
		Use:   "sweep <set> <parameter>",
		Short: "Evaluate a function parameter over a range of one input",
		Long: "Evaluate a function parameter over a linear range of one input, e.g.\n" +
			"  cellparams sweep OKane2022 \"Positive electrode OCP [V]\" --var sto --from 0 --to 1\n" +
			"Other inputs are given with --at; T and ce default to the set's reference\n" +
			"temperature and initial electrolyte concentration.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadSet(args[0])
			if err != nil {
				return err
			}
			fixed, err := a.inputs(at)
			if err != nil {
				return err
			}
			delete(fixed, variable)

			points := a.intSetting(cmd, "points")
			sw := analysis.NewSweep(args[1], variable, from, to, points, fixed)
			if err := runAnalysis(sw, v); err != nil {
				return err
			}
			a.logger.Debug("Sweep done", zap.String("key", args[1]), zap.String("var", variable), zap.Int("points", points))

			printSweep(cmd.OutOrStdout(), variable, args[1], sw.GetResults())
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&variable, "var", "sto", "input to sweep: sto, T, ce, cs, csmax, cli or lsei")
	fs.Float64Var(&from, "from", 0, "first value")
	fs.Float64Var(&to, "to", 1, "last value")
	fs.Int("points", 11, "number of values")
	fs.StringToStringVar(&at, "at", nil, "fixed inputs, e.g. --at T=298.15,cs=15000")
	return cmd
}

func (a *app) pointCmd() *cobra.Command {
	var at map[string]string

	cmd := &cobra.Command{
		Use:   "point <set>",
		Short: "Evaluate every parameter of a set at one operating point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadSet(args[0])
			if err != nil {
				return err
			}
			inputs, err := a.inputs(at)
			if err != nil {
				return err
			}

			op := analysis.NewOperatingPoint(inputs)
			if err := runAnalysis(op, v); err != nil {
				return err
			}

			results := op.GetResults()
			out := cmd.OutOrStdout()
			for _, key := range v.Keys() {
				if !v.KindOf(key).IsFunction() {
					continue
				}
				if values, ok := results[key]; ok {
					fmt.Fprintf(out, "%s = %s\n", key, util.FormatParameter(key, values[0]))
				}
			}
			if skipped := op.Skipped(); len(skipped) > 0 {
				a.logger.Info("Parameters skipped for missing inputs", zap.Strings("keys", skipped))
			}
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&at, "at", nil, "inputs, e.g. --at sto=0.5,T=298.15,cs=15000,csmax=28700")
	return cmd
}

func (a *app) tableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <name|file.csv>",
		Short: "Resample an embedded or external OCP table with an interpolator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				t   *table.Table
				err error
			)
			if strings.HasSuffix(args[0], ".csv") {
				t, err = table.LoadFile(args[0])
			} else {
				t, err = table.Load(args[0])
			}
			if err != nil {
				return err
			}

			kind, err := interp.ParseKind(a.stringSetting(cmd, "interpolator"))
			if err != nil {
				return err
			}
			ip, err := interp.New(t.Name, kind, t.X, t.Y)
			if err != nil {
				return err
			}

			points := a.intSetting(cmd, "points")
			if points < 2 {
				return fmt.Errorf("points must be at least 2, got %d", points)
			}
			lo, hi := ip.Domain()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s, %s interpolation of %d rows\n", t.Name, kind, t.Len())
			for _, x := range floats.Span(make([]float64, points), lo, hi) {
				fmt.Fprintf(out, "%.6f,%.6f\n", x, ip.Eval(x))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.String("interpolator", "cubic", "cubic, natural, linear, pchip or akima")
	fs.Int("points", 11, "number of resampled values")
	return cmd
}

func runAnalysis(an analysis.Analysis, v *params.Values) error {
	if err := an.Setup(v); err != nil {
		return err
	}
	return an.Execute()
}

func printSweep(w io.Writer, variable, key string, results map[string][]float64) {
	xs, ys := results["X"], results["Y"]
	fmt.Fprintf(w, "%d points\n", len(xs))
	fmt.Fprintf(w, "%-12s %s\n", variable, key)
	for i := range xs {
		fmt.Fprintf(w, "%-12s %s\n", strings.TrimSpace(util.FormatMagnitude(xs[i])), util.FormatParameter(key, ys[i]))
	}
}
