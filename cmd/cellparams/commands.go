package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/edp1096/toy-cell/pkg/params"
	"github.com/edp1096/toy-cell/pkg/table"
	"github.com/edp1096/toy-cell/pkg/util"
)

func (a *app) listCmd() *cobra.Command {
	var tables bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the parameter sets, or the embedded tables with --tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := params.Names()
			if tables {
				names = table.Names()
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tables, "tables", false, "list the embedded data tables instead")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "show <set>",
		Short: "Print every parameter of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadSet(args[0])
			if err != nil {
				return err
			}

			keys := v.Keys()
			if search != "" {
				keys = v.Search(search)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, key := range keys {
				fmt.Fprintf(w, "%s\t%s\n", key, describe(v, key))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "only show parameters whose name contains this text")
	return cmd
}

// describe formats one parameter for display.
func describe(v *params.Values, key string) string {
	kind := v.KindOf(key)
	switch {
	case kind == params.KindScalar:
		return util.FormatParameter(key, v.Float(key))
	case kind == params.KindText:
		s, _ := v.Text(key)
		return s
	case kind == params.KindCitations:
		return strings.Join(v.Citations(), ", ")
	case kind.IsFunction():
		return fmt.Sprintf("%s(%s)", v.FuncName(key), strings.Join(kind.Args(), ", "))
	}
	return "?"
}

func (a *app) evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <set> <parameter> [args...]",
		Short: "Evaluate one parameter with positional arguments",
		Long: "Evaluate one parameter. Functions take their inputs in order, e.g.\n" +
			"  cellparams eval OKane2022 \"Negative particle diffusivity [m2.s-1]\" 0.5 298.15",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadSet(args[0])
			if err != nil {
				return err
			}

			key := args[1]
			names := v.KindOf(key).Args()
			inputs := make([]float64, 0, len(args)-2)
			for i, s := range args[2:] {
				name := fmt.Sprintf("argument %d", i+1)
				if i < len(names) {
					name = names[i]
				}
				x, err := parseFloat(name, s)
				if err != nil {
					return err
				}
				inputs = append(inputs, x)
			}

			y, err := v.Evaluate(key, inputs...)
			if err != nil {
				return err
			}
			a.logger.Debug("Evaluated parameter", zap.String("set", v.Name()), zap.String("key", key), zap.Float64s("args", inputs))
			fmt.Fprintln(cmd.OutOrStdout(), util.FormatParameter(key, y))
			return nil
		},
	}
}

func (a *app) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <set>",
		Short: "Write a set as YAML, with functions given by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.loadSet(args[0])
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(v.Export())
			if err != nil {
				return fmt.Errorf("encoding %s: %w", v.Name(), err)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			a.logger.Info("Exported parameter set", zap.String("set", v.Name()), zap.String("file", output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func parseFloat(name, s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s: %w", s, name, err)
	}
	return x, nil
}
