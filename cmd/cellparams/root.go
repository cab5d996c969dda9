package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/edp1096/toy-cell/internal/config"
	"github.com/edp1096/toy-cell/internal/logging"
	"github.com/edp1096/toy-cell/pkg/params"
	"github.com/edp1096/toy-cell/pkg/table"
)

const envPrefix = "CELLPARAMS"

type app struct {
	cfg    *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:               "cellparams",
		Short:             "Inspect lithium-ion cell parameter sets",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file with defaults for these flags (yaml, toml or json)")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("overrides", "", "YAML file of parameter values applied to the set before the command runs")
	pf.Float64("temperature", 0, "temperature T [K] used when a command needs one; 0 uses the set's reference temperature")
	a.bindFlags(pf)

	a.cfg.SetEnvPrefix(envPrefix)
	a.cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.cfg.AutomaticEnv()

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.evalCmd(),
		a.sweepCmd(),
		a.pointCmd(),
		a.exportCmd(),
		a.tableCmd(),
	)
	return root
}

func (a *app) bindFlags(fs *pflag.FlagSet) {
	if err := a.cfg.BindPFlags(fs); err != nil {
		panic(fmt.Sprintf("binding flags: %v", err))
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if path := a.cfg.GetString("config"); path != "" {
		a.cfg.SetConfigFile(path)
		if err := a.cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger, err := logging.NewLogger(a.cfg.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger = logger.Named("cellparams")
	table.SetLogger(a.logger.Named("table"))

	a.logger.Debug("Running command", zap.String("command", cmd.CommandPath()))
	return nil
}

// loadSet builds the named set and applies the override file, if any.
func (a *app) loadSet(name string) (*params.Values, error) {
	v, err := params.Get(name)
	if err != nil {
		return nil, err
	}

	path := a.cfg.GetString("overrides")
	if path == "" {
		return v, nil
	}
	overrides, err := config.LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	if err := v.Update(overrides, true); err != nil {
		return nil, err
	}
	a.logger.Info("Applied parameter overrides",
		zap.String("set", v.Name()),
		zap.String("file", path),
		zap.Int("count", len(overrides)))
	return v, nil
}

// inputs merges --at values with the configured temperature.
func (a *app) inputs(at map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(at)+1)
	for name, s := range at {
		x, err := parseFloat(name, s)
		if err != nil {
			return nil, err
		}
		out[name] = x
	}
	if _, ok := out["T"]; !ok {
		if T := a.cfg.GetFloat64("temperature"); T > 0 {
			out["T"] = T
		}
	}
	return out, nil
}

// intSetting reads a command flag, falling back to the config file or
// environment when the flag was not given.
func (a *app) intSetting(cmd *cobra.Command, name string) int {
	if f := cmd.Flags().Lookup(name); f != nil && !f.Changed && a.cfg.IsSet(name) {
		return a.cfg.GetInt(name)
	}
	n, _ := cmd.Flags().GetInt(name)
	return n
}

func (a *app) stringSetting(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil && !f.Changed && a.cfg.IsSet(name) {
		return a.cfg.GetString(name)
	}
	s, _ := cmd.Flags().GetString(name)
	return s
}
