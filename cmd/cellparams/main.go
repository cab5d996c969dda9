// Command cellparams inspects the lithium-ion cell parameter sets: it lists
// them, prints their values, evaluates and sweeps their correlations, and
// exports them as YAML.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
