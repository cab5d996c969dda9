package correlation

import (
	"github.com/edp1096/toy-cell/pkg/interp"
	"github.com/edp1096/toy-cell/pkg/table"
)

// Tabulated open-circuit potentials, fitted once at package initialization.
var (
	graphiteOCPEnertechAi2020 = mustInterpolant("graphite_ocp_Enertech_Ai2020")
	liCoO2OCPAi2020           = mustInterpolant("lico2_ocp_Ai2020")
	graphiteLGM50OCPChen2020  = mustInterpolant("graphite_LGM50_ocp_Chen2020")
)

func mustInterpolant(name string) *interp.Interpolant {
	t := table.MustLoad(name)
	ip, err := interp.New(t.Name, interp.Cubic, t.X, t.Y)
	if err != nil {
		panic(err)
	}
	return ip
}

// GraphiteOCPEnertechAi2020 interpolates the Enertech graphite OCP [V].
func GraphiteOCPEnertechAi2020(sto float64) float64 {
	return graphiteOCPEnertechAi2020.Eval(sto)
}

// LiCoO2OCPAi2020 interpolates the LiCoO2 OCP [V].
func LiCoO2OCPAi2020(sto float64) float64 {
	return liCoO2OCPAi2020.Eval(sto)
}

// GraphiteLGM50OCPChen2020 interpolates the LG M50 graphite OCP [V].
func GraphiteLGM50OCPChen2020(sto float64) float64 {
	return graphiteLGM50OCPChen2020.Eval(sto)
}

// TabulatedOCP fits an interpolant of the given kind to the embedded table name.
func TabulatedOCP(name string, kind interp.Kind) (StoichiometryFunc, error) {
	t, err := table.Load(name)
	if err != nil {
		return nil, err
	}
	ip, err := interp.New(t.Name, kind, t.X, t.Y)
	if err != nil {
		return nil, err
	}
	return ip.Eval, nil
}
