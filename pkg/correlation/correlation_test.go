package correlation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-cell/internal/consts"
	"github.com/edp1096/toy-cell/pkg/interp"
	"github.com/edp1096/toy-cell/pkg/table"
)

func TestGraphiteDiffusivityDualfoil1998AtReference(t *testing.T) {
	assert.Equal(t, 3.9e-14, GraphiteDiffusivityDualfoil1998(0.5, 298.15))
}

func TestArrheniusIsOneAtReference(t *testing.T) {
	for _, tRef := range []float64{250, 296, 298.15, 330} {
		assert.Equal(t, 1.0, Arrhenius(53400, tRef, tRef))
	}
	assert.Greater(t, Arrhenius(5000, 298.15, 320), 1.0)
	assert.Less(t, Arrhenius(5000, 298.15, 270), 1.0)
}

func TestDiffusivitiesAtReferenceTemperature(t *testing.T) {
	tests := []struct {
		name string
		fn   DiffusivityFunc
		tRef float64
		want float64
	}{
		{name: "graphite Dualfoil1998", fn: GraphiteDiffusivityDualfoil1998, tRef: 298.15, want: 3.9e-14},
		{name: "LiCoO2 Dualfoil1998", fn: LiCoO2DiffusivityDualfoil1998, tRef: 298.15, want: 5.387e-15},
		{name: "graphite LGM50 Chen2020", fn: GraphiteLGM50DiffusivityChen2020, tRef: 298.15, want: 3.3e-14},
		{name: "NMC LGM50 Chen2020", fn: NMCLGM50DiffusivityChen2020, tRef: 298.15, want: 4e-15},
		{name: "graphite Ecker2015", fn: GraphiteDiffusivityEcker2015, tRef: 296, want: 8.4e-13*math.Exp(-11.3*0.3) + 8.2e-15},
		{name: "NCO Ecker2015", fn: NCODiffusivityEcker2015, tRef: 296.15, want: 3.7e-13 - 3.4e-13*math.Exp(-12*(0.3-0.62)*(0.3-0.62))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, tt.fn(0.3, tt.tRef), 1e-12)
			assert.Greater(t, tt.fn(0.3, tt.tRef+20), tt.fn(0.3, tt.tRef))
		})
	}
}

func TestNMCLGM50OCPChen2020(t *testing.T) {
	sto := 0.5
	want := -0.8090*sto + 4.4875 -
		0.0428*math.Tanh(18.5138*(sto-0.5542)) -
		17.7326*math.Tanh(15.7890*(sto-0.3117)) +
		17.5842*math.Tanh(15.9308*(sto-0.3120))

	assert.Equal(t, want, NMCLGM50OCPChen2020(sto))
	assert.InDelta(t, 3.971958656403654, NMCLGM50OCPChen2020(sto), 1e-12)
}

func TestClosedFormValues(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"graphite OCP Ecker2015", GraphiteOCPEcker2015(0.5), 0.12402174861596844},
		{"NCO OCP Ecker2015", NCOOCPEcker2015(0.5), 3.947833586619904},
		{"graphite entropy Enertech", GraphiteEntropyEnertechAi2020(0.5), -0.00011033551613793307},
		{"graphite entropy Enertech low sto", GraphiteEntropyEnertechAi2020(0.1), 3.7823799133827516e-06},
		{"graphite volume change", GraphiteVolumeChangeAi2020(0.5), 0.051921043124995576},
		{"graphite volume change at zero", GraphiteVolumeChangeAi2020(0), -4.966e-05},
		{"LiCoO2 entropic change", LiCoO2EntropicChangeAi2020(0.5), -0.00021373364062513},
		{"electrolyte diffusivity Ai2020", ElectrolyteDiffusivityAi2020(1000, 298.15), 3.2227225286052635e-06},
		{"electrolyte conductivity Ai2020", ElectrolyteConductivityAi2020(1000, 298.15), 1.1943263637750605},
		{"dlnf/dlnc Ai2020", DlnfDlncAi2020(1000, 298.15, 0.38), 2.1661290322580644},
		{"electrolyte diffusivity Nyman2008", ElectrolyteDiffusivityNyman2008Arrhenius(1000, 298.15), 1.7694e-10},
		{"electrolyte conductivity Nyman2008", ElectrolyteConductivityNyman2008Arrhenius(1000, 298.15), 0.9487},
		{"electrolyte conductivity Ecker2015", ElectrolyteConductivityEcker2015(1000, 296), 0.9329},
		{"electrolyte diffusivity Ecker2015", ElectrolyteDiffusivityEcker2015(0.9329, 1000, 296), 2.4662573750754584e-10},
		{"graphite j0 Dualfoil1998", GraphiteExchangeCurrentDensityDualfoil1998(1000, 15000, 28700, 298.15), 0.4373883479346504},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.want, tt.got, 1e-9)
		})
	}
}

func TestOCPFiniteOnUnitInterval(t *testing.T) {
	ocps := map[string]StoichiometryFunc{
		"GraphiteOCPEcker2015":       GraphiteOCPEcker2015,
		"NCOOCPEcker2015":            NCOOCPEcker2015,
		"NMCLGM50OCPChen2020":        NMCLGM50OCPChen2020,
		"GraphiteOCPEnertechAi2020":  GraphiteOCPEnertechAi2020,
		"GraphiteLGM50OCPChen2020":   GraphiteLGM50OCPChen2020,
		"GraphiteEntropyEnertech":    GraphiteEntropyEnertechAi2020,
		"GraphiteVolumeChangeAi2020": GraphiteVolumeChangeAi2020,
		"LiCoO2EntropicChangeAi2020": LiCoO2EntropicChangeAi2020,
	}

	for name, fn := range ocps {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= 100; i++ {
				v := fn(float64(i) / 100)
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "sto=%g gives %g", float64(i)/100, v)
			}
		})
	}
}

func TestLiCoO2OCPFiniteOnTableRange(t *testing.T) {
	tbl := table.MustLoad("lico2_ocp_Ai2020")
	lo, hi := tbl.X[0], tbl.X[tbl.Len()-1]
	for i := 0; i <= 50; i++ {
		sto := lo + (hi-lo)*float64(i)/50
		v := LiCoO2OCPAi2020(sto)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.Greater(t, v, 3.0)
	}
}

func TestTabulatedOCPReproducesTable(t *testing.T) {
	tests := []struct {
		name string
		fn   StoichiometryFunc
	}{
		{"graphite_ocp_Enertech_Ai2020", GraphiteOCPEnertechAi2020},
		{"lico2_ocp_Ai2020", LiCoO2OCPAi2020},
		{"graphite_LGM50_ocp_Chen2020", GraphiteLGM50OCPChen2020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := table.MustLoad(tt.name)
			for i, x := range tbl.X {
				assert.Equal(t, tbl.Y[i], tt.fn(x))
			}
			mid := (tbl.X[3] + tbl.X[4]) / 2
			assert.Equal(t, tt.fn(mid), tt.fn(mid))
		})
	}
}

func TestTabulatedOCPKinds(t *testing.T) {
	fn, err := TabulatedOCP("graphite_LGM50_ocp_Chen2020", interp.Linear)
	require.NoError(t, err)

	tbl := table.MustLoad("graphite_LGM50_ocp_Chen2020")
	assert.InDelta(t, tbl.Y[10], fn(tbl.X[10]), 1e-15)

	between := fn((tbl.X[10] + tbl.X[11]) / 2)
	assert.InDelta(t, (tbl.Y[10]+tbl.Y[11])/2, between, 1e-12)

	_, err = TabulatedOCP("missing", interp.Cubic)
	assert.Error(t, err)
}

func TestExchangeCurrentDensities(t *testing.T) {
	fns := map[string]ExchangeCurrentFunc{
		"graphite Dualfoil1998":   GraphiteExchangeCurrentDensityDualfoil1998,
		"LiCoO2 Dualfoil1998":     LiCoO2ExchangeCurrentDensityDualfoil1998,
		"graphite LGM50 Chen2020": GraphiteLGM50ExchangeCurrentDensityChen2020,
		"NMC LGM50 Chen2020":      NMCLGM50ExchangeCurrentDensityChen2020,
		"graphite Ecker2015":      GraphiteExchangeCurrentDensityEcker2015,
		"NCO Ecker2015":           NCOExchangeCurrentDensityEcker2015,
	}

	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			j0 := fn(1000, 10000, 30000, 298.15)
			assert.Greater(t, j0, 0.0)
			assert.Equal(t, 0.0, fn(1000, 30000, 30000, 298.15))
			assert.True(t, math.IsNaN(fn(1000, 31000, 30000, 298.15)))
			assert.Greater(t, fn(1000, 10000, 30000, 318.15), j0)
		})
	}
}

func TestDegradation(t *testing.T) {
	assert.InEpsilon(t, consts.FARADAY*1e-9*1000, PlatingExchangeCurrentDensityOKane2020(1e-9, 1000, 5, 298.15), 1e-15)
	assert.InEpsilon(t, consts.FARADAY*1e-9*5, StrippingExchangeCurrentDensityOKane2020(1e-9, 1000, 5, 298.15), 1e-15)

	assert.InEpsilon(t, 1e-6, SEILimitedDeadLithiumOKane2022(1e-6, 5e-9, 5e-9), 1e-15)
	assert.InEpsilon(t, 0.5e-6, SEILimitedDeadLithiumOKane2022(1e-6, 5e-9, 1e-8), 1e-15)
	assert.True(t, math.IsInf(SEILimitedDeadLithiumOKane2022(1e-6, 5e-9, 0), 1))
}

func TestMechanics(t *testing.T) {
	assert.Equal(t, 3.9e-20, GraphiteCrackingRateAi2020(310))
	assert.Equal(t, 3.9e-20, CrackingRateAi2020(250))
	assert.Equal(t, 3.9e-20, LiCoO2CrackingRateAi2020(30000, 298.15))
	assert.Equal(t, 3.9e-20, GraphiteCrackingRateArrheniusAi2020(30000, 298.15))
	assert.Less(t, LiCoO2CrackingRateAi2020(30000, 318.15), 3.9e-20)

	assert.InEpsilon(t, 1.25e-5*63104*0.4, VolumeChangeAi2020(1.25e-5, 63104, 0.4), 1e-15)
	assert.Equal(t, VolumeChangeAi2020(1e-5, 5e4, 0.7), LiCoO2VolumeChangeAi2020(1e-5, 5e4, 0.7))
}

func TestPolyval(t *testing.T) {
	assert.Equal(t, 0.0, Polyval(2))
	assert.Equal(t, 7.0, Polyval(2, 7))
	// 2x^2 - 3x + 1 at x = 3
	assert.Equal(t, 10.0, Polyval(3, 2, -3, 1))
}
