package params

import (
	"github.com/edp1096/toy-cell/pkg/correlation"
)

// Ecker2015 returns the parameters of a Kokam SLPB 75106100 cell (graphite /
// NCO) from Ecker et al. (2015), with tab placement from Hales et al. (2019)
// and thermal properties of a Kokam 5 Ah pouch cell from Zhao et al. (2018).
// Electrode and electrolyte fits are those of S. O'Kane in Richardson et al.
// (2020). The SEI and plating values are examples used to fit SEI growth
// models and are not claimed to represent this cell.
func Ecker2015() *Values {
	return newValues("Ecker2015", map[string]any{
		KeyChemistry: "lithium_ion",

		// lithium plating
		"Lithium metal partial molar volume [m3.mol-1]":   1.3e-05,
		KeyPlatingRateConstant:                            1e-10,
		"Exchange-current density for plating [A.m-2]":    platingExchangeCurrent(correlation.PlatingExchangeCurrentDensityOKane2020),
		"Exchange-current density for stripping [A.m-2]":  platingExchangeCurrent(correlation.StrippingExchangeCurrentDensityOKane2020),
		"Initial plated lithium concentration [mol.m-3]":  0.0,
		"Typical plated lithium concentration [mol.m-3]":  1000.0,
		"Lithium plating transfer coefficient":            0.5,
		KeyDeadLithiumDecayConstant:                       1e-06,
		"Dead lithium decay rate [s-1]":                   deadLithiumDecayRate(correlation.SEILimitedDeadLithiumOKane2022),

		// sei
		"Ratio of lithium moles to SEI moles":                      2.0,
		"SEI partial molar volume [m3.mol-1]":                      9.585e-05,
		"SEI reaction exchange current density [A.m-2]":            1.5e-07,
		"SEI resistivity [Ohm.m]":                                  200000.0,
		"SEI solvent diffusivity [m2.s-1]":                         2.5e-22,
		"Bulk solvent concentration [mol.m-3]":                     2636.0,
		"SEI open-circuit potential [V]":                           0.4,
		"SEI electron conductivity [S.m-1]":                        8.95e-14,
		"SEI lithium interstitial diffusivity [m2.s-1]":            1e-20,
		"Lithium interstitial reference concentration [mol.m-3]":   15.0,
		KeyInitialSEIThickness:                                     5e-09,
		"EC initial concentration in electrolyte [mol.m-3]":        4541.0,
		"EC diffusivity [m2.s-1]":                                  2e-18,
		"SEI kinetic rate constant [m.s-1]":                        1e-12,
		"SEI growth activation energy [J.mol-1]":                   0.0,
		"Negative electrode reaction-driven LAM factor [m3.mol-1]": 0.0,
		"Positive electrode reaction-driven LAM factor [m3.mol-1]": 0.0,

		// cell
		"Negative current collector thickness [m]":                       1.4e-05,
		"Negative electrode thickness [m]":                               7.4e-05,
		"Separator thickness [m]":                                        2e-05,
		"Positive electrode thickness [m]":                               5.4e-05,
		"Positive current collector thickness [m]":                       1.5e-05,
		"Electrode height [m]":                                           0.101,
		"Electrode width [m]":                                            0.085,
		"Negative tab width [m]":                                         0.007,
		"Negative tab centre y-coordinate [m]":                           0.0045,
		"Negative tab centre z-coordinate [m]":                           0.101,
		"Positive tab width [m]":                                         0.0069,
		"Positive tab centre y-coordinate [m]":                           0.0309,
		"Positive tab centre z-coordinate [m]":                           0.101,
		"Cell cooling surface area [m2]":                                 0.0172,
		"Cell volume [m3]":                                               1.52e-06,
		"Negative current collector conductivity [S.m-1]":                58411000.0,
		"Positive current collector conductivity [S.m-1]":                36914000.0,
		"Negative current collector density [kg.m-3]":                    8933.0,
		"Positive current collector density [kg.m-3]":                    2702.0,
		"Negative current collector specific heat capacity [J.kg-1.K-1]": 385.0,
		"Positive current collector specific heat capacity [J.kg-1.K-1]": 903.0,
		"Negative current collector thermal conductivity [W.m-1.K-1]":    398.0,
		"Positive current collector thermal conductivity [W.m-1.K-1]":    238.0,
		"Nominal cell capacity [A.h]":                                    0.15625,
		"Current function [A]":                                           0.15652,
		"Contact resistance [Ohm]":                                       0,

		// negative electrode
		"Negative electrode conductivity [S.m-1]":                  14.0,
		"Maximum concentration in negative electrode [mol.m-3]":    31920.0,
		"Negative particle diffusivity [m2.s-1]":                   DiffusivityFunc(correlation.GraphiteDiffusivityEcker2015),
		"Negative electrode OCP [V]":                               StoichiometryFunc(correlation.GraphiteOCPEcker2015),
		"Negative electrode porosity":                              0.329,
		"Negative electrode active material volume fraction":       0.372403,
		"Negative particle radius [m]":                             1.37e-05,
		"Negative electrode Bruggeman coefficient (electrolyte)":   1.6372789338386007,
		"Negative electrode Bruggeman coefficient (electrode)":     0.0,
		"Negative electrode exchange-current density [A.m-2]":      ExchangeCurrentFunc(correlation.GraphiteExchangeCurrentDensityEcker2015),
		"Negative electrode density [kg.m-3]":                      1555.0,
		"Negative electrode specific heat capacity [J.kg-1.K-1]":   1437.0,
		"Negative electrode thermal conductivity [W.m-1.K-1]":      1.58,
		"Negative electrode OCP entropic change [V.K-1]":           0.0,

		// positive electrode
		"Positive electrode conductivity [S.m-1]":                68.1,
		KeyPositiveMaxConcentration:                              48580.0,
		"Positive particle diffusivity [m2.s-1]":                 DiffusivityFunc(correlation.NCODiffusivityEcker2015),
		"Positive electrode OCP [V]":                             StoichiometryFunc(correlation.NCOOCPEcker2015),
		"Positive electrode porosity":                            0.296,
		"Positive electrode active material volume fraction":     0.40832,
		"Positive particle radius [m]":                           6.5e-06,
		"Positive electrode Bruggeman coefficient (electrolyte)": 1.5442267190786427,
		"Positive electrode Bruggeman coefficient (electrode)":   0.0,
		"Positive electrode exchange-current density [A.m-2]":    ExchangeCurrentFunc(correlation.NCOExchangeCurrentDensityEcker2015),
		"Positive electrode density [kg.m-3]":                    2895.0,
		"Positive electrode specific heat capacity [J.kg-1.K-1]": 1270.0,
		"Positive electrode thermal conductivity [W.m-1.K-1]":    1.04,
		"Positive electrode OCP entropic change [V.K-1]":         0.0,

		// separator
		"Separator porosity":                            0.508,
		"Separator Bruggeman coefficient (electrolyte)": 1.9804586773134945,
		"Separator density [kg.m-3]":                    1017.0,
		"Separator specific heat capacity [J.kg-1.K-1]": 1978.0,
		"Separator thermal conductivity [W.m-1.K-1]":    0.34,

		// electrolyte
		"Initial concentration in electrolyte [mol.m-3]": 1000.0,
		"Cation transference number":                     0.26,
		"Thermodynamic factor":                           1.0,
		"Electrolyte diffusivity [m2.s-1]":               conductivityDiffusivity(correlation.ElectrolyteDiffusivityEcker2015),
		KeyElectrolyteConductivity:                       ElectrolyteFunc(correlation.ElectrolyteConductivityEcker2015),

		// experiment
		"Reference temperature [K]": 296.15,
		"Negative current collector surface heat transfer coefficient [W.m-2.K-1]": 10.0,
		"Positive current collector surface heat transfer coefficient [W.m-2.K-1]": 10.0,
		"Negative tab heat transfer coefficient [W.m-2.K-1]":                       10.0,
		"Positive tab heat transfer coefficient [W.m-2.K-1]":                       10.0,
		"Edge heat transfer coefficient [W.m-2.K-1]":                               10.0,
		"Total heat transfer coefficient [W.m-2.K-1]":                              10.0,
		"Ambient temperature [K]":                                                  298.15,
		"Number of electrodes connected in parallel to make a cell":                1.0,
		"Number of cells connected in series to make a battery":                    1.0,
		"Lower voltage cut-off [V]":                                                2.5,
		"Upper voltage cut-off [V]":                                                4.2,
		"Open-circuit voltage at 0% SOC [V]":                                       2.5,
		"Open-circuit voltage at 100% SOC [V]":                                     4.2,
		"Initial concentration in negative electrode [mol.m-3]":                    26120.05,
		"Initial concentration in positive electrode [mol.m-3]":                    12630.8,
		"Initial temperature [K]":                                                  298.15,

		KeyCitations: []string{
			"Ecker2015i",
			"Ecker2015ii",
			"Zhao2018",
			"Hales2019",
			"Richardson2020",
			"OKane2020",
		},
	})
}
