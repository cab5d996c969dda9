package params

import (
	"github.com/edp1096/toy-cell/pkg/correlation"
)

// OKane2022 returns the parameters of an LG M50LT cell from O'Kane et al.
// (2022), built on Chen et al. (2020) and the particle mechanics of Ai et al.
// (2020). The degradation values were used to fit SEI models to experimental
// data and are not claimed to represent the true cell.
func OKane2022() *Values {
	return newValues("OKane2022", map[string]any{
		KeyChemistry: "lithium_ion",

		// lithium plating
		"Lithium metal partial molar volume [m3.mol-1]":  1.3e-05,
		KeyPlatingRateConstant:                           1e-09,
		"Exchange-current density for plating [A.m-2]":   platingExchangeCurrent(correlation.PlatingExchangeCurrentDensityOKane2020),
		"Exchange-current density for stripping [A.m-2]": platingExchangeCurrent(correlation.StrippingExchangeCurrentDensityOKane2020),
		"Initial plated lithium concentration [mol.m-3]": 0.0,
		"Typical plated lithium concentration [mol.m-3]": 1000.0,
		"Lithium plating transfer coefficient":           0.65,
		KeyDeadLithiumDecayConstant:                      1e-06,
		"Dead lithium decay rate [s-1]":                  deadLithiumDecayRate(correlation.SEILimitedDeadLithiumOKane2022),

		// sei
		"Ratio of lithium moles to SEI moles":                    1.0,
		"SEI partial molar volume [m3.mol-1]":                    9.585e-05,
		"SEI reaction exchange current density [A.m-2]":          1.5e-07,
		"SEI resistivity [Ohm.m]":                                200000.0,
		"SEI solvent diffusivity [m2.s-1]":                       2.5e-22,
		"Bulk solvent concentration [mol.m-3]":                   2636.0,
		"SEI open-circuit potential [V]":                         0.4,
		"SEI electron conductivity [S.m-1]":                      8.95e-14,
		"SEI lithium interstitial diffusivity [m2.s-1]":          1e-20,
		"Lithium interstitial reference concentration [mol.m-3]": 15.0,
		KeyInitialSEIThickness:                                   5e-09,
		// nonzero so crack SEI growth never divides by zero
		"Initial SEI on cracks thickness [m]":                      5e-13,
		"EC initial concentration in electrolyte [mol.m-3]":        4541.0,
		"EC diffusivity [m2.s-1]":                                  2e-18,
		"SEI kinetic rate constant [m.s-1]":                        1e-12,
		"SEI growth activation energy [J.mol-1]":                   38000.0,
		"Negative electrode reaction-driven LAM factor [m3.mol-1]": 0.0,
		"Positive electrode reaction-driven LAM factor [m3.mol-1]": 0.0,

		// cell
		"Negative current collector thickness [m]":                       1.2e-05,
		"Negative electrode thickness [m]":                               8.52e-05,
		"Separator thickness [m]":                                        1.2e-05,
		"Positive electrode thickness [m]":                               7.56e-05,
		"Positive current collector thickness [m]":                       1.6e-05,
		"Electrode height [m]":                                           0.065,
		"Electrode width [m]":                                            1.58,
		"Cell cooling surface area [m2]":                                 0.00531,
		"Cell volume [m3]":                                               2.42e-05,
		"Cell thermal expansion coefficient [m.K-1]":                     1.1e-06,
		"Negative current collector conductivity [S.m-1]":                58411000.0,
		"Positive current collector conductivity [S.m-1]":                36914000.0,
		"Negative current collector density [kg.m-3]":                    8960.0,
		"Positive current collector density [kg.m-3]":                    2700.0,
		"Negative current collector specific heat capacity [J.kg-1.K-1]": 385.0,
		"Positive current collector specific heat capacity [J.kg-1.K-1]": 897.0,
		"Negative current collector thermal conductivity [W.m-1.K-1]":    401.0,
		"Positive current collector thermal conductivity [W.m-1.K-1]":    237.0,
		"Nominal cell capacity [A.h]":                                    5.0,
		"Current function [A]":                                           5.0,
		"Contact resistance [Ohm]":                                       0,

		// negative electrode
		"Negative electrode conductivity [S.m-1]":                                      100.0,
		"Maximum concentration in negative electrode [mol.m-3]":                        28700.0,
		"Negative particle diffusivity [m2.s-1]":                                       DiffusivityFunc(correlation.GraphiteDiffusivityDualfoil1998),
		"Negative electrode OCP [V]":                                                   StoichiometryFunc(correlation.GraphiteOCPEnertechAi2020),
		"Negative electrode porosity":                                                  0.33,
		"Negative electrode active material volume fraction":                           0.61,
		"Negative particle radius [m]":                                                 5e-06,
		"Negative electrode Bruggeman coefficient (electrolyte)":                       2.914,
		"Negative electrode Bruggeman coefficient (electrode)":                         0.0,
		"Negative electrode charge transfer coefficient":                               0.5,
		"Negative electrode double-layer capacity [F.m-2]":                             0.2,
		"Negative electrode exchange-current density [A.m-2]":                          ExchangeCurrentFunc(correlation.GraphiteExchangeCurrentDensityDualfoil1998),
		"Negative electrode density [kg.m-3]":                                          2470.0,
		"Negative electrode specific heat capacity [J.kg-1.K-1]":                       1080.2,
		"Negative electrode thermal conductivity [W.m-1.K-1]":                          1.04,
		"Negative electrode OCP entropic change [V.K-1]":                               StoichiometryFunc(correlation.GraphiteEntropyEnertechAi2020),
		"Negative electrode Poisson's ratio":                                           0.3,
		"Negative electrode Young's modulus [Pa]":                                      15000000000.0,
		"Negative electrode reference concentration for free of deformation [mol.m-3]": 0.0,
		"Negative electrode partial molar volume [m3.mol-1]":                           3.1e-06,
		"Negative electrode volume change":                                             StoichiometryFunc(correlation.GraphiteVolumeChangeAi2020),
		"Negative electrode initial crack length [m]":                                  2e-08,
		"Negative electrode initial crack width [m]":                                   1.5e-08,
		"Negative electrode number of cracks per unit area [m-2]":                      3180000000000000.0,
		"Negative electrode Paris' law constant b":                                     1.12,
		"Negative electrode Paris' law constant m":                                     2.2,
		"Negative electrode cracking rate":                                             TemperatureFunc(correlation.GraphiteCrackingRateAi2020),
		"Negative electrode activation energy for cracking rate [J.mol-1]":             0.0,
		"Negative electrode LAM constant proportional term [s-1]":                      0.0,
		"Negative electrode LAM constant exponential term":                             2.0,
		"Negative electrode critical stress [Pa]":                                      60000000.0,

		// positive electrode
		"Positive electrode conductivity [S.m-1]":                                      0.18,
		KeyPositiveMaxConcentration:                                                    63104.0,
		"Positive particle diffusivity [m2.s-1]":                                       DiffusivityFunc(correlation.NMCLGM50DiffusivityChen2020),
		"Positive electrode OCP [V]":                                                   StoichiometryFunc(correlation.NMCLGM50OCPChen2020),
		"Positive electrode porosity":                                                  0.335,
		"Positive electrode active material volume fraction":                           0.665,
		"Positive particle radius [m]":                                                 5.22e-06,
		"Positive electrode Bruggeman coefficient (electrolyte)":                       1.5,
		"Positive electrode Bruggeman coefficient (electrode)":                         1.5,
		"Positive electrode charge transfer coefficient":                               0.5,
		"Positive electrode double-layer capacity [F.m-2]":                             0.2,
		"Positive electrode exchange-current density [A.m-2]":                          ExchangeCurrentFunc(correlation.NMCLGM50ExchangeCurrentDensityChen2020),
		"Positive electrode density [kg.m-3]":                                          3262.0,
		"Positive electrode specific heat capacity [J.kg-1.K-1]":                       700.0,
		"Positive electrode thermal conductivity [W.m-1.K-1]":                          2.1,
		"Positive electrode OCP entropic change [V.K-1]":                               0.0,
		"Positive electrode Poisson's ratio":                                           0.2,
		"Positive electrode Young's modulus [Pa]":                                      375000000000.0,
		"Positive electrode reference concentration for free of deformation [mol.m-3]": 0.0,
		KeyPositivePartialMolarVolume:                                                  1.25e-05,
		"Positive electrode volume change":                                             positiveVolumeChange(correlation.VolumeChangeAi2020),
		"Positive electrode initial crack length [m]":                                  2e-08,
		"Positive electrode initial crack width [m]":                                   1.5e-08,
		"Positive electrode number of cracks per unit area [m-2]":                      3180000000000000.0,
		"Positive electrode Paris' law constant b":                                     1.12,
		"Positive electrode Paris' law constant m":                                     2.2,
		"Positive electrode cracking rate":                                             TemperatureFunc(correlation.CrackingRateAi2020),
		"Positive electrode LAM constant proportional term [s-1]":                      2.7778e-07,
		"Positive electrode LAM constant exponential term":                             2.0,
		"Positive electrode critical stress [Pa]":                                      375000000.0,

		// separator
		"Separator porosity":                            0.47,
		"Separator Bruggeman coefficient (electrolyte)": 1.5,
		"Separator density [kg.m-3]":                    397.0,
		"Separator specific heat capacity [J.kg-1.K-1]": 700.0,
		"Separator thermal conductivity [W.m-1.K-1]":    0.16,

		// electrolyte
		"Initial concentration in electrolyte [mol.m-3]": 1000.0,
		"Cation transference number":                     0.2594,
		"Thermodynamic factor":                           1.0,
		"Electrolyte diffusivity [m2.s-1]":               ElectrolyteFunc(correlation.ElectrolyteDiffusivityNyman2008Arrhenius),
		KeyElectrolyteConductivity:                       ElectrolyteFunc(correlation.ElectrolyteConductivityNyman2008Arrhenius),

		// experiment
		"Reference temperature [K]":                                 298.15,
		"Total heat transfer coefficient [W.m-2.K-1]":               10.0,
		"Ambient temperature [K]":                                   298.15,
		"Number of electrodes connected in parallel to make a cell": 1.0,
		"Number of cells connected in series to make a battery":     1.0,
		"Lower voltage cut-off [V]":                                 2.5,
		"Upper voltage cut-off [V]":                                 4.2,
		"Open-circuit voltage at 0% SOC [V]":                        2.5,
		"Open-circuit voltage at 100% SOC [V]":                      4.2,
		"Initial concentration in negative electrode [mol.m-3]":     29866.0,
		"Initial concentration in positive electrode [mol.m-3]":     17038.0,
		"Initial temperature [K]":                                   298.15,

		KeyCitations: []string{"OKane2022", "OKane2020", "Chen2020", "Ai2020"},
	})
}
