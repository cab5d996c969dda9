package correlation

import (
	"math"

	"github.com/edp1096/toy-cell/internal/consts"
)

// ElectrolyteDiffusivityEcker2015 is the LiPF6 in EC:DMC diffusivity [m2.s-1]
// derived from the electrolyte conductivity sigmaE [S.m-1] at (ce, T) through
// the Nernst-Einstein relation.
func ElectrolyteDiffusivityEcker2015(sigmaE, ce, T float64) float64 {
	return (consts.BOLTZMANN / (consts.FARADAY * consts.CHARGE)) * sigmaE * T / ce
}

// ElectrolyteConductivityEcker2015 is the LiPF6 in EC:DMC conductivity [S.m-1].
func ElectrolyteConductivityEcker2015(ce, T float64) float64 {
	// mol/m^3 to mol/l
	cm := 1e-3 * ce

	// value at T = 296K
	sigma296 := Polyval(cm, 0.2667, -1.2983, 1.7919, 0.1726)

	const eK = 1.71e4
	c := 296 * math.Exp(eK/(consts.GAS*296))
	return c * sigma296 * math.Exp(-eK/(consts.GAS*T)) / T
}

// ElectrolyteDiffusivityAi2020 is the LiPF6 in EC:DMC diffusivity of the Ai (2020) set.
func ElectrolyteDiffusivityAi2020(ce, T float64) float64 {
	return math.Pow(10, -4.43-54/(T-229-5e-3*ce)-0.22e-3*ce)
}

// ElectrolyteConductivityAi2020 is the LiPF6 in EC:DMC conductivity [S.m-1] of the Ai (2020) set.
func ElectrolyteConductivityAi2020(ce, T float64) float64 {
	inner := (-10.5 + 0.668e-3*ce + 0.494e-6*ce*ce) +
		(0.074-1.78e-5*ce-8.86e-10*ce*ce)*T +
		(-6.96e-5+2.8e-8*ce)*T*T
	return 1e-4 * ce * inner * inner
}

// DlnfDlncAi2020 is the thermodynamic factor d ln f / d ln c of the electrolyte
// for cation transference number tPlus.
func DlnfDlncAi2020(ce, T, tPlus float64) float64 {
	const tRef = 298.15
	c := ce / 1000
	return (0.601 - 0.24*math.Sqrt(c) + 0.982*(1-0.0052*(T-tRef))*math.Pow(c, 1.5)) / (1 - tPlus)
}

// ElectrolyteDiffusivityNyman2008Arrhenius is the LiPF6 in EC:EMC diffusivity
// [m2.s-1] of Nyman et al. (2008), with the temperature dependence of Ecker
// et al. (2015) since Nyman gives none.
func ElectrolyteDiffusivityNyman2008Arrhenius(ce, T float64) float64 {
	c := ce / 1000
	d := 8.794e-11*c*c - 3.972e-10*c + 4.862e-10
	return d * Arrhenius(17000, 298.15, T)
}

// ElectrolyteConductivityNyman2008Arrhenius is the LiPF6 in EC:EMC conductivity
// [S.m-1] of Nyman et al. (2008) with the Ecker (2015) temperature dependence.
func ElectrolyteConductivityNyman2008Arrhenius(ce, T float64) float64 {
	c := ce / 1000
	sigma := 0.1297*c*c*c - 2.51*math.Pow(c, 1.5) + 3.329*c
	return sigma * Arrhenius(17000, 298.15, T)
}
