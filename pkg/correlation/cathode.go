package correlation

import (
	"math"

	"github.com/edp1096/toy-cell/internal/consts"
)

// LiCoO2DiffusivityDualfoil1998 is the LiCoO2 diffusivity [m2.s-1].
func LiCoO2DiffusivityDualfoil1998(sto, T float64) float64 {
	return 5.387e-15 * Arrhenius(5000, 298.15, T)
}

// LiCoO2ExchangeCurrentDensityDualfoil1998 is for LiCoO2 in LiPF6 EC:DMC [A.m-2].
func LiCoO2ExchangeCurrentDensityDualfoil1998(ce, csSurf, csMax, T float64) float64 {
	mRef := 1e-11 * consts.FARADAY
	return ButlerVolmer(mRef, Arrhenius(5000, 298.15, T), ce, csSurf, csMax)
}

// LiCoO2EntropicChangeAi2020 is the entropic change of the LiCoO2 OCP [V.K-1].
func LiCoO2EntropicChangeAi2020(sto float64) float64 {
	return Polyval(sto,
		-3.20392657, 14.5719049, -27.9047599, 29.1744564,
		-17.992018, 6.54799331, -1.30382445, 0.109667298)
}

// VolumeChangeAi2020 is the positive particle volume change omega * cMax * sto,
// where omega is the partial molar volume [m3.mol-1] and cMax the maximum
// concentration [mol.m-3].
func VolumeChangeAi2020(omega, cMax, sto float64) float64 {
	return LinearVolumeChange(omega, cMax, sto)
}

// LiCoO2VolumeChangeAi2020 is the same linear law as VolumeChangeAi2020.
func LiCoO2VolumeChangeAi2020(omega, cMax, sto float64) float64 {
	return LinearVolumeChange(omega, cMax, sto)
}

// LiCoO2CrackingRateAi2020 is the LiCoO2 cracking rate for activation energy ea [J.mol-1].
func LiCoO2CrackingRateAi2020(ea, T float64) float64 {
	return CrackingRate(3.9e-20, ea, 298.15, T)
}

// CrackingRateAi2020 is the positive particle cracking rate with zero activation energy.
func CrackingRateAi2020(T float64) float64 {
	return CrackingRate(3.9e-20, 0, 298.15, T)
}

// NMCLGM50DiffusivityChen2020 is the LG M50 NMC 811 diffusivity [m2.s-1].
// Activation energy from O'Kane et al. (2022), after Cabanero et al. (2018).
func NMCLGM50DiffusivityChen2020(sto, T float64) float64 {
	return 4e-15 * Arrhenius(25000, 298.15, T)
}

// NMCLGM50OCPChen2020 is the LG M50 NMC 811 open-circuit potential [V].
func NMCLGM50OCPChen2020(sto float64) float64 {
	return -0.8090*sto +
		4.4875 -
		0.0428*math.Tanh(18.5138*(sto-0.5542)) -
		17.7326*math.Tanh(15.7890*(sto-0.3117)) +
		17.5842*math.Tanh(15.9308*(sto-0.3120))
}

// NMCLGM50ExchangeCurrentDensityChen2020 is for LG M50 NMC 811 [A.m-2].
func NMCLGM50ExchangeCurrentDensityChen2020(ce, csSurf, csMax, T float64) float64 {
	return ButlerVolmer(3.42e-6, Arrhenius(17800, 298.15, T), ce, csSurf, csMax)
}

// NCODiffusivityEcker2015 is the Kokam NCO diffusivity [m2.s-1].
func NCODiffusivityEcker2015(sto, T float64) float64 {
	dRef := 3.7e-13 - 3.4e-13*math.Exp(-12*(sto-0.62)*(sto-0.62))
	return dRef * arrheniusProduct(8.06e4, 296.15, T)
}

// NCOOCPEcker2015 is a tanh fit of the Kokam NCO OCP [V]; parameter m was
// refitted by S. O'Kane.
func NCOOCPEcker2015(sto float64) float64 {
	const (
		a = -2.35211
		c = 0.0747061
		d = 31.886
		e = 0.0219921
		g = 0.640243
		h = 5.48623
		i = 0.439245
		j = 3.82383
		k = 4.12167
		m = 0.176187
		n = 0.0542123
		o = 18.2919
		p = 0.762272
		q = 4.23285
		r = -6.34984
		s = 2.66395
		t = 0.174352
	)

	return a*sto -
		c*math.Tanh(d*(sto-e)) -
		r*math.Tanh(s*(sto-t)) -
		g*math.Tanh(h*(sto-i)) -
		j*math.Tanh(k*(sto-m)) -
		n*math.Tanh(o*(sto-p)) +
		q
}

// NCOExchangeCurrentDensityEcker2015 is for Kokam NCO in LiPF6 EC:DMC [A.m-2].
func NCOExchangeCurrentDensityEcker2015(ce, csSurf, csMax, T float64) float64 {
	mRef := consts.FARADAY * 3.01e-11
	return ButlerVolmer(mRef, arrheniusProduct(4.36e4, 296.15, T), ce, csSurf, csMax)
}
