package correlation

import (
	"math"

	"github.com/edp1096/toy-cell/internal/consts"
)

// GraphiteDiffusivityDualfoil1998 is the MCMB 2528 graphite diffusivity [m2.s-1]
// from the Dualfoil 1998 data set.
func GraphiteDiffusivityDualfoil1998(sto, T float64) float64 {
	const (
		dRef = 3.9e-14
		eD   = 5000.0
		tRef = 298.15
	)
	return dRef * Arrhenius(eD, tRef, T)
}

// GraphiteExchangeCurrentDensityDualfoil1998 is for graphite in LiPF6 EC:DMC [A.m-2].
func GraphiteExchangeCurrentDensityDualfoil1998(ce, csSurf, csMax, T float64) float64 {
	// (A/m2)(m3/mol)**1.5, includes reference concentrations
	mRef := 1e-11 * consts.FARADAY
	const eR = 5000.0
	return ButlerVolmer(mRef, Arrhenius(eR, 298.15, T), ce, csSurf, csMax)
}

// GraphiteEntropyEnertechAi2020 is the entropic change of the graphite OCP [V.K-1],
// a rational fit to the Enertech cell measurements.
func GraphiteEntropyEnertechAi2020(sto float64) float64 {
	num := Polyval(sto,
		-16515.05308, 38379.18127, -37147.8947, 19329.7549,
		-5812.278127, 1004.911008, -91.79325798, 3.299265709, 0.005269056)
	den := Polyval(sto,
		165705.8597, -385821.1607, 374577.3152, -195881.6488,
		59431.3, -10481.80419, 1017.234804, -48.09287227, 1)
	return 0.001 * num / den
}

// GraphiteVolumeChangeAi2020 is the relative particle volume change of graphite.
func GraphiteVolumeChangeAi2020(sto float64) float64 {
	return Polyval(sto,
		145.907, -681.229, 1334.442, -1415.710, 873.906,
		-312.528, 60.641, -5.706, 0.386, -4.966e-05)
}

// GraphiteCrackingRateAi2020 is the graphite particle cracking rate. The
// activation energy of the fit is not yet known and is taken as zero.
func GraphiteCrackingRateAi2020(T float64) float64 {
	return CrackingRate(3.9e-20, 0, 298.15, T)
}

// GraphiteCrackingRateArrheniusAi2020 is the cracking rate with an explicit
// activation energy ea [J.mol-1].
func GraphiteCrackingRateArrheniusAi2020(ea, T float64) float64 {
	return CrackingRate(3.9e-20, ea, 298.15, T)
}

// GraphiteLGM50DiffusivityChen2020 is the LG M50 graphite diffusivity [m2.s-1].
// The activation energy is not given by Chen et al. (2020) and is taken from
// Ecker et al. (2015).
func GraphiteLGM50DiffusivityChen2020(sto, T float64) float64 {
	return 3.3e-14 * Arrhenius(3.03e4, 298.15, T)
}

// GraphiteLGM50ExchangeCurrentDensityChen2020 is for LG M50 graphite [A.m-2].
func GraphiteLGM50ExchangeCurrentDensityChen2020(ce, csSurf, csMax, T float64) float64 {
	return ButlerVolmer(6.48e-7, Arrhenius(35000, 298.15, T), ce, csSurf, csMax)
}

// GraphiteDiffusivityEcker2015 is the Kokam graphite diffusivity [m2.s-1].
func GraphiteDiffusivityEcker2015(sto, T float64) float64 {
	dRef := 8.4e-13*math.Exp(-11.3*sto) + 8.2e-15
	return dRef * arrheniusProduct(3.03e4, 296, T)
}

// GraphiteOCPEcker2015 is an exp/tanh fit of the Kokam graphite OCP [V].
func GraphiteOCPEcker2015(sto float64) float64 {
	const (
		a = 0.716502
		b = 369.028
		c = 0.12193
		d = 35.6478
		e = 0.0530947
		g = 0.0169644
		h = 27.1365
		i = 0.312832
		j = 0.0199313
		k = 28.5697
		m = 0.614221
		n = 0.931153
		o = 36.328
		p = 1.10743
		q = 0.140031
		r = 0.0189193
		s = 21.1967
		t = 0.196176
	)

	return a*math.Exp(-b*sto) +
		c*math.Exp(-d*(sto-e)) -
		r*math.Tanh(s*(sto-t)) -
		g*math.Tanh(h*(sto-i)) -
		j*math.Tanh(k*(sto-m)) -
		n*math.Exp(o*(sto-p)) +
		q
}

// GraphiteExchangeCurrentDensityEcker2015 is for Kokam graphite in LiPF6 EC:DMC [A.m-2].
func GraphiteExchangeCurrentDensityEcker2015(ce, csSurf, csMax, T float64) float64 {
	const (
		kRef = 1.11e-10
		eR   = 53400.0
	)
	mRef := consts.FARADAY * kRef
	return ButlerVolmer(mRef, arrheniusProduct(eR, 296.15, T), ce, csSurf, csMax)
}
