// Package correlation holds empirical property fits for lithium-ion cell
// materials: solid and electrolyte diffusivities, exchange-current densities,
// open-circuit potentials, entropic coefficients, volume change, cracking and
// degradation rates.
//
// Every function is pure. Inputs are SI: stoichiometry [-], concentration
// [mol.m-3], temperature [K], thickness [m]. Inputs outside the range of a fit
// are not checked; NaN and Inf propagate from the math package.
package correlation

import (
	"math"

	"github.com/edp1096/toy-cell/internal/consts"
)

// Calling conventions of the parameter functions.
type (
	DiffusivityFunc     func(sto, T float64) float64
	ExchangeCurrentFunc func(ce, csSurf, csMax, T float64) float64
	StoichiometryFunc   func(sto float64) float64
	ElectrolyteFunc     func(ce, T float64) float64
	PlatingFunc         func(ce, cLi, T float64) float64
	TemperatureFunc     func(T float64) float64
	ThicknessFunc       func(lSEI float64) float64
)

// Arrhenius returns exp(ea/R * (1/tRef - 1/T)). It is 1 at T = tRef.
func Arrhenius(ea, tRef, T float64) float64 {
	return math.Exp(ea / consts.GAS * (1/tRef - 1/T))
}

// arrheniusProduct is the split form exp(-ea/(R T)) * exp(ea/(R tRef)) used by the Ecker fits.
func arrheniusProduct(ea, tRef, T float64) float64 {
	return math.Exp(-ea/(consts.GAS*T)) * math.Exp(ea/(consts.GAS*tRef))
}

// ButlerVolmer returns the symmetric exchange-current density
// mRef * arrhenius * ce^0.5 * cs^0.5 * (csMax - cs)^0.5.
func ButlerVolmer(mRef, arrhenius, ce, csSurf, csMax float64) float64 {
	return mRef * arrhenius * math.Sqrt(ce) * math.Sqrt(csSurf) * math.Sqrt(csMax-csSurf)
}

// CrackingRate returns kCr * exp(ea/R * (1/T - 1/tRef)). The sign of the
// exponent is the reverse of Arrhenius, as in Ai et al. (2020).
func CrackingRate(kCr, ea, tRef, T float64) float64 {
	return kCr * math.Exp(ea/consts.GAS*(1/T-1/tRef))
}

// LinearVolumeChange returns omega * cMax * sto.
func LinearVolumeChange(omega, cMax, sto float64) float64 {
	return omega * cMax * sto
}

// Polyval evaluates a polynomial with coefficients ordered from the highest power down.
func Polyval(x float64, coeffs ...float64) float64 {
	var y float64
	for _, c := range coeffs {
		y = y*x + c
	}
	return y
}
