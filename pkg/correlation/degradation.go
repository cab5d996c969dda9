package correlation

import "github.com/edp1096/toy-cell/internal/consts"

// PlatingExchangeCurrentDensityOKane2020 is the lithium plating exchange-current
// density [A.m-2] for kinetic rate constant kPlating [m.s-1].
func PlatingExchangeCurrentDensityOKane2020(kPlating, ce, cLi, T float64) float64 {
	return consts.FARADAY * kPlating * ce
}

// StrippingExchangeCurrentDensityOKane2020 is the lithium stripping
// exchange-current density [A.m-2]; cLi is the plated lithium concentration.
func StrippingExchangeCurrentDensityOKane2020(kPlating, ce, cLi, T float64) float64 {
	return consts.FARADAY * kPlating * cLi
}

// SEILimitedDeadLithiumOKane2022 is the dead lithium decay rate [s-1]. It
// falls as the SEI of thickness lSEI grows beyond its initial thickness lSEI0.
func SEILimitedDeadLithiumOKane2022(gamma0, lSEI0, lSEI float64) float64 {
	return gamma0 * lSEI0 / lSEI
}
