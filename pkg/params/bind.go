package params

import "math"

// Parameters read by bound functions.
const (
	KeyPlatingRateConstant        = "Lithium plating kinetic rate constant [m.s-1]"
	KeyDeadLithiumDecayConstant   = "Dead lithium decay constant [s-1]"
	KeyInitialSEIThickness        = "Initial SEI thickness [m]"
	KeyPositivePartialMolarVolume = "Positive electrode partial molar volume [m3.mol-1]"
	KeyPositiveMaxConcentration   = "Maximum concentration in positive electrode [mol.m-3]"
	KeyElectrolyteConductivity    = "Electrolyte conductivity [S.m-1]"
)

func platingExchangeCurrent(fn func(kPlating, ce, cLi, T float64) float64) binder {
	return binder{kind: KindPlating, fn: funcName(fn), bind: func(v *Values) any {
		return PlatingFunc(func(ce, cLi, T float64) float64 {
			return fn(v.Float(KeyPlatingRateConstant), ce, cLi, T)
		})
	}}
}

func deadLithiumDecayRate(fn func(gamma0, lSEI0, lSEI float64) float64) binder {
	return binder{kind: KindThickness, fn: funcName(fn), bind: func(v *Values) any {
		return ThicknessFunc(func(lSEI float64) float64 {
			return fn(v.Float(KeyDeadLithiumDecayConstant), v.Float(KeyInitialSEIThickness), lSEI)
		})
	}}
}

func positiveVolumeChange(fn func(omega, cMax, sto float64) float64) binder {
	return binder{kind: KindStoichiometry, fn: funcName(fn), bind: func(v *Values) any {
		return StoichiometryFunc(func(sto float64) float64 {
			return fn(v.Float(KeyPositivePartialMolarVolume), v.Float(KeyPositiveMaxConcentration), sto)
		})
	}}
}

// conductivityDiffusivity feeds the set's electrolyte conductivity at (ce, T) into fn.
func conductivityDiffusivity(fn func(sigmaE, ce, T float64) float64) binder {
	return binder{kind: KindElectrolyte, fn: funcName(fn), bind: func(v *Values) any {
		return ElectrolyteFunc(func(ce, T float64) float64 {
			sigma, err := v.Electrolyte(KeyElectrolyteConductivity)
			if err != nil {
				return math.NaN()
			}
			return fn(sigma(ce, T), ce, T)
		})
	}}
}
