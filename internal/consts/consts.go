package consts

// CODATA 2018 exact values.
const (
	CHARGE    = 1.602176634e-19 // Elementary charge (C)
	BOLTZMANN = 1.380649e-23    // Boltzmann constant (J/K)
	KELVIN    = 273.15          // Kelvin temperature (K)
	FARADAY   = 96485.33212     // Faraday constant (C/mol)
	GAS       = 8.314462618     // Molar gas constant (J/(mol.K))
)
