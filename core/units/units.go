// core/units/units.go
// Shared conversion factors and molar masses.
//
// Rates in this module are kg/day, powers kW, energies kJ, temperatures K.
// Molar masses are kept in g/mol (integers as used by the source correlations);
// use KgPerMol when a kg/mol value is needed.
package units

const (
	HoursPerDay    = 24.0
	SecondsPerHour = 3600.0
	SecondsPerDay  = HoursPerDay * SecondsPerHour // 86 400 s

	JoulesPerKJ = 1000.0
	WattsPerKW  = 1000.0
)

// Molar masses, g/mol.
const (
	MolarH2       = 2.0
	MolarCH4      = 16.0
	MolarH2O      = 18.0
	MolarCO       = 28.0
	MolarO2       = 32.0
	MolarCO2      = 44.0
	MolarSiO2     = 60.0
	MolarIlmenite = 151.7 // FeTiO3
)

// KgPerMol converts a molar mass in g/mol to kg/mol.
func KgPerMol(gPerMol float64) float64 { return gPerMol * 1e-3 }

// KJPerDayToKW converts an energy rate in kJ/day to kW.
func KJPerDayToKW(v float64) float64 { return v / SecondsPerDay }

// OxygenPerWater is the O2 mass liberated per unit mass of water electrolysed.
const OxygenPerWater = MolarO2 / (2 * MolarH2O)

// HydrogenPerWater is the H2 mass liberated per unit mass of water electrolysed.
const HydrogenPerWater = MolarH2 / MolarH2O
