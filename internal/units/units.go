// Package units defines the customary unit system used by the engine.
// Lengths are carried in inches and forces in kips; every other unit is
// expressed as a multiple of those so the engine never depends on ambient
// conversion factors.
package units

const (
	Inch = 1.0
	Ft   = 12 * Inch

	Kip = 1.0
	Lb  = Kip / 1000

	Ksi = Kip / (Inch * Inch)
	Psi = Lb / (Inch * Inch)

	KipFt = Kip * Ft
)
