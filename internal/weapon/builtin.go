package weapon

// Laser fires a beam of coherent light.
type Laser struct{}

// Shoot implements villain.MegaWeapon.
func (Laser) Shoot() string { return "Pew! Pew!" }

// FreezeRay encases the target in ice.
type FreezeRay struct{}

// Shoot implements villain.MegaWeapon.
func (FreezeRay) Shoot() string { return "Brrrzzzt!" }

// ShrinkRay makes the target very small.
type ShrinkRay struct{}

// Shoot implements villain.MegaWeapon.
func (ShrinkRay) Shoot() string { return "Zwoooop!" }
