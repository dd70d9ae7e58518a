package villain

// MegaWeapon is anything a villain can fire.
//
// Shoot describes the shot. Implementations own their failure modes: a
// villain does not recover panics raised while firing.
type MegaWeapon interface {
	Shoot() string
}

// WeaponFunc adapts a plain function to the MegaWeapon interface.
type WeaponFunc func() string

// Shoot calls f.
func (f WeaponFunc) Shoot() string {
	return f()
}
