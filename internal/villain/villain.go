package villain

// SuperVillain is a villain identified by a first and last name.
//
// The zero value is a villain without a name yet; SetFullName gives it one.
type SuperVillain struct {
	FirstName string
	LastName  string
}

// FromName builds a villain from a "First Last" display name.
func FromName(fullName string) (SuperVillain, error) {
	name, err := SplitFullName(fullName)
	if err != nil {
		return SuperVillain{}, err
	}
	return SuperVillain{FirstName: name.First, LastName: name.Last}, nil
}

// MustFromName is like FromName but panics when the name is malformed.
// It is intended for static tables and tests.
func MustFromName(fullName string) SuperVillain {
	v, err := FromName(fullName)
	if err != nil {
		panic(err)
	}
	return v
}

// FullName returns the first and last name joined by a single space.
func (v SuperVillain) FullName() string {
	return v.FirstName + nameSeparator + v.LastName
}

// String implements fmt.Stringer.
func (v SuperVillain) String() string {
	return v.FullName()
}

// SetFullName replaces both names with the parts of fullName.
// On error the villain is left unchanged.
func (v *SuperVillain) SetFullName(fullName string) error {
	name, err := SplitFullName(fullName)
	if err != nil {
		return err
	}
	v.FirstName = name.First
	v.LastName = name.Last
	return nil
}

// Attack fires weapon once. The description of the shot is discarded; wrap
// the weapon to observe it. A nil interface is a no-op; a typed nil pointer
// is still a weapon and its Shoot method is called.
func (v SuperVillain) Attack(weapon MegaWeapon) {
	if weapon == nil {
		return
	}
	weapon.Shoot()
}
