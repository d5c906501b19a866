package component

// Shooter is the weapon holder: what it wields and the cosmetic assets it
// plays when firing. Empty asset names are skipped.
type Shooter struct {
	EquippedWeapon uint64
	WeaponSocket   string
	MuzzleSocket   string

	FireSound      string
	MuzzleFlash    string
	ImpactParticle string
	BeamParticle   string
	FireMontage    string
	FireSection    string
}

var ShooterComponent = NewComponent[Shooter]()
