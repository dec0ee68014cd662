package progress

// Tier is the named band a score falls into. The ordering of the constants is
// the ordering of the bands.
type Tier int

const (
	TierBeginner Tier = iota
	TierDeveloping
	TierSolid
	TierAdvanced
	TierWeapon
)

// TierFor maps a 0-100 score to its band: [0,20] beginner, [21,40] developing,
// [41,60] solid, [61,80] advanced, [81,100] weapon.
func TierFor(score int) Tier {
	switch {
	case score <= 20:
		return TierBeginner
	case score <= 40:
		return TierDeveloping
	case score <= 60:
		return TierSolid
	case score <= 80:
		return TierAdvanced
	default:
		return TierWeapon
	}
}

func (t Tier) String() string {
	switch t {
	case TierBeginner:
		return "beginner"
	case TierDeveloping:
		return "developing"
	case TierSolid:
		return "solid"
	case TierAdvanced:
		return "advanced"
	case TierWeapon:
		return "weapon"
	default:
		return "unknown"
	}
}
