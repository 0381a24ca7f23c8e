// Package battle defines the read model for one turn of a Pokémon battle.
//
// All types here are populated by the upstream message parser and are treated
// as read-only by the decision engine: nothing in this package or its
// consumers mutates a Snapshot after it is handed over for a turn.
package battle

// Type is a Pokémon elemental type in its lowercase wire form (e.g. "fire").
type Type string

// Known elemental types. The decision engine only names the ones it branches
// on; the type chart in the dex package covers the full matrix.
const (
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

// Category distinguishes physical, special, and status moves.
type Category string

const (
	CategoryPhysical Category = "physical"
	CategorySpecial  Category = "special"
	CategoryStatus   Category = "status"
)

// Status is a non-volatile status condition. The empty string means healthy.
type Status string

const (
	StatusNone      Status = ""
	StatusBurn      Status = "brn"
	StatusParalysis Status = "par"
	StatusSleep     Status = "slp"
	StatusPoison    Status = "psn"
	StatusToxic     Status = "tox"
	StatusFreeze    Status = "frz"
)

// Weather is the active field-wide weather. The empty string means none.
type Weather string

const (
	WeatherNone          Weather = ""
	WeatherSun           Weather = "sunnyday"
	WeatherHarshSun      Weather = "desolateland"
	WeatherRain          Weather = "raindance"
	WeatherHeavyRain     Weather = "primordialsea"
	WeatherSandstorm     Weather = "sandstorm"
	WeatherHail          Weather = "hail"
	WeatherSnow          Weather = "snow"
	WeatherSnowscape     Weather = "snowscape"
	WeatherStrongWinds   Weather = "deltastream"
)

// SunActive reports whether w is any form of sun.
func (w Weather) SunActive() bool {
	return w == WeatherSun || w == WeatherHarshSun
}

// RainActive reports whether w is any form of rain.
func (w Weather) RainActive() bool {
	return w == WeatherRain || w == WeatherHeavyRain
}

// HailActive reports whether w is hail or either snow variant.
func (w Weather) HailActive() bool {
	return w == WeatherHail || w == WeatherSnow || w == WeatherSnowscape
}

// FieldEffect is a field-wide condition affecting both sides.
type FieldEffect string

const (
	FieldTrickRoom       FieldEffect = "trickroom"
	FieldElectricTerrain FieldEffect = "electricterrain"
	FieldGrassyTerrain   FieldEffect = "grassyterrain"
	FieldPsychicTerrain  FieldEffect = "psychicterrain"
	FieldMistyTerrain    FieldEffect = "mistyterrain"
)

// SideCondition is a condition bound to one side of the field. Stacking
// conditions (spikes, toxic spikes) carry a count in Snapshot side maps.
type SideCondition string

const (
	SideStealthRock SideCondition = "stealthrock"
	SideSpikes      SideCondition = "spikes"
	SideToxicSpikes SideCondition = "toxicspikes"
	SideStickyWeb   SideCondition = "stickyweb"
	SideReflect     SideCondition = "reflect"
	SideLightScreen SideCondition = "lightscreen"
	SideAuroraVeil  SideCondition = "auroraveil"
	SideTailwind    SideCondition = "tailwind"
)

// EntryHazards lists the side conditions that damage or hinder a Pokémon on
// switch-in, in a fixed order for deterministic iteration.
var EntryHazards = []SideCondition{SideStealthRock, SideSpikes, SideToxicSpikes, SideStickyWeb}

// Effect is a volatile per-Pokémon condition cleared on switch-out.
type Effect string

const (
	EffectTaunt      Effect = "taunt"
	EffectEncore     Effect = "encore"
	EffectLeechSeed  Effect = "leechseed"
	EffectSubstitute Effect = "substitute"

	EffectBind        Effect = "bind"
	EffectClamp       Effect = "clamp"
	EffectFireSpin    Effect = "firespin"
	EffectInfestation Effect = "infestation"
	EffectSandTomb    Effect = "sandtomb"
	EffectSnapTrap    Effect = "snaptrap"
	EffectThunderCage Effect = "thundercage"
	EffectWhirlpool   Effect = "whirlpool"
	EffectWrap        Effect = "wrap"
)

// TrappingEffects lists the partial-trapping volatiles; a Pokémon carrying
// any of them cannot be trapped again.
var TrappingEffects = []Effect{
	EffectBind, EffectClamp, EffectFireSpin, EffectInfestation, EffectSandTomb,
	EffectSnapTrap, EffectThunderCage, EffectWhirlpool, EffectWrap,
}

// Stat identifies one of the five boostable battle stats.
type Stat string

const (
	StatAttack         Stat = "atk"
	StatDefense        Stat = "def"
	StatSpecialAttack  Stat = "spa"
	StatSpecialDefense Stat = "spd"
	StatSpeed          Stat = "spe"
)

// MaxBoost is the stage cap for stat boosts; stages live in [-MaxBoost, MaxBoost].
const MaxBoost = 6
