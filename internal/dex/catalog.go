package dex

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TheoKim/llm-pokemon-trainer/internal/battle"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog groups the tactical move lists the filter rules consult. Lists are
// keyed by lowercase move id.
//
// Invariant: after a successful Load, every required list is non-empty and
// every hazard setter has a matching side condition key.
type Catalog struct {
	// Healing lists self-healing moves gated by the redundant-recovery rule.
	Healing []string `yaml:"healing"`
	// HazardSetters maps a hazard side condition to the move that sets it.
	HazardSetters map[battle.SideCondition]string `yaml:"hazard_setters"`
	// HazardStackCaps maps stacking hazards to their maximum stack count.
	// Hazards absent from this map cap at 1.
	HazardStackCaps map[battle.SideCondition]int `yaml:"hazard_stack_caps"`
	// SideSetters maps a screen/tailwind side condition to the move that sets it.
	SideSetters map[battle.SideCondition]string `yaml:"side_setters"`
	// HazardClearers lists moves whose only purpose is clearing own-side hazards.
	HazardClearers []string `yaml:"hazard_clearers"`
	// DualClearers lists clearing moves that also act on the opponent's side.
	DualClearers []string `yaml:"dual_clearers"`
	// Setup maps setup moves to the stat stages they grant.
	Setup map[string]map[battle.Stat]int `yaml:"setup"`
	// SleepInducers lists moves that put the target to sleep.
	SleepInducers []string `yaml:"sleep_inducers"`
	// StatusInflictors lists all moves whose purpose is inflicting a status.
	StatusInflictors []string `yaml:"status_inflictors"`
	// PowderMoves, ParalysisMoves, BurnMoves, PoisonMoves are the
	// status-subsets blocked by specific immunities.
	PowderMoves    []string `yaml:"powder_moves"`
	ParalysisMoves []string `yaml:"paralysis_moves"`
	BurnMoves      []string `yaml:"burn_moves"`
	PoisonMoves    []string `yaml:"poison_moves"`
	// TrappingMoves lists partial-trapping moves.
	TrappingMoves []string `yaml:"trapping_moves"`
	// ProtectFamily lists the protect variants that fail on repeat use.
	ProtectFamily []string `yaml:"protect_family"`
	// RechargeMoves lists moves with a mandatory recharge turn.
	RechargeMoves []string `yaml:"recharge_moves"`
	// SelfKOMoves lists moves that knock out their own user.
	SelfKOMoves []string `yaml:"self_ko_moves"`
	// ClericMoves lists team-wide status-curing moves.
	ClericMoves []string `yaml:"cleric_moves"`
	// PivotMoves lists moves that switch their user out.
	PivotMoves []string `yaml:"pivot_moves"`
	// ItemSwapMoves lists item-swapping moves.
	ItemSwapMoves []string `yaml:"item_swap_moves"`
	// SunMoves, RainMoves, HailMoves list moves useless without their weather.
	SunMoves  []string `yaml:"sun_moves"`
	RainMoves []string `yaml:"rain_moves"`
	HailMoves []string `yaml:"hail_moves"`
	// WeatherHealing lists healing moves weakened by non-sun weather.
	WeatherHealing []string `yaml:"weather_healing"`
	// SpecialWalls lists species treated as special-defense specialists.
	SpecialWalls []string `yaml:"special_walls"`
}

// Contains reports whether list holds id. Helper for rule code.
func Contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// Validate checks the catalogue's required fields and cross-references.
//
// Postcondition: nil return guarantees all required lists are non-empty,
// every setup entry has at least one stat delta, and every stack cap refers
// to a known hazard setter.
func (c *Catalog) Validate() error {
	required := map[string][]string{
		"healing":           c.Healing,
		"hazard_clearers":   c.HazardClearers,
		"sleep_inducers":    c.SleepInducers,
		"status_inflictors": c.StatusInflictors,
		"trapping_moves":    c.TrappingMoves,
		"protect_family":    c.ProtectFamily,
		"recharge_moves":    c.RechargeMoves,
		"self_ko_moves":     c.SelfKOMoves,
		"cleric_moves":      c.ClericMoves,
	}
	for name, list := range required {
		if len(list) == 0 {
			return fmt.Errorf("dex.Catalog: list %q must not be empty", name)
		}
	}
	if len(c.HazardSetters) == 0 {
		return errors.New("dex.Catalog: hazard_setters must not be empty")
	}
	if len(c.Setup) == 0 {
		return errors.New("dex.Catalog: setup must not be empty")
	}
	for move, boosts := range c.Setup {
		if len(boosts) == 0 {
			return fmt.Errorf("dex.Catalog: setup move %q has no stat deltas", move)
		}
	}
	for cond := range c.HazardStackCaps {
		if _, ok := c.HazardSetters[cond]; !ok {
			return fmt.Errorf("dex.Catalog: stack cap for %q has no matching hazard setter", cond)
		}
	}
	return nil
}

// yamlCatalogFile wraps the YAML top-level key.
type yamlCatalogFile struct {
	Catalog *Catalog `yaml:"catalog"`
}

// LoadCatalog parses and validates a catalogue from raw YAML.
//
// Postcondition: returns a validated *Catalog or a non-nil error.
func LoadCatalog(data []byte) (*Catalog, error) {
	var f yamlCatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("dex.LoadCatalog: parsing: %w", err)
	}
	if f.Catalog == nil {
		return nil, errors.New("dex.LoadCatalog: missing top-level 'catalog' key")
	}
	if err := f.Catalog.Validate(); err != nil {
		return nil, err
	}
	return f.Catalog, nil
}

// LoadCatalogFile reads a catalogue override from a YAML file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dex.LoadCatalogFile: reading %q: %w", path, err)
	}
	return LoadCatalog(data)
}

// DefaultCatalog returns the embedded catalogue.
//
// Postcondition: never returns an error at runtime for the shipped data;
// panics at init-time use if the embedded file is invalid (programmer error).
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultCatalogYAML)
	if err != nil {
		panic("dex: embedded catalog is invalid: " + err.Error())
	}
	return c
}
