package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// RunConfig is read from the environment.
type RunConfig struct {
	Trials      int      `env:"TTK_TRIALS" envDefault:"10000000"`
	Scenarios   []uint16 `env:"TTK_SCENARIOS" envDefault:"0,1,2" envSeparator:","`
	Seed        uint64   `env:"TTK_SEED"`
	LibraryPath string   `env:"TTK_LIBRARY" envDefault:"./library/profiles.yaml"`
	SpecLoadout string   `env:"TTK_SPEC_LOADOUT" envDefault:"bgs_bandos"`
	DPSLoadout  string   `env:"TTK_DPS_LOADOUT" envDefault:"tbow_arma"`
	BossName    string   `env:"TTK_BOSS" envDefault:"boss"`

	LogLevel         string `env:"TTK_LOG_LEVEL" envDefault:"info"`
	CombatLog        string `env:"TTK_COMBAT_LOG"`
	CombatLogMaxMB   int    `env:"TTK_COMBAT_LOG_MAX_MB" envDefault:"10"`
	CombatLogBackups int    `env:"TTK_COMBAT_LOG_BACKUPS" envDefault:"3"`
}

// BossProfile describes one boss. The two defence stats are its defensive
// profile against the spec weapon and against the damage weapon.
type BossProfile struct {
	HitPoints         uint16 `yaml:"hit_points"`
	DefenseLevel      uint16 `yaml:"defense_level"`
	SlashDefenseStat  uint16 `yaml:"slash_defense_stat"`
	RangedDefenseStat uint16 `yaml:"ranged_defense_stat"`
	MinDefenseLevel   uint16 `yaml:"min_defense_level"`
}

func (bp BossProfile) slash() Boss {
	return newBoss(bp.HitPoints, bp.DefenseLevel, bp.SlashDefenseStat, bp.MinDefenseLevel)
}

type Library struct {
	Players map[string]Player      `yaml:"players"`
	Bosses  map[string]BossProfile `yaml:"bosses"`
}

func defaultLibrary() Library {
	return Library{
		Players: map[string]Player{
			"bgs_bandos":  {MaxAccuracyRoll: 36814 * 2, MaxDamageRoll: 75, AttackInterval: 6},
			"bgs_torva":   {MaxAccuracyRoll: 36814 * 2, MaxDamageRoll: 77, AttackInterval: 6},
			"tbow_arma":   {MaxAccuracyRoll: 49136, MaxDamageRoll: 76, AttackInterval: 5},
			"tbow_masori": {MaxAccuracyRoll: 53032, MaxDamageRoll: 80, AttackInterval: 5},
		},
		Bosses: map[string]BossProfile{
			"boss": {HitPoints: 571, DefenseLevel: 180, SlashDefenseStat: 40, RangedDefenseStat: 20, MinDefenseLevel: 120},
		},
	}
}

// loadRunConfig parses the run settings from environ, or from the process
// environment when environ is nil.
func loadRunConfig(environ map[string]string) (RunConfig, error) {
	var cfg RunConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// loadLibrary reads the profile library. A missing file falls back to the
// built-in profiles.
func loadLibrary(path string) (Library, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultLibrary(), false, nil
	}
	if err != nil {
		return Library{}, false, fmt.Errorf("read library: %w", err)
	}
	var lib Library
	if err = yaml.UnmarshalStrict(data, &lib); err != nil {
		return Library{}, false, fmt.Errorf("parse library %s: %w", path, err)
	}
	return lib, true, nil
}

// scenarios resolves the configured profiles and returns one Scenario per
// spec count. Every problem found is reported, not just the first.
func (c RunConfig) scenarios(lib Library) ([]Scenario, error) {
	var err error
	if c.Trials <= 0 {
		err = multierr.Append(err, fmt.Errorf("trials must be positive, got %d", c.Trials))
	}
	if len(c.Scenarios) == 0 {
		err = multierr.Append(err, errors.New("no scenarios configured"))
	}

	specP, ok := lib.Players[c.SpecLoadout]
	if !ok {
		err = multierr.Append(err, fmt.Errorf("unknown spec loadout %q", c.SpecLoadout))
	} else if specP.AttackInterval == 0 {
		err = multierr.Append(err, fmt.Errorf("spec loadout %q: attack_interval must be positive", c.SpecLoadout))
	}

	dpsP, ok := lib.Players[c.DPSLoadout]
	if !ok {
		err = multierr.Append(err, fmt.Errorf("unknown dps loadout %q", c.DPSLoadout))
	} else {
		// rolls are drawn from [0, max), so a max below 2 always rolls 0
		// and the damage race never ends
		if dpsP.MaxDamageRoll < 2 {
			err = multierr.Append(err, fmt.Errorf("dps loadout %q: max_damage_roll must be at least 2, got %d", c.DPSLoadout, dpsP.MaxDamageRoll))
		}
		if dpsP.MaxAccuracyRoll < 2 {
			err = multierr.Append(err, fmt.Errorf("dps loadout %q: max_accuracy_roll must be at least 2, got %d", c.DPSLoadout, dpsP.MaxAccuracyRoll))
		}
		if dpsP.AttackInterval == 0 {
			err = multierr.Append(err, fmt.Errorf("dps loadout %q: attack_interval must be positive", c.DPSLoadout))
		}
	}

	boss, ok := lib.Bosses[c.BossName]
	if !ok {
		err = multierr.Append(err, fmt.Errorf("unknown boss %q", c.BossName))
	} else if boss.MinDefenseLevel > boss.DefenseLevel {
		err = multierr.Append(err, fmt.Errorf("boss %q: min_defense_level %d above defense_level %d",
			c.BossName, boss.MinDefenseLevel, boss.DefenseLevel))
	}

	if err != nil {
		return nil, err
	}

	out := make([]Scenario, 0, len(c.Scenarios))
	for _, specs := range c.Scenarios {
		out = append(out, Scenario{
			Specs:      specs,
			Trials:     c.Trials,
			SpecPlayer: specP,
			DPSPlayer:  dpsP,
			Boss:       boss,
		})
	}
	return out, nil
}
