package main

// ranged level equivalent of the defensive bonus rolled into every boss
const _defenceBonusLevel = 400

// Boss is the defender. Its max defence roll is recomputed whenever the
// defence level changes and is never written directly.
type Boss struct {
	HitPoints       uint16
	DefenseLevel    uint16
	DefenseStat     uint16
	MinDefenseLevel uint16
	maxDefenseRoll  uint64
}

// Player is the attacker's loadout. It never changes during a run.
type Player struct {
	MaxAccuracyRoll uint64 `yaml:"max_accuracy_roll"`
	MaxDamageRoll   uint16 `yaml:"max_damage_roll"`
	AttackInterval  uint16 `yaml:"attack_interval"`
}

func newBoss(hp, defLvl, defStat, minDefLvl uint16) Boss {
	return Boss{
		HitPoints:       hp,
		DefenseLevel:    defLvl,
		DefenseStat:     defStat,
		MinDefenseLevel: minDefLvl,
		maxDefenseRoll:  calcMaxDefenseRoll(defLvl, defStat),
	}
}

func calcMaxDefenseRoll(defLvl, defStat uint16) uint64 {
	base := (uint64(defLvl) + 9) * (uint64(defStat) + 64)
	return base * (_defenceBonusLevel*4 + 1000) / 1000
}

func (b *Boss) MaxDefenseRoll() uint64 {
	return b.maxDefenseRoll
}

// reduceDef lowers the defence level by reduction, never below the floor,
// and deals the full reduction as damage.
func (b *Boss) reduceDef(reduction uint16) {
	maxReduction := b.DefenseLevel - b.MinDefenseLevel
	if reduction > maxReduction {
		b.DefenseLevel = b.MinDefenseLevel
	} else {
		b.DefenseLevel -= reduction
	}
	b.maxDefenseRoll = calcMaxDefenseRoll(b.DefenseLevel, b.DefenseStat)

	b.hit(reduction)
}

func (b *Boss) hit(damage uint16) {
	if damage > b.HitPoints {
		b.HitPoints = 0
	} else {
		b.HitPoints -= damage
	}
}

func (b *Boss) dead() bool {
	return b.HitPoints == 0
}
