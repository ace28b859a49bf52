package main

import "go.uber.org/zap"

// swing resolves one accuracy check. The accuracy roll is always drawn
// before the defence roll.
func swing(p Player, b *Boss, s *sampler) (accRoll, defRoll uint64, landed bool) {
	accRoll = s.below(p.MaxAccuracyRoll)
	defRoll = s.below(b.MaxDefenseRoll())
	return accRoll, defRoll, accRoll > defRoll
}

// rollDamage is only drawn after a landed swing. A landed swing can still
// roll zero.
func rollDamage(p Player, s *sampler) uint16 {
	return uint16(s.below(uint64(p.MaxDamageRoll)))
}

// specReduce performs exactly specs defence-reducing attacks and returns the
// total damage landed. It keeps going after the boss is dead or floored.
func specReduce(p Player, b *Boss, specs uint16, s *sampler) uint32 {
	var drained uint32
	for i := uint16(0); i < specs; i++ {
		acc, def, landed := swing(p, b, s)
		var damage uint16
		if landed {
			damage = rollDamage(p, s)
			b.reduceDef(damage)
			drained += uint32(damage)
		}
		traceSwing("spec", acc, def, landed, damage, b)
	}
	return drained
}

// attackUntilDead attacks until the boss has no hit points left and returns
// the elapsed ticks. p.MaxDamageRoll must be at least 1 or this never
// returns for a living boss.
func attackUntilDead(p Player, b *Boss, s *sampler) uint32 {
	var ticks uint32
	for !b.dead() {
		ticks += uint32(p.AttackInterval)
		acc, def, landed := swing(p, b, s)
		var damage uint16
		if landed {
			damage = rollDamage(p, s)
			b.hit(damage)
		}
		traceSwing("dps", acc, def, landed, damage, b)
	}
	return ticks
}

func traceSwing(phase string, acc, def uint64, landed bool, damage uint16, b *Boss) {
	if combatLogger == nil {
		return
	}
	combatLogger.Debug("swing",
		zap.String("phase", phase),
		zap.Uint64("accuracy_roll", acc),
		zap.Uint64("defense_roll", def),
		zap.Bool("hit", landed),
		zap.Uint16("damage", damage),
		zap.Uint16("hp", b.HitPoints),
		zap.Uint16("defense_level", b.DefenseLevel),
	)
}
