// internal/system/combat.go
package system

import (
	"go-zombie-survival/internal/config"
	"go-zombie-survival/internal/entity"
	"go-zombie-survival/internal/event"
	"go-zombie-survival/internal/types"
	"go-zombie-survival/internal/utils"
)

// CombatSystem разрешает столкновения: пули × зомби и зомби × игрок.
// Во время проходов только помечает мёртвых, удаление — отдельным
// проходом Cleanup, чтобы не мутировать коллекции под вложенным циклом.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// ResolveBulletHits сводит пули с зомби. Первое попадание выигрывает:
// пуля не убивает двоих, зомби не засчитывается дважды.
func (s *CombatSystem) ResolveBulletHits() {
	for zid, z := range s.ecs.Zombies {
		if !z.Alive {
			continue
		}
		zpos := s.ecs.Positions[zid]
		for bid, b := range s.ecs.Bullets {
			if !z.Alive || !b.Alive {
				continue
			}
			bpos := s.ecs.Positions[bid]
			if utils.CirclesOverlap(
				utils.Vec2{X: zpos.X, Y: zpos.Y}, z.Radius,
				utils.Vec2{X: bpos.X, Y: bpos.Y}, b.Radius,
			) {
				z.Alive = false
				b.Alive = false
				s.ecs.Status.Score += config.ScorePerKill
				s.eventDispatcher.Dispatch(event.Event{Type: event.ZombieKilled, Entity: zid})
			}
		}
	}
}

// ResolvePlayerContact сводит живых зомби с игроком. Урон проходит
// только при истёкшей неуязвимости: -1 HP и перезапуск таймера.
// Отброс зомби чисто косметический — он остаётся жив и снова опасен,
// как только неуязвимость закончится.
func (s *CombatSystem) ResolvePlayerContact() {
	p := s.ecs.Player
	ppos := s.ecs.Positions[s.ecs.PlayerID]
	player := utils.Vec2{X: ppos.X, Y: ppos.Y}

	for zid, z := range s.ecs.Zombies {
		if !z.Alive {
			continue
		}
		zpos := s.ecs.Positions[zid]
		zv := utils.Vec2{X: zpos.X, Y: zpos.Y}
		if !utils.CirclesOverlap(zv, z.Radius, player, p.Radius) {
			continue
		}

		if p.DamageCooldown <= 0 {
			p.HP--
			p.DamageCooldown = config.DamageImmunity
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Amount: p.HP})
			if p.HP <= 0 {
				p.HP = 0
				s.ecs.Status.Running = false
				s.ecs.Status.GameOverFade = config.GameOverFadeDuration
				s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
			}
		}

		away := zv.Sub(player).Normalized().Scale(config.KnockbackDistance)
		zpos.X += away.X
		zpos.Y += away.Y
	}
}

// Cleanup вычищает всех помеченных мёртвыми. Сначала собираем ID,
// потом удаляем — никогда во время обхода коллизий.
func (s *CombatSystem) Cleanup() {
	var dead []types.EntityID
	for id, b := range s.ecs.Bullets {
		if !b.Alive {
			dead = append(dead, id)
		}
	}
	for id, z := range s.ecs.Zombies {
		if !z.Alive {
			dead = append(dead, id)
		}
	}
	for _, id := range dead {
		s.ecs.RemoveEntity(id)
	}
}
