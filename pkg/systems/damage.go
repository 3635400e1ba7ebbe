package systems

import (
	"log"

	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/events"
)

// LethalDamage 一击必杀的伤害量，用于清行波及尖刺和爆炸秒杀敌人
const LethalDamage = 9999

// 粒子效果键，与 data/effects.yaml 中的定义一一对应
const (
	effectRowBurst       = "row_burst"
	effectExplosionBurst = "explosion_burst"
)

// deathEffectKeys 各类实体死亡时触发的粒子效果
var deathEffectKeys = map[components.BehaviorType]string{
	components.BehaviorBoulder: "boulder_crumble",
	components.BehaviorEnemy:   "enemy_pop",
	components.BehaviorSpike:   "spike_break",
	components.BehaviorCoin:    "coin_sparkle",
}

// ApplyDamage 对实体结算一次伤害
//
// 生命值降到0时统一走死亡流程：标记删除、触发死亡粒子、
// 发布 EntityDestroyed 事件。对已死亡或已标记删除的实体施加伤害
// 是安全的空操作。返回实体是否因本次伤害死亡。
func ApplyDamage(em *ecs.EntityManager, dispatcher *events.Dispatcher, effects particle.Trigger, id ecs.EntityID, amount int) bool {
	if amount <= 0 || !em.Alive(id) {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok || health.Dead() {
		return false
	}

	health.CurrentHealth -= amount
	if health.CurrentHealth > 0 {
		return false
	}
	health.CurrentHealth = 0
	em.DestroyEntity(id)

	behavior, hasBehavior := ecs.GetComponent[*components.BehaviorComponent](em, id)
	pos, hasPos := ecs.GetComponent[*components.PositionComponent](em, id)
	if !hasBehavior || !hasPos {
		return true
	}

	if effects != nil {
		if key, known := deathEffectKeys[behavior.Type]; known {
			effects.TriggerEffect(key, pos.X, pos.Y, nil)
		}
	}
	dispatcher.Publish(events.EntityDestroyedEvent{
		Entity:   id,
		Behavior: behavior.Type,
		X:        pos.X,
		Y:        pos.Y,
	})
	log.Printf("[Damage] %s %d destroyed at (%.1f, %.1f)", behavior.Type, id, pos.X, pos.Y)
	return true
}
