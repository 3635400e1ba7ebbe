package systems

import (
	"log"
	"math"

	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/events"
	"github.com/gonewx/digdown/pkg/utils"
)

// ExplosionSystem 爆炸结算器
//
// 把一次圆形爆炸拆成两个互不依赖的阶段：
//  1. 行清除。对圆覆盖到的候选行做垂直距离判定；水平方向刻意放宽，
//     爆心X与地图中心的距离不超过 半径+半幅 就整行挖除。
//     行是全宽整体，按行整段清除，不做逐列与圆求交。
//  2. 实体伤害。按欧氏距离精确判定：敌人与尖刺吃致命伤，
//     巨石吃固定爆炸伤害，金币不受波及。
//
// 两阶段独立意味着行没被清掉的实体照样可能被炸死，反之亦然。
type ExplosionSystem struct {
	em         *ecs.EntityManager
	cfg        *config.TerrainConfig
	terrain    *TerrainSystem
	dispatcher *events.Dispatcher
	effects    particle.Trigger
}

// NewExplosionSystem 创建爆炸结算器
func NewExplosionSystem(em *ecs.EntityManager, cfg *config.TerrainConfig, terrain *TerrainSystem, dispatcher *events.Dispatcher, effects particle.Trigger) *ExplosionSystem {
	if effects == nil {
		effects = particle.Nop{}
	}
	return &ExplosionSystem{
		em:         em,
		cfg:        cfg,
		terrain:    terrain,
		dispatcher: dispatcher,
		effects:    effects,
	}
}

// Resolve 结算一次圆形爆炸
//
// 参数:
//   - centerX, centerY: 爆心世界坐标
//   - radius: 爆炸半径，非正值直接空操作
func (s *ExplosionSystem) Resolve(centerX, centerY, radius float64) {
	if radius <= 0 {
		return
	}
	s.effects.TriggerEffect(effectExplosionBurst, centerX, centerY, particle.Params{"radius": radius})

	clearedRows := s.clearRowsInRadius(centerX, centerY, radius)
	damaged := s.damageEntitiesInRadius(centerX, centerY, radius)

	log.Printf("[ExplosionSystem] blast at (%.1f, %.1f) radius %.1f: %d rows cleared, %d entities hit",
		centerX, centerY, radius, clearedRows, damaged)
}

// clearRowsInRadius 行清除阶段
func (s *ExplosionSystem) clearRowsInRadius(centerX, centerY, radius float64) int {
	if math.Abs(centerX-s.cfg.WorldCenterX()) > radius+s.cfg.WorldWidth()/2 {
		return 0
	}

	span := utils.RowSpanForRadius(radius, s.cfg.TileSize)
	centerRow := utils.RowIndexAtY(centerY, s.cfg.TileSize)

	cleared := 0
	for row := centerRow - span; row <= centerRow+span; row++ {
		rowCenterY := utils.RowCenterY(row, s.cfg.TileSize)
		if math.Abs(rowCenterY-centerY) > radius {
			continue
		}
		if s.terrain.ClearRowAt(rowCenterY) {
			cleared++
		}
	}
	return cleared
}

// damageEntitiesInRadius 实体伤害阶段
func (s *ExplosionSystem) damageEntitiesInRadius(centerX, centerY, radius float64) int {
	hit := 0
	for _, id := range ecs.GetEntitiesWith3[*components.BehaviorComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		if !s.em.Alive(id) {
			continue
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.em, id)

		var amount int
		switch behavior.Type {
		case components.BehaviorEnemy, components.BehaviorSpike:
			amount = LethalDamage
		case components.BehaviorBoulder:
			amount = s.cfg.Explosion.BoulderDamage
		default:
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		box, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		dx := pos.X + box.OffsetX - centerX
		dy := pos.Y + box.OffsetY - centerY
		if math.Hypot(dx, dy) > radius {
			continue
		}

		ApplyDamage(s.em, s.dispatcher, s.effects, id, amount)
		hit++
	}
	return hit
}
