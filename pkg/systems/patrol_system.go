package systems

import (
	"math"

	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
)

// PatrolSystem 敌人巡逻系统
//
// 只做地形引擎需要的最小运动积分：敌人沿所在行水平匀速移动，
// 碰到地图左右边界折返。坠落中的敌人暂停巡逻，垂直运动交给坠落系统。
type PatrolSystem struct {
	em  *ecs.EntityManager
	cfg *config.TerrainConfig
}

// NewPatrolSystem 创建巡逻系统
func NewPatrolSystem(em *ecs.EntityManager, cfg *config.TerrainConfig) *PatrolSystem {
	return &PatrolSystem{em: em, cfg: cfg}
}

// Update 对所有巡逻中的敌人做一帧水平移动
func (s *PatrolSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	worldWidth := s.cfg.WorldWidth()

	for _, id := range ecs.GetEntitiesWith3[*components.BehaviorComponent, *components.PositionComponent, *components.VelocityComponent](s.em) {
		if !s.em.Alive(id) {
			continue
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.em, id)
		if behavior.Type != components.BehaviorEnemy {
			continue
		}
		if ecs.HasComponent[*components.FallingComponent](s.em, id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		pos.X += vel.VX * deltaTime

		halfWidth := 0.0
		if box, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
			halfWidth = box.Width / 2
		}
		if pos.X-halfWidth < 0 {
			pos.X = halfWidth
			vel.VX = math.Abs(vel.VX)
		} else if pos.X+halfWidth > worldWidth {
			pos.X = worldWidth - halfWidth
			vel.VX = -math.Abs(vel.VX)
		}
	}
}
