package systems

import (
	"log"
	"math"

	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/events"
	"github.com/gonewx/digdown/pkg/utils"
)

// supportEpsilon 支撑判定容差：脚底与碰撞条上沿的距离在此范围内算站立
const supportEpsilon = 0.5

// fallCullMargin 掉出世界底部多远后直接清除实体
const fallCullMargin = 64.0

// FallingSystem 坠落系统
//
// 消费行清除事件：支撑行消失的实体进入坠落状态；每帧做重力积分，
// 行进路径上遇到第一个实心行的碰撞条上沿即落地停住。
// 尖刺锚定于行顶、随行一起清除，不参与坠落。
type FallingSystem struct {
	em      *ecs.EntityManager
	cfg     *config.TerrainConfig
	terrain *TerrainSystem
}

// NewFallingSystem 创建坠落系统
func NewFallingSystem(em *ecs.EntityManager, cfg *config.TerrainConfig, terrain *TerrainSystem) *FallingSystem {
	return &FallingSystem{em: em, cfg: cfg, terrain: terrain}
}

// WatchRowCleared 订阅行清除事件，行被挖掉时让站在上面的实体开始坠落
func (s *FallingSystem) WatchRowCleared(dispatcher *events.Dispatcher) {
	dispatcher.Subscribe(events.EventRowCleared, func(ev events.Event) {
		cleared, ok := ev.(events.RowClearedEvent)
		if !ok {
			return
		}
		s.onRowCleared(cleared.RowIndex)
	})
}

// onRowCleared 给站在被挖行碰撞条上的实体挂坠落组件
func (s *FallingSystem) onRowCleared(index int) {
	supportY := utils.RowColliderTopY(index, s.cfg.TileSize, s.cfg.ColliderHeight)

	for _, id := range ecs.GetEntitiesWith3[*components.BehaviorComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		if !s.em.Alive(id) {
			continue
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.em, id)
		if behavior.Type == components.BehaviorSpike {
			continue
		}
		if ecs.HasComponent[*components.FallingComponent](s.em, id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		box, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		feet := pos.Y + box.OffsetY + box.Height/2
		if math.Abs(feet-supportY) > supportEpsilon {
			continue
		}

		ecs.AddComponent(s.em, id, &components.FallingComponent{StartY: pos.Y})
		if !ecs.HasComponent[*components.VelocityComponent](s.em, id) {
			ecs.AddComponent(s.em, id, &components.VelocityComponent{})
		}
	}
}

// Update 对所有坠落中的实体做一帧重力积分与落地判定
func (s *FallingSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	worldBottom := float64(s.cfg.MapHeightTiles) * s.cfg.TileSize

	for _, id := range ecs.GetEntitiesWith3[*components.FallingComponent, *components.PositionComponent, *components.CollisionComponent](s.em) {
		if !s.em.Alive(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		box, _ := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if !ok {
			vel = &components.VelocityComponent{}
			ecs.AddComponent(s.em, id, vel)
		}

		vel.VY += s.cfg.Physics.Gravity * deltaTime
		if vel.VY > s.cfg.Physics.MaxFallSpeed {
			vel.VY = s.cfg.Physics.MaxFallSpeed
		}

		prevFeet := pos.Y + box.OffsetY + box.Height/2
		newFeet := prevFeet + vel.VY*deltaTime

		if landY, landed := s.findSupport(prevFeet, newFeet); landed {
			pos.Y = landY - box.OffsetY - box.Height/2
			vel.VY = 0
			falling, _ := ecs.GetComponent[*components.FallingComponent](s.em, id)
			ecs.RemoveComponent[*components.FallingComponent](s.em, id)
			log.Printf("[FallingSystem] entity %d landed after falling %.1f", id, pos.Y-falling.StartY)
			continue
		}

		pos.Y = newFeet - box.OffsetY - box.Height/2
		if pos.Y > worldBottom+fallCullMargin {
			s.em.DestroyEntity(id)
		}
	}
}

// findSupport 在脚底行进区间 (fromFeet, toFeet] 内寻找第一个实心行的碰撞条上沿
//
// 碰撞条贴着格带底部，所以终点行额外多看一行。
func (s *FallingSystem) findSupport(fromFeet, toFeet float64) (float64, bool) {
	firstRow := utils.RowIndexAtY(fromFeet, s.cfg.TileSize)
	lastRow := utils.RowIndexAtY(toFeet, s.cfg.TileSize) + 1

	for row := firstRow; row <= lastRow; row++ {
		if !s.terrain.RowSolid(row) {
			continue
		}
		top := utils.RowColliderTopY(row, s.cfg.TileSize, s.cfg.ColliderHeight)
		if top >= fromFeet-supportEpsilon && top <= toFeet {
			return top, true
		}
	}
	return 0, false
}
