package systems

import (
	"math"

	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/ecs"
)

// OccupancyChecker 占位检查器
//
// 行内容生成前用它探测目标格是否已被存活实体占据，
// 避免新内容与相邻行的尖刺、坠落后的巨石等叠在一起。
type OccupancyChecker struct {
	em *ecs.EntityManager
}

// NewOccupancyChecker 创建占位检查器
func NewOccupancyChecker(em *ecs.EntityManager) *OccupancyChecker {
	return &OccupancyChecker{em: em}
}

// Occupied 判断点 (x, y) 附近是否已有存活实体
//
// 只统计带行为标记的实体（巨石/敌人/尖刺/金币），行的碰撞条与视觉条
// 不算占位。以实体碰撞盒中心为准，横纵两轴距离都不超过 radius 才算占用。
// 已标记删除或生命值耗尽的实体不再占位。
func (c *OccupancyChecker) Occupied(x, y, radius float64) bool {
	candidates := ecs.GetEntitiesWith3[*components.BehaviorComponent, *components.PositionComponent, *components.CollisionComponent](c.em)
	for _, id := range candidates {
		if !c.em.Alive(id) {
			continue
		}
		if health, ok := ecs.GetComponent[*components.HealthComponent](c.em, id); ok && health.Dead() {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](c.em, id)
		box, _ := ecs.GetComponent[*components.CollisionComponent](c.em, id)
		bodyX := pos.X + box.OffsetX
		bodyY := pos.Y + box.OffsetY
		if math.Abs(bodyX-x) <= radius && math.Abs(bodyY-y) <= radius {
			return true
		}
	}
	return false
}
