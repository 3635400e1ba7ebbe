package entities

import (
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/utils"
)

// NewEnemyEntity 创建一个敌人实体
//
// 敌人站立在所在行的碰撞条上，以生成器给定的速度水平巡逻，
// 碰到地图左右边界时折返。速度随生成深度线性提升并有上限。
//
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 地形配置
//   - x: 中心X坐标
//   - rowIndex: 所在行号
//   - speed: 巡逻速度（像素/秒，已做深度缩放与封顶）
//   - direction: 初始朝向，+1 向右，-1 向左
//
// 返回: 创建的实体ID
func NewEnemyEntity(manager *ecs.EntityManager, cfg *config.TerrainConfig, x float64, rowIndex int, speed float64, direction int) ecs.EntityID {
	id := manager.CreateEntity()

	if direction >= 0 {
		direction = 1
	} else {
		direction = -1
	}

	standY := utils.RowColliderTopY(rowIndex, cfg.TileSize, cfg.ColliderHeight)
	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: standY - cfg.Enemy.Height/2,
	})

	manager.AddComponent(id, &components.VelocityComponent{
		VX: speed * float64(direction),
		VY: 0,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Enemy.Width,
		Height: cfg.Enemy.Height,
	})

	manager.AddComponent(id, &components.HealthComponent{
		CurrentHealth: cfg.Enemy.Health,
		MaxHealth:     cfg.Enemy.Health,
	})

	manager.AddComponent(id, &components.BehaviorComponent{
		Type: components.BehaviorEnemy,
	})

	return id
}
