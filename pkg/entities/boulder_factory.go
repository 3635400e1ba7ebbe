package entities

import (
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/utils"
)

// NewBoulderEntity 创建一个巨石实体
//
// 巨石站立在所在行的碰撞条上（底边与碰撞条上沿对齐），
// 静止不动，只能被爆炸伤害逐步破坏。
//
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 地形配置
//   - x: 中心X坐标（通常是格子中心）
//   - rowIndex: 所在行号
//
// 返回: 创建的实体ID
func NewBoulderEntity(manager *ecs.EntityManager, cfg *config.TerrainConfig, x float64, rowIndex int) ecs.EntityID {
	id := manager.CreateEntity()

	standY := utils.RowColliderTopY(rowIndex, cfg.TileSize, cfg.ColliderHeight)
	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: standY - cfg.Boulder.Height/2,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Boulder.Width,
		Height: cfg.Boulder.Height,
	})

	manager.AddComponent(id, &components.HealthComponent{
		CurrentHealth: cfg.Boulder.Health,
		MaxHealth:     cfg.Boulder.Health,
	})

	manager.AddComponent(id, &components.BehaviorComponent{
		Type: components.BehaviorBoulder,
	})

	return id
}
