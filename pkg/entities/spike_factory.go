package entities

import (
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/utils"
)

// NewSpikeEntity 创建一个尖刺实体
//
// 尖刺锚定在所在行的顶面：底边与行顶对齐，刺体伸入上一行的格带。
// 尖刺不会坠落；所在行被挖除时作为副作用被一并销毁。
//
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 地形配置
//   - x: 中心X坐标
//   - rowIndex: 锚定的行号
//
// 返回: 创建的实体ID
func NewSpikeEntity(manager *ecs.EntityManager, cfg *config.TerrainConfig, x float64, rowIndex int) ecs.EntityID {
	id := manager.CreateEntity()

	rowTop := utils.RowTopY(rowIndex, cfg.TileSize)
	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: rowTop - cfg.Spike.Height/2,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Spike.Width,
		Height: cfg.Spike.Height,
	})

	manager.AddComponent(id, &components.HealthComponent{
		CurrentHealth: cfg.Spike.Health,
		MaxHealth:     cfg.Spike.Health,
	})

	manager.AddComponent(id, &components.BehaviorComponent{
		Type: components.BehaviorSpike,
	})

	return id
}
