package entities

import (
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/utils"
)

// NewCoinEntity 创建一个金币实体
//
// 金币静置在所在行的碰撞条上，等待玩家收集（收集逻辑在引擎外）。
// 支撑行被挖掉后金币会随坠落系统下落。
//
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 地形配置
//   - x: 中心X坐标
//   - rowIndex: 所在行号
//
// 返回: 创建的实体ID
func NewCoinEntity(manager *ecs.EntityManager, cfg *config.TerrainConfig, x float64, rowIndex int) ecs.EntityID {
	id := manager.CreateEntity()

	standY := utils.RowColliderTopY(rowIndex, cfg.TileSize, cfg.ColliderHeight)
	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: standY - cfg.Coin.Height/2,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.Coin.Width,
		Height: cfg.Coin.Height,
	})

	// 金币也走统一伤害接口（生命值1），爆炸并不伤害金币，
	// 但收集/清扫逻辑可以复用同一销毁路径
	manager.AddComponent(id, &components.HealthComponent{
		CurrentHealth: 1,
		MaxHealth:     1,
	})

	manager.AddComponent(id, &components.CoinComponent{
		Value: cfg.Coin.Value,
	})

	manager.AddComponent(id, &components.BehaviorComponent{
		Type: components.BehaviorCoin,
	})

	return id
}
