package entities

import (
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/utils"
)

// NewRowColliderEntity 创建一个行碰撞条实体
//
// 碰撞条是贴着行格带底部的全宽细条，站立实体的底边与其上沿对齐。
// 句柄由行仓库独占持有，行被挖除时与视觉条一起销毁。
//
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 地形配置
//   - index: 行号
//
// 返回: 创建的实体ID
func NewRowColliderEntity(manager *ecs.EntityManager, cfg *config.TerrainConfig, index int) ecs.EntityID {
	id := manager.CreateEntity()

	// 碰撞条中心：水平居中，垂直位于格带底部的细条中央
	manager.AddComponent(id, &components.PositionComponent{
		X: cfg.WorldCenterX(),
		Y: utils.RowBottomY(index, cfg.TileSize) - cfg.ColliderHeight/2,
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.WorldWidth(),
		Height: cfg.ColliderHeight,
	})

	manager.AddComponent(id, &components.RowColliderComponent{Index: index})

	return id
}

// NewRowVisualEntity 创建一个行视觉条实体
//
// 视觉条覆盖整行格带，渲染层据此绘制泥土贴图；引擎只管理其生命周期。
//
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 地形配置
//   - index: 行号
//
// 返回: 创建的实体ID
func NewRowVisualEntity(manager *ecs.EntityManager, cfg *config.TerrainConfig, index int) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: cfg.WorldCenterX(),
		Y: utils.RowCenterY(index, cfg.TileSize),
	})

	manager.AddComponent(id, &components.CollisionComponent{
		Width:  cfg.WorldWidth(),
		Height: cfg.TileSize,
	})

	manager.AddComponent(id, &components.RowVisualComponent{Index: index})

	return id
}
