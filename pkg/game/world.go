package game

import (
	"log"
	"math/rand"

	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/events"
	"github.com/gonewx/digdown/pkg/systems"
)

// World 地形引擎的对外门面
//
// 组装实体管理器、事件分发器与全部地形系统，并以固定顺序逐帧驱动。
// 上层（渲染、输入、玩家控制）只通过 Step/Dig/Explode 和查询接口
// 与引擎交互，不直接触碰内部系统。
type World struct {
	cfg        *config.TerrainConfig
	em         *ecs.EntityManager
	dispatcher *events.Dispatcher

	terrain   *systems.TerrainSystem
	explosion *systems.ExplosionSystem
	falling   *systems.FallingSystem
	patrol    *systems.PatrolSystem
	occupancy *systems.OccupancyChecker

	state *RunState
}

// NewWorld 组装一套完整的地形引擎并放好初始平台
//
// 参数:
//   - cfg: 地形配置，nil 时使用内置默认值
//   - effects: 粒子触发器，nil 时退化为空实现
func NewWorld(cfg *config.TerrainConfig, effects particle.Trigger) *World {
	if cfg == nil {
		cfg = config.DefaultTerrainConfig()
	}
	if effects == nil {
		effects = particle.Nop{}
	}

	em := ecs.NewEntityManager()
	dispatcher := events.NewDispatcher()

	// 种子固定时生成完全可复现
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	terrain := systems.NewTerrainSystem(em, cfg, dispatcher, effects, rng)
	falling := systems.NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	state := NewRunState()
	state.Watch(dispatcher)

	w := &World{
		cfg:        cfg,
		em:         em,
		dispatcher: dispatcher,
		terrain:    terrain,
		explosion:  systems.NewExplosionSystem(em, cfg, terrain, dispatcher, effects),
		falling:    falling,
		patrol:     systems.NewPatrolSystem(em, cfg),
		occupancy:  systems.NewOccupancyChecker(em),
		state:      state,
	}

	w.terrain.InitPlatform()
	log.Printf("[World] ready: %dx%d tiles, platform row %d, seed %d",
		cfg.MapWidthTiles, cfg.MapHeightTiles, cfg.PlatformRow, cfg.Seed)
	return w
}

// Step 推进一帧模拟
//
// 固定顺序：生成调度 → 敌人巡逻 → 坠落积分 → 计时 → 清扫已标记实体。
// cameraLowerY 是当前相机可见范围的下边界世界Y。
func (w *World) Step(deltaTime, cameraLowerY float64) {
	w.terrain.Advance(cameraLowerY)
	w.patrol.Update(deltaTime)
	w.falling.Update(deltaTime)
	w.state.Tick(deltaTime)
	w.em.RemoveMarkedEntities()
}

// Dig 玩家在 (x, y) 处向下挖掘，清除脚下一格带的行
//
// 触发点加一个格高后落在哪一行，挖的就是哪一行。
// 返回是否真的挖掉了一行。
func (w *World) Dig(x, y float64) bool {
	dug := w.terrain.ClearRowAt(y + w.cfg.TileSize)
	if dug {
		log.Printf("[World] dig at (%.1f, %.1f)", x, y)
	}
	return dug
}

// Explode 在 (x, y) 处引爆一次半径为 radius 的爆炸
func (w *World) Explode(x, y, radius float64) {
	w.explosion.Resolve(x, y, radius)
}

// Occupied 判断点附近是否已有存活实体占位
func (w *World) Occupied(x, y, radius float64) bool {
	return w.occupancy.Occupied(x, y, radius)
}

// RowSolid 查询某行当前是否实心
func (w *World) RowSolid(index int) bool {
	return w.terrain.RowSolid(index)
}

// RowCleared 查询某行是否已被挖除
func (w *World) RowCleared(index int) bool {
	return w.terrain.RowCleared(index)
}

// Frontier 返回生成前沿的世界Y
func (w *World) Frontier() float64 {
	return w.terrain.Frontier()
}

// Config 返回世界使用的地形配置
func (w *World) Config() *config.TerrainConfig {
	return w.cfg
}

// EntityManager 返回底层实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// Events 返回事件分发器，供外部订阅行清除、实体销毁与粒子事件
func (w *World) Events() *events.Dispatcher {
	return w.dispatcher
}

// State 返回本局的运行时统计
func (w *World) State() *RunState {
	return w.state
}
