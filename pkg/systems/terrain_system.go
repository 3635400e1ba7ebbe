package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/entities"
	"github.com/gonewx/digdown/pkg/events"
	"github.com/gonewx/digdown/pkg/utils"
)

// rowHandles 行仓库中的一条记录：该行的碰撞条与视觉条实体句柄
type rowHandles struct {
	collider ecs.EntityID
	visual   ecs.EntityID
}

// TerrainSystem 地形行引擎
//
// 集行仓库、行生成器、生成调度器与行清除器于一体：
//   - 行仓库：行号 → {碰撞条, 视觉条} 的稀疏映射，独占两个句柄的所有权
//   - 行生成器：在平台之下的行上按深度缩放的概率放置巨石/敌人/尖刺/金币
//   - 生成调度器：跟随相机下边界推进生成前沿，前沿只进不退
//   - 行清除器：挖除行、连带清掉锚在其顶面的尖刺、触发粒子与行清除事件
//
// 整个系统单线程逐帧驱动。清除以行仓库成员检查保证幂等，
// 事件监听回调内同步再次触发清除或爆炸是安全的重入。
type TerrainSystem struct {
	em         *ecs.EntityManager
	cfg        *config.TerrainConfig
	dispatcher *events.Dispatcher
	effects    particle.Trigger
	occupancy  *OccupancyChecker
	difficulty *DepthDifficulty
	rng        *rand.Rand

	rows     map[int]rowHandles // 行仓库：当前所有实心行
	cleared  mapset.Set[int]    // 已挖除的行号，永不重生
	nextRow  int                // 调度器下一个待访问的行号
	frontier float64            // 生成前沿：已解析到的最深世界Y
}

// NewTerrainSystem 创建地形行引擎
//
// 参数:
//   - em: 实体管理器
//   - cfg: 地形配置
//   - dispatcher: 事件分发器
//   - effects: 粒子触发器，传 nil 时退化为空实现
//   - rng: 随机源，传 nil 时按配置种子自建（种子为0则取当前时间）
func NewTerrainSystem(em *ecs.EntityManager, cfg *config.TerrainConfig, dispatcher *events.Dispatcher, effects particle.Trigger, rng *rand.Rand) *TerrainSystem {
	if effects == nil {
		effects = particle.Nop{}
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	return &TerrainSystem{
		em:         em,
		cfg:        cfg,
		dispatcher: dispatcher,
		effects:    effects,
		occupancy:  NewOccupancyChecker(em),
		difficulty: NewDepthDifficulty(cfg),
		rng:        rng,
		rows:       make(map[int]rowHandles),
		cleared:    mapset.New[int](),
	}
}

// InitPlatform 强制生成初始平台行
func (s *TerrainSystem) InitPlatform() {
	s.GenerateRow(utils.RowTopY(s.cfg.PlatformRow, s.cfg.TileSize), true)
	log.Printf("[TerrainSystem] initial platform ready at row %d", s.cfg.PlatformRow)
}

// GenerateRow 生成包含 worldY 的地形行
//
// force 为 true 时即使行位于初始平台或其上方也照常生成（用于放置平台本身）。
// 以下情况均为静默空操作：行号越界、行已在仓库中、行已被挖除、
// 行不低于平台且未强制。只有严格低于平台的行才放置内容。
func (s *TerrainSystem) GenerateRow(worldY float64, force bool) {
	index := utils.RowIndexAtY(worldY, s.cfg.TileSize)
	if index < 0 || index >= s.cfg.MapHeightTiles {
		return
	}
	if _, exists := s.rows[index]; exists {
		return
	}
	if s.cleared.Has(index) {
		return
	}
	if index <= s.cfg.PlatformRow && !force {
		return
	}

	s.rows[index] = rowHandles{
		collider: entities.NewRowColliderEntity(s.em, s.cfg, index),
		visual:   entities.NewRowVisualEntity(s.em, s.cfg, index),
	}

	if index > s.cfg.PlatformRow {
		s.populateRow(index)
	}
}

// Advance 推进生成前沿
//
// 每帧调用一次。目标前沿 = 相机下边界 + 预生成余量；
// 不超过当前前沿时直接返回，否则把前沿之前的行逐一交给生成器访问。
// 前沿只增不减，每个行号至多被调度访问一次。
func (s *TerrainSystem) Advance(cameraLowerY float64) {
	threshold := cameraLowerY + float64(s.cfg.GenerateAheadTiles)*s.cfg.TileSize
	if threshold <= s.frontier {
		return
	}

	lastRow := utils.RowIndexAtY(threshold, s.cfg.TileSize)
	for row := s.nextRow; row <= lastRow; row++ {
		s.GenerateRow(utils.RowTopY(row, s.cfg.TileSize), false)
	}
	if lastRow >= s.nextRow {
		s.nextRow = lastRow + 1
	}
	s.frontier = threshold
}

// RowSolid 查询某行当前是否在仓库中（实心）
func (s *TerrainSystem) RowSolid(index int) bool {
	_, ok := s.rows[index]
	return ok
}

// RowCleared 查询某行是否已被挖除
func (s *TerrainSystem) RowCleared(index int) bool {
	return s.cleared.Has(index)
}

// SolidRowCount 返回仓库中实心行的数量
func (s *TerrainSystem) SolidRowCount() int {
	return len(s.rows)
}

// Frontier 返回当前生成前沿的世界Y
func (s *TerrainSystem) Frontier() float64 {
	return s.frontier
}
