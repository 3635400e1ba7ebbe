package systems

import (
	"log"

	"github.com/gonewx/digdown/pkg/entities"
	"github.com/gonewx/digdown/pkg/utils"
)

// populateRow 在新生成的行上放置内容
//
// 每列独立判定。先做占位探测，已被相邻行的尖刺或坠落后的实体
// 占住的格子直接跳过。然后按 巨石→敌人→尖刺 的固定优先级各掷一次
// 骰子，先命中者独占该格；三者全部落空时再单独判定金币。
// 所有概率都加上该行的深度因子。
func (s *TerrainSystem) populateRow(index int) {
	probeY := utils.RowCenterY(index, s.cfg.TileSize)
	factor := s.difficulty.Factor(index)
	enemySpeed := s.difficulty.EnemySpeed(index)

	spawned := 0
	for col := 0; col < s.cfg.MapWidthTiles; col++ {
		x := utils.CellCenterX(col, s.cfg.TileSize)
		if s.occupancy.Occupied(x, probeY, s.cfg.OccupancyRadius) {
			continue
		}

		placed := true
		switch {
		case s.rng.Float64() < s.cfg.Spawn.Boulder+factor:
			entities.NewBoulderEntity(s.em, s.cfg, x, index)
		case s.rng.Float64() < s.cfg.Spawn.Enemy+factor:
			direction := 1
			if s.rng.Float64() < 0.5 {
				direction = -1
			}
			entities.NewEnemyEntity(s.em, s.cfg, x, index, enemySpeed, direction)
		case s.rng.Float64() < s.cfg.Spawn.Spike+factor:
			entities.NewSpikeEntity(s.em, s.cfg, x, index)
		default:
			placed = false
		}

		if !placed && s.rng.Float64() < s.cfg.Spawn.Coin+factor {
			entities.NewCoinEntity(s.em, s.cfg, x, index)
			placed = true
		}
		if placed {
			spawned++
		}
	}

	if spawned > 0 {
		log.Printf("[TerrainSystem] row %d populated with %d entities (depth %d)",
			index, spawned, s.difficulty.DepthInRows(index))
	}
}
