package systems

import "github.com/gonewx/digdown/pkg/config"

// DepthDifficulty 深度难度计算
//
// 以"平台下第一行"为深度0，向下每行深度+1。
// 深度因子线性附加到各内容的基础生成概率上，敌人速度同样线性提升并封顶。
type DepthDifficulty struct {
	cfg *config.TerrainConfig
}

// NewDepthDifficulty 创建深度难度计算器
func NewDepthDifficulty(cfg *config.TerrainConfig) *DepthDifficulty {
	return &DepthDifficulty{cfg: cfg}
}

// DepthInRows 返回行的深度（平台下第一行为0，平台及以上为0）
func (d *DepthDifficulty) DepthInRows(rowIndex int) int {
	depth := rowIndex - (d.cfg.PlatformRow + 1)
	if depth < 0 {
		return 0
	}
	return depth
}

// Factor 返回行的深度因子，直接加到各基础生成概率上
func (d *DepthDifficulty) Factor(rowIndex int) float64 {
	return float64(d.DepthInRows(rowIndex)) * d.cfg.Difficulty.ScaleFactor
}

// EnemySpeed 返回该行生成的敌人巡逻速度（基础速度+深度加成，封顶）
func (d *DepthDifficulty) EnemySpeed(rowIndex int) float64 {
	speed := d.cfg.Enemy.BaseSpeed + float64(d.DepthInRows(rowIndex))*d.cfg.Enemy.SpeedScale
	if speed > d.cfg.Enemy.MaxSpeed {
		return d.cfg.Enemy.MaxSpeed
	}
	return speed
}
