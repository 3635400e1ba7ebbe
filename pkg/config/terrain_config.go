package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/digdown/pkg/embedded"
)

// embeddedTerrainConfigPath 嵌入资源中的地形配置路径
const embeddedTerrainConfigPath = "data/terrain.yaml"

// TerrainConfig 地形引擎总配置
//
// 所有数值都是调参常量，运行期不会协商或持久化。
// 配置文件位置: data/terrain.yaml
type TerrainConfig struct {
	TileSize           float64 `yaml:"tileSize" json:"tileSize"`                     // 格子边长（像素），行高与列宽相同
	MapWidthTiles      int     `yaml:"mapWidthTiles" json:"mapWidthTiles"`           // 地图宽度（格数），固定列宽
	MapHeightTiles     int     `yaml:"mapHeightTiles" json:"mapHeightTiles"`         // 地图最大深度（行数），超出后不再生成
	PlatformRow        int     `yaml:"platformRow" json:"platformRow"`               // 初始平台行号，此行及以上不做自然生成
	GenerateAheadTiles int     `yaml:"generateAheadTiles" json:"generateAheadTiles"` // 预生成提前量（格数），在相机下边界之下多生成的距离
	ColliderHeight     float64 `yaml:"colliderHeight" json:"colliderHeight"`         // 行碰撞条厚度（像素），贴着行格带底部
	OccupancyRadius    float64 `yaml:"occupancyRadius" json:"occupancyRadius"`       // 占位检查半径（像素）
	Seed               int64   `yaml:"seed" json:"seed"`                             // 随机种子，0 表示不固定（由调用方决定）

	Spawn      SpawnChancesConfig `yaml:"spawn" json:"spawn"`           // 各内容类型的基础生成概率
	Difficulty DifficultyConfig   `yaml:"difficulty" json:"difficulty"` // 深度难度缩放
	Boulder    BoulderConfig      `yaml:"boulder" json:"boulder"`       // 巨石属性
	Enemy      EnemyConfig        `yaml:"enemy" json:"enemy"`           // 敌人属性
	Spike      SpikeConfig        `yaml:"spike" json:"spike"`           // 尖刺属性
	Coin       CoinConfig         `yaml:"coin" json:"coin"`             // 金币属性
	Explosion  ExplosionConfig    `yaml:"explosion" json:"explosion"`   // 爆炸结算参数
	Physics    PhysicsConfig      `yaml:"physics" json:"physics"`       // 坠落物理参数
}

// SpawnChancesConfig 每格独立试验的基础生成概率
// 判定顺序固定：巨石 → 敌人 → 尖刺，先命中者独占该格；金币单独判定
type SpawnChancesConfig struct {
	Boulder float64 `yaml:"boulder" json:"boulder"` // 巨石基础概率 [0,1]
	Enemy   float64 `yaml:"enemy" json:"enemy"`     // 敌人基础概率 [0,1]
	Spike   float64 `yaml:"spike" json:"spike"`     // 尖刺基础概率 [0,1]
	Coin    float64 `yaml:"coin" json:"coin"`       // 金币基础概率 [0,1]
}

// DifficultyConfig 深度难度缩放参数
// 深度按"平台下第一行为0"计数，线性放大生成概率与敌人速度
type DifficultyConfig struct {
	ScaleFactor float64 `yaml:"scaleFactor" json:"scaleFactor"` // 每深一行附加到各生成概率上的增量
}

// BoulderConfig 巨石属性
type BoulderConfig struct {
	Width  float64 `yaml:"width" json:"width"`   // 碰撞盒宽度（像素）
	Height float64 `yaml:"height" json:"height"` // 碰撞盒高度（像素）
	Health int     `yaml:"health" json:"health"` // 最大生命值
}

// EnemyConfig 敌人属性
type EnemyConfig struct {
	Width      float64 `yaml:"width" json:"width"`           // 碰撞盒宽度（像素）
	Height     float64 `yaml:"height" json:"height"`         // 碰撞盒高度（像素）
	Health     int     `yaml:"health" json:"health"`         // 最大生命值
	BaseSpeed  float64 `yaml:"baseSpeed" json:"baseSpeed"`   // 深度0时的巡逻速度（像素/秒）
	SpeedScale float64 `yaml:"speedScale" json:"speedScale"` // 每深一行附加的速度（像素/秒）
	MaxSpeed   float64 `yaml:"maxSpeed" json:"maxSpeed"`     // 速度上限（像素/秒）
}

// SpikeConfig 尖刺属性
type SpikeConfig struct {
	Width  float64 `yaml:"width" json:"width"`   // 碰撞盒宽度（像素）
	Height float64 `yaml:"height" json:"height"` // 碰撞盒高度（像素）
	Health int     `yaml:"health" json:"health"` // 最大生命值
}

// CoinConfig 金币属性
type CoinConfig struct {
	Width  float64 `yaml:"width" json:"width"`   // 碰撞盒宽度（像素）
	Height float64 `yaml:"height" json:"height"` // 碰撞盒高度（像素）
	Value  int     `yaml:"value" json:"value"`   // 收集价值
}

// ExplosionConfig 爆炸结算参数
type ExplosionConfig struct {
	// BoulderDamage 爆炸对巨石的固定伤害量。
	// 设计上要求不低于巨石最大生命值（一炸即碎），但仍按增量伤害结算
	BoulderDamage int `yaml:"boulderDamage" json:"boulderDamage"`
}

// PhysicsConfig 坠落物理参数
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" json:"gravity"`           // 重力加速度（像素/秒²）
	MaxFallSpeed float64 `yaml:"maxFallSpeed" json:"maxFallSpeed"` // 坠落速度上限（像素/秒）
}

// DefaultTerrainConfig 返回内置默认配置
// 与 data/terrain.yaml 保持一致，供测试和未提供配置文件时使用
func DefaultTerrainConfig() *TerrainConfig {
	return &TerrainConfig{
		TileSize:           16,
		MapWidthTiles:      20,
		MapHeightTiles:     500,
		PlatformRow:        5,
		GenerateAheadTiles: 20,
		ColliderHeight:     2,
		OccupancyRadius:    8,
		Seed:               0,
		Spawn: SpawnChancesConfig{
			Boulder: 0.06,
			Enemy:   0.05,
			Spike:   0.07,
			Coin:    0.08,
		},
		Difficulty: DifficultyConfig{
			ScaleFactor: 0.004,
		},
		Boulder: BoulderConfig{
			Width:  14,
			Height: 14,
			Health: 30,
		},
		Enemy: EnemyConfig{
			Width:      12,
			Height:     12,
			Health:     10,
			BaseSpeed:  30,
			SpeedScale: 2,
			MaxSpeed:   90,
		},
		Spike: SpikeConfig{
			Width:  12,
			Height: 6,
			Health: 5,
		},
		Coin: CoinConfig{
			Width:  8,
			Height: 8,
			Value:  10,
		},
		Explosion: ExplosionConfig{
			BoulderDamage: 34,
		},
		Physics: PhysicsConfig{
			Gravity:      400,
			MaxFallSpeed: 480,
		},
	}
}

// ParseTerrainConfig 从 YAML 字节解析地形配置
func ParseTerrainConfig(data []byte) (*TerrainConfig, error) {
	var config TerrainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse terrain config YAML: %w", err)
	}

	if err := validateTerrainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid terrain config: %w", err)
	}

	return &config, nil
}

// LoadTerrainConfig 从 YAML 文件加载地形配置
func LoadTerrainConfig(filePath string) (*TerrainConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read terrain config file: %w", err)
	}
	return ParseTerrainConfig(data)
}

// LoadEmbeddedTerrainConfig 从嵌入资源加载地形配置
func LoadEmbeddedTerrainConfig() (*TerrainConfig, error) {
	data, err := embedded.ReadFile(embeddedTerrainConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded terrain config: %w", err)
	}
	return ParseTerrainConfig(data)
}

// WorldWidth 返回地图像素宽度
func (c *TerrainConfig) WorldWidth() float64 {
	return float64(c.MapWidthTiles) * c.TileSize
}

// WorldCenterX 返回地图水平中心的X坐标
func (c *TerrainConfig) WorldCenterX() float64 {
	return c.WorldWidth() / 2
}

// validateTerrainConfig 验证配置的有效性
func validateTerrainConfig(config *TerrainConfig) error {
	if config.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %v", config.TileSize)
	}
	if config.MapWidthTiles <= 0 {
		return fmt.Errorf("mapWidthTiles must be positive, got %d", config.MapWidthTiles)
	}
	if config.MapHeightTiles <= 0 {
		return fmt.Errorf("mapHeightTiles must be positive, got %d", config.MapHeightTiles)
	}
	if config.PlatformRow < 0 || config.PlatformRow >= config.MapHeightTiles {
		return fmt.Errorf("platformRow must be within [0, %d), got %d", config.MapHeightTiles, config.PlatformRow)
	}
	if config.GenerateAheadTiles <= 0 {
		return fmt.Errorf("generateAheadTiles must be positive, got %d", config.GenerateAheadTiles)
	}
	if config.ColliderHeight <= 0 || config.ColliderHeight > config.TileSize {
		return fmt.Errorf("colliderHeight must be within (0, tileSize], got %v", config.ColliderHeight)
	}
	if config.OccupancyRadius <= 0 {
		return fmt.Errorf("occupancyRadius must be positive, got %v", config.OccupancyRadius)
	}

	// 概率字段逐一检查
	chances := map[string]float64{
		"spawn.boulder": config.Spawn.Boulder,
		"spawn.enemy":   config.Spawn.Enemy,
		"spawn.spike":   config.Spawn.Spike,
		"spawn.coin":    config.Spawn.Coin,
	}
	for name, chance := range chances {
		if chance < 0 || chance > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, chance)
		}
	}

	if config.Difficulty.ScaleFactor < 0 {
		return fmt.Errorf("difficulty.scaleFactor must be >= 0, got %v", config.Difficulty.ScaleFactor)
	}

	if config.Boulder.Width <= 0 || config.Boulder.Height <= 0 {
		return fmt.Errorf("boulder size must be positive, got %vx%v", config.Boulder.Width, config.Boulder.Height)
	}
	if config.Boulder.Health <= 0 {
		return fmt.Errorf("boulder.health must be positive, got %d", config.Boulder.Health)
	}

	if config.Enemy.Width <= 0 || config.Enemy.Height <= 0 {
		return fmt.Errorf("enemy size must be positive, got %vx%v", config.Enemy.Width, config.Enemy.Height)
	}
	if config.Enemy.Health <= 0 {
		return fmt.Errorf("enemy.health must be positive, got %d", config.Enemy.Health)
	}
	if config.Enemy.BaseSpeed <= 0 {
		return fmt.Errorf("enemy.baseSpeed must be positive, got %v", config.Enemy.BaseSpeed)
	}
	if config.Enemy.SpeedScale < 0 {
		return fmt.Errorf("enemy.speedScale must be >= 0, got %v", config.Enemy.SpeedScale)
	}
	if config.Enemy.MaxSpeed < config.Enemy.BaseSpeed {
		return fmt.Errorf("enemy.maxSpeed must be >= enemy.baseSpeed, got %v < %v", config.Enemy.MaxSpeed, config.Enemy.BaseSpeed)
	}

	if config.Spike.Width <= 0 || config.Spike.Height <= 0 {
		return fmt.Errorf("spike size must be positive, got %vx%v", config.Spike.Width, config.Spike.Height)
	}
	if config.Spike.Health <= 0 {
		return fmt.Errorf("spike.health must be positive, got %d", config.Spike.Health)
	}

	if config.Coin.Width <= 0 || config.Coin.Height <= 0 {
		return fmt.Errorf("coin size must be positive, got %vx%v", config.Coin.Width, config.Coin.Height)
	}
	if config.Coin.Value <= 0 {
		return fmt.Errorf("coin.value must be positive, got %d", config.Coin.Value)
	}

	if config.Explosion.BoulderDamage <= 0 {
		return fmt.Errorf("explosion.boulderDamage must be positive, got %d", config.Explosion.BoulderDamage)
	}

	if config.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be positive, got %v", config.Physics.Gravity)
	}
	if config.Physics.MaxFallSpeed <= 0 {
		return fmt.Errorf("physics.maxFallSpeed must be positive, got %v", config.Physics.MaxFallSpeed)
	}

	return nil
}
