package game

import (
	"testing"

	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/entities"
	"github.com/gonewx/digdown/pkg/events"
	"github.com/gonewx/digdown/pkg/utils"
)

const frameTime = 1.0 / 60

// quietWorldConfig 关闭随机生成，保证世界测试确定性
func quietWorldConfig() *config.TerrainConfig {
	cfg := config.DefaultTerrainConfig()
	cfg.Spawn = config.SpawnChancesConfig{}
	cfg.Difficulty.ScaleFactor = 0
	cfg.Seed = 1
	return cfg
}

func TestNewWorldPlacesPlatform(t *testing.T) {
	w := NewWorld(quietWorldConfig(), nil)

	if !w.RowSolid(w.Config().PlatformRow) {
		t.Fatal("platform row should be solid right after construction")
	}
	if got := len(ecs.GetEntitiesWith1[*components.BehaviorComponent](w.EntityManager())); got != 0 {
		t.Errorf("platform must carry no content, found %d entities", got)
	}
	if w.State().RowsCleared() != 0 || w.State().DeepestClearedRow() != -1 {
		t.Error("fresh world should have zeroed run state")
	}
}

func TestNewWorldNilConfigUsesDefaults(t *testing.T) {
	w := NewWorld(nil, nil)

	if w.Config().TileSize != 16 {
		t.Errorf("default tile size = %v, want 16", w.Config().TileSize)
	}
	if !w.RowSolid(w.Config().PlatformRow) {
		t.Error("platform should exist with default config")
	}
}

func TestWorldStepAdvancesTerrain(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)

	// 相机下边界在0，前沿推到预生成余量处
	w.Step(frameTime, 0)
	if w.Frontier() != 320 {
		t.Errorf("frontier = %v, want 320", w.Frontier())
	}
	for row := cfg.PlatformRow + 1; row <= 20; row++ {
		if !w.RowSolid(row) {
			t.Errorf("row %d should be generated", row)
		}
	}

	// 相机下行，前沿跟着推进
	w.Step(frameTime, 200)
	if w.Frontier() != 520 {
		t.Errorf("frontier = %v, want 520", w.Frontier())
	}
	if got := w.State().Elapsed(); got != 2*frameTime {
		t.Errorf("elapsed = %v, want two frames %v", got, 2*frameTime)
	}
}

func TestWorldDigClearsRowBelowTrigger(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)
	w.Step(frameTime, 0)

	// 玩家脚底站在平台行碰撞条上沿，往下挖掉的是平台下第一行
	feetY := utils.RowColliderTopY(cfg.PlatformRow, cfg.TileSize, cfg.ColliderHeight)
	if !w.Dig(160, feetY) {
		t.Fatal("digging below the platform should clear row 6")
	}
	if w.RowSolid(6) {
		t.Error("row 6 should be gone after the dig")
	}
	if !w.RowSolid(cfg.PlatformRow) {
		t.Error("platform row itself must stay solid")
	}

	// 同一落点再挖一次：目标行已没了
	if w.Dig(160, feetY) {
		t.Error("second dig at the same spot should be a no-op")
	}
}

func TestWorldDigTargetsTriggerBandPlusOne(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)
	w.Step(frameTime, 0)

	// 触发点在第6行格带内（y=97），加一格高后落到第7行
	if !w.Dig(160, 97) {
		t.Fatal("dig with trigger inside band 6 should clear row 7")
	}
	if w.RowSolid(7) {
		t.Error("row 7 should be cleared")
	}
	if !w.RowSolid(6) {
		t.Error("row 6 must be untouched")
	}
}

func TestWorldExplodeClearsCoveredRows(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)
	w.Step(frameTime, 0)

	w.Explode(cfg.WorldCenterX(), 168, 40)

	for row := 8; row <= 12; row++ {
		if w.RowSolid(row) {
			t.Errorf("row %d should be cleared by the blast", row)
		}
	}
	if !w.RowSolid(7) || !w.RowSolid(13) {
		t.Error("rows outside the blast must stay solid")
	}
	if w.State().RowsCleared() != 5 {
		t.Errorf("rows cleared counter = %d, want 5", w.State().RowsCleared())
	}
	if w.State().DeepestClearedRow() != 12 {
		t.Errorf("deepest cleared row = %d, want 12", w.State().DeepestClearedRow())
	}
}

func TestWorldStateCountsKills(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)
	w.Step(frameTime, 0)

	// 手工放一个敌人在爆心附近
	entities.NewEnemyEntity(w.EntityManager(), cfg, cfg.WorldCenterX(), 9, 30, 1)
	w.Explode(cfg.WorldCenterX(), 168, 40)

	if w.State().EnemiesKilled() != 1 {
		t.Errorf("enemies killed = %d, want 1", w.State().EnemiesKilled())
	}
}

func TestWorldStepSweepsDestroyedEntities(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)
	w.Step(frameTime, 0)

	feetY := utils.RowColliderTopY(cfg.PlatformRow, cfg.TileSize, cfg.ColliderHeight)
	w.Dig(160, feetY)

	// 挖掉的行实体在下一帧被清扫出管理器
	w.Step(frameTime, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.RowColliderComponent](w.EntityManager()) {
		marker, _ := ecs.GetComponent[*components.RowColliderComponent](w.EntityManager(), id)
		if marker.Index == 6 {
			t.Error("cleared row collider should be swept from the manager")
		}
	}
}

func TestWorldOccupiedSeesPlacedEntities(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)

	x := utils.CellCenterX(6, cfg.TileSize)
	probeY := utils.RowCenterY(6, cfg.TileSize)
	if w.Occupied(x, probeY, cfg.OccupancyRadius) {
		t.Fatal("empty cell should be free")
	}

	entities.NewBoulderEntity(w.EntityManager(), cfg, x, 6)
	if !w.Occupied(x, probeY, cfg.OccupancyRadius) {
		t.Error("cell with a boulder should be occupied")
	}
}

func TestWorldFallingIntegration(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)
	w.Step(frameTime, 0)

	// 巨石站在第6行，挖掉第6行后它落到第7行上
	boulder := entities.NewBoulderEntity(w.EntityManager(), cfg, 104, 6)
	feetY := utils.RowColliderTopY(cfg.PlatformRow, cfg.TileSize, cfg.ColliderHeight)
	w.Dig(160, feetY)

	for i := 0; i < 300; i++ {
		w.Step(frameTime, 0)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](w.EntityManager(), boulder)
	box, _ := ecs.GetComponent[*components.CollisionComponent](w.EntityManager(), boulder)
	feet := pos.Y + box.OffsetY + box.Height/2
	wantFeet := utils.RowColliderTopY(7, cfg.TileSize, cfg.ColliderHeight)
	if feet != wantFeet {
		t.Errorf("boulder feet = %v, want %v on the next solid row", feet, wantFeet)
	}
}

func TestWorldReentrantDigFromListener(t *testing.T) {
	cfg := quietWorldConfig()
	w := NewWorld(cfg, nil)
	w.Step(frameTime, 0)

	// 行清除监听里级联往下挖，不应死循环或崩溃
	var cleared []int
	w.Events().Subscribe(events.EventRowCleared, func(ev events.Event) {
		row := ev.(events.RowClearedEvent).RowIndex
		cleared = append(cleared, row)
		if row < 8 {
			w.Dig(160, utils.RowCenterY(row, cfg.TileSize))
		}
	})

	feetY := utils.RowColliderTopY(cfg.PlatformRow, cfg.TileSize, cfg.ColliderHeight)
	w.Dig(160, feetY)

	want := []int{6, 7, 8}
	if len(cleared) != len(want) {
		t.Fatalf("cascade cleared %v, want %v", cleared, want)
	}
	for i, row := range want {
		if cleared[i] != row {
			t.Errorf("cascade order %v, want %v", cleared, want)
			break
		}
	}
}

func TestWorldDeterministicWithFixedSeed(t *testing.T) {
	build := func() *World {
		cfg := config.DefaultTerrainConfig()
		cfg.Seed = 42
		return NewWorld(cfg, nil)
	}

	first := build()
	second := build()
	for i := 0; i < 10; i++ {
		first.Step(frameTime, float64(i)*50)
		second.Step(frameTime, float64(i)*50)
	}

	countByType := func(w *World) map[components.BehaviorType]int {
		counts := make(map[components.BehaviorType]int)
		for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](w.EntityManager()) {
			behavior, _ := ecs.GetComponent[*components.BehaviorComponent](w.EntityManager(), id)
			counts[behavior.Type]++
		}
		return counts
	}

	firstCounts := countByType(first)
	secondCounts := countByType(second)
	for _, behaviorType := range []components.BehaviorType{
		components.BehaviorBoulder, components.BehaviorEnemy,
		components.BehaviorSpike, components.BehaviorCoin,
	} {
		if firstCounts[behaviorType] != secondCounts[behaviorType] {
			t.Errorf("%v count differs between identical seeds: %d vs %d",
				behaviorType, firstCounts[behaviorType], secondCounts[behaviorType])
		}
	}
}

func TestWorldRecordsParticleTriggers(t *testing.T) {
	cfg := quietWorldConfig()
	recorder := &particle.Recorder{}
	w := NewWorld(cfg, recorder)
	w.Step(frameTime, 0)

	feetY := utils.RowColliderTopY(cfg.PlatformRow, cfg.TileSize, cfg.ColliderHeight)
	w.Dig(160, feetY)

	if len(recorder.CallsFor("row_burst")) != 2 {
		t.Errorf("dig should emit 2 row bursts, got %d", len(recorder.CallsFor("row_burst")))
	}
}
