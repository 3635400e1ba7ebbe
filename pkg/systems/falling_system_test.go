package systems

import (
	"testing"

	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/entities"
	"github.com/gonewx/digdown/pkg/utils"
)

const frameTime = 1.0 / 60

func TestFallStartsWhenSupportRowCleared(t *testing.T) {
	cfg := quietConfig()
	em, dispatcher, _, terrain := newTerrainFixture(cfg)
	falling := NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	terrain.GenerateRow(utils.RowTopY(6, cfg.TileSize), false)
	terrain.GenerateRow(utils.RowTopY(7, cfg.TileSize), false)
	boulder := entities.NewBoulderEntity(em, cfg, 104, 6)

	terrain.ClearRowAt(96)

	if !ecs.HasComponent[*components.FallingComponent](em, boulder) {
		t.Fatal("boulder standing on the cleared row should start falling")
	}
	if !ecs.HasComponent[*components.VelocityComponent](em, boulder) {
		t.Error("falling boulder should carry a velocity component")
	}
}

func TestFallLandsOnNextSolidRow(t *testing.T) {
	cfg := quietConfig()
	em, dispatcher, _, terrain := newTerrainFixture(cfg)
	falling := NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	terrain.GenerateRow(utils.RowTopY(6, cfg.TileSize), false)
	terrain.GenerateRow(utils.RowTopY(7, cfg.TileSize), false)
	boulder := entities.NewBoulderEntity(em, cfg, 104, 6)

	terrain.ClearRowAt(96)
	for i := 0; i < 300; i++ {
		falling.Update(frameTime)
	}

	// 一行之差，落到第7行碰撞条上沿，脚底贴齐
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, boulder)
	box, _ := ecs.GetComponent[*components.CollisionComponent](em, boulder)
	feet := pos.Y + box.OffsetY + box.Height/2
	wantFeet := utils.RowColliderTopY(7, cfg.TileSize, cfg.ColliderHeight)
	if feet != wantFeet {
		t.Errorf("boulder feet = %v, want %v", feet, wantFeet)
	}
	if ecs.HasComponent[*components.FallingComponent](em, boulder) {
		t.Error("boulder should stop falling after landing")
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, boulder)
	if vel.VY != 0 {
		t.Errorf("vertical velocity after landing = %v, want 0", vel.VY)
	}
}

func TestFallCascadesThroughMissingRows(t *testing.T) {
	cfg := quietConfig()
	em, dispatcher, _, terrain := newTerrainFixture(cfg)
	falling := NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	// 第7、8行从未生成，第9行是下一个支撑
	terrain.GenerateRow(utils.RowTopY(6, cfg.TileSize), false)
	terrain.GenerateRow(utils.RowTopY(9, cfg.TileSize), false)
	boulder := entities.NewBoulderEntity(em, cfg, 104, 6)

	terrain.ClearRowAt(96)
	for i := 0; i < 300; i++ {
		falling.Update(frameTime)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, boulder)
	box, _ := ecs.GetComponent[*components.CollisionComponent](em, boulder)
	feet := pos.Y + box.OffsetY + box.Height/2
	wantFeet := utils.RowColliderTopY(9, cfg.TileSize, cfg.ColliderHeight)
	if feet != wantFeet {
		t.Errorf("boulder feet = %v, want %v after cascading fall", feet, wantFeet)
	}
}

func TestEntityOnOtherRowDoesNotFall(t *testing.T) {
	cfg := quietConfig()
	em, dispatcher, _, terrain := newTerrainFixture(cfg)
	falling := NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	terrain.GenerateRow(utils.RowTopY(6, cfg.TileSize), false)
	terrain.GenerateRow(utils.RowTopY(8, cfg.TileSize), false)
	enemy := entities.NewEnemyEntity(em, cfg, 200, 8, 30, 1)

	// 挖掉第6行，第8行上的敌人与它隔着两个格带
	terrain.ClearRowAt(96)

	if ecs.HasComponent[*components.FallingComponent](em, enemy) {
		t.Error("entity standing two rows away must not start falling")
	}
}

func TestSpikeNeverFalls(t *testing.T) {
	cfg := quietConfig()
	em, dispatcher, _, terrain := newTerrainFixture(cfg)
	falling := NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	terrain.GenerateRow(utils.RowTopY(6, cfg.TileSize), false)

	// 人为把尖刺脚底放到第6行碰撞条上沿，清行时也不该进入坠落
	spike := entities.NewSpikeEntity(em, cfg, 104, 7)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, spike)
	pos.Y = utils.RowColliderTopY(6, cfg.TileSize, cfg.ColliderHeight) - cfg.Spike.Height/2

	terrain.ClearRowAt(96)

	if !em.Alive(spike) {
		t.Fatal("spike outside the anchored band should survive the clear")
	}
	if ecs.HasComponent[*components.FallingComponent](em, spike) {
		t.Error("spikes never fall")
	}
}

func TestFallPastWorldBottomDestroys(t *testing.T) {
	cfg := quietConfig()
	cfg.MapHeightTiles = 8
	em, dispatcher, _, terrain := newTerrainFixture(cfg)
	falling := NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	terrain.GenerateRow(utils.RowTopY(6, cfg.TileSize), false)
	boulder := entities.NewBoulderEntity(em, cfg, 104, 6)

	// 下方没有任何实心行，巨石一路掉出世界
	terrain.ClearRowAt(96)
	for i := 0; i < 300; i++ {
		falling.Update(frameTime)
	}

	if em.Alive(boulder) {
		t.Error("entity falling past the world bottom should be destroyed")
	}
}

func TestFallSpeedIsCapped(t *testing.T) {
	cfg := quietConfig()
	em, dispatcher, _, terrain := newTerrainFixture(cfg)
	falling := NewFallingSystem(em, cfg, terrain)
	falling.WatchRowCleared(dispatcher)

	terrain.GenerateRow(utils.RowTopY(6, cfg.TileSize), false)
	boulder := entities.NewBoulderEntity(em, cfg, 104, 6)

	terrain.ClearRowAt(96)
	// 积分足够久，速度应封在上限
	for i := 0; i < 120; i++ {
		falling.Update(frameTime)
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, boulder)
	if vel.VY > cfg.Physics.MaxFallSpeed {
		t.Errorf("fall speed %v exceeds cap %v", vel.VY, cfg.Physics.MaxFallSpeed)
	}
	if vel.VY != cfg.Physics.MaxFallSpeed {
		t.Errorf("after 2 seconds fall speed = %v, want capped at %v", vel.VY, cfg.Physics.MaxFallSpeed)
	}
}
