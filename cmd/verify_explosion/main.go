// verify_explosion 爆炸结算验证程序
//
// 无头验证按行整段清除、欧氏距离伤害、巨石增量伤害与两阶段
// 互不依赖等关键行为，任何一项失败以退出码1结束。
package main

import (
	"flag"
	"log"
	"os"

	_ "github.com/gonewx/digdown"
	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/entities"
	"github.com/gonewx/digdown/pkg/game"
	"github.com/gonewx/digdown/pkg/utils"
)

const frameTime = 1.0 / 60

var failures int

func check(ok bool, name string) {
	if ok {
		log.Printf("  ✅ %s", name)
	} else {
		log.Printf("  ❌ %s", name)
		failures++
	}
}

// quietConfig 关闭随机生成，让每项检查都确定可复现
func quietConfig() *config.TerrainConfig {
	cfg, err := config.LoadEmbeddedTerrainConfig()
	if err != nil {
		log.Fatalf("failed to load embedded terrain config: %v", err)
	}
	cfg.Spawn = config.SpawnChancesConfig{}
	cfg.Difficulty.ScaleFactor = 0
	cfg.Seed = 1
	return cfg
}

func main() {
	flag.Parse()

	cfg := quietConfig()
	recorder := &particle.Recorder{}
	w := game.NewWorld(cfg, recorder)
	w.Step(frameTime, 0)
	em := w.EntityManager()

	blastX := cfg.WorldCenterX()
	blastY := utils.RowCenterY(10, cfg.TileSize)
	radius := 40.0

	log.Println("========== 爆炸结算验证 ==========")

	log.Println("[1] 实体布置")
	// 距爆心恰好45：半径40之外
	survivor := entities.NewEnemyEntity(em, cfg, blastX, 7, 30, 1)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, survivor)
	pos.Y = blastY - 45
	// 距爆心16：必死
	victim := entities.NewEnemyEntity(em, cfg, blastX, 9, 30, 1)
	// 爆心正上方的巨石与金币
	boulder := entities.NewBoulderEntity(em, cfg, blastX, 10)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, boulder)
	health.MaxHealth = 100
	health.CurrentHealth = 100
	coin := entities.NewCoinEntity(em, cfg, blastX, 10)
	// 站在被清除行上、水平远离爆心的敌人
	bystander := entities.NewEnemyEntity(em, cfg, 308, 9, 30, 1)
	victimPos, _ := ecs.GetComponent[*components.PositionComponent](em, victim)
	check(blastY-pos.Y == 45 && blastY-victimPos.Y == 16, "布置距离符合预设（45与16）")

	log.Println("[2] 行清除范围")
	recorder.Reset()
	w.Explode(blastX, blastY, radius)
	rowsGone := true
	for row := 8; row <= 12; row++ {
		if w.RowSolid(row) {
			rowsGone = false
		}
	}
	check(rowsGone, "半径覆盖的行 8..12 全部清除")
	check(w.RowSolid(7) && w.RowSolid(13), "上下邻行保持实心")
	check(w.State().RowsCleared() == 5, "行清除计数为5")

	log.Println("[3] 实体伤害")
	check(em.Alive(survivor), "距爆心45的敌人幸存")
	survivorHealth, _ := ecs.GetComponent[*components.HealthComponent](em, survivor)
	check(survivorHealth.CurrentHealth == cfg.Enemy.Health, "幸存敌人满血")
	check(!em.Alive(victim), "距爆心16的敌人被消灭")
	check(w.State().EnemiesKilled() == 1, "击杀计数为1")
	boulderHealth, _ := ecs.GetComponent[*components.HealthComponent](em, boulder)
	check(em.Alive(boulder) && boulderHealth.CurrentHealth == 100-cfg.Explosion.BoulderDamage,
		"巨石按固定伤害量扣血")
	check(em.Alive(coin), "金币不受爆炸波及")
	check(em.Alive(bystander), "行被清掉但水平在半径外的敌人幸存")

	log.Println("[4] 粒子输出")
	check(len(recorder.CallsFor("explosion_burst")) == 1, "爆心一次火光")
	check(len(recorder.CallsFor("row_burst")) == 10, "每个被清行两次全宽爆裂")

	log.Println("[5] 幂等与增量")
	recorder.Reset()
	before := w.State().RowsCleared()
	w.Explode(blastX, blastY, radius)
	check(w.State().RowsCleared() == before, "重复爆炸不再清除任何行")
	check(len(recorder.CallsFor("row_burst")) == 0, "重复爆炸没有行爆裂")
	boulderHealth, _ = ecs.GetComponent[*components.HealthComponent](em, boulder)
	check(boulderHealth.CurrentHealth == 100-2*cfg.Explosion.BoulderDamage, "巨石第二次扣血")
	w.Explode(blastX, blastY, radius)
	check(!em.Alive(boulder), "巨石累计扣光后碎裂")
	check(w.State().BouldersShattered() == 1, "碎石计数为1")

	log.Println("[6] 零半径与界外")
	recorder.Reset()
	w.Explode(blastX, blastY, 0)
	w.Explode(cfg.WorldWidth()+241, blastY, radius)
	check(len(recorder.CallsFor("row_burst")) == 0, "零半径与界外爆炸不清行")
	check(w.RowSolid(7) && w.RowSolid(13), "邻行依旧实心")

	if failures > 0 {
		log.Printf("========== ❌ %d 项检查失败 ==========", failures)
		os.Exit(1)
	}
	log.Println("========== ✅ 爆炸结算验证全部通过 ==========")
}
