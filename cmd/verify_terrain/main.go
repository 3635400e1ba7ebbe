// verify_terrain 地形生成与挖掘流程验证程序
//
// 无头跑一遍生成调度、平台排除、挖行定位、前沿单调与永不重生等
// 关键行为，全部通过输出 ✅，任何一项失败输出 ❌ 并以退出码1结束。
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"

	_ "github.com/gonewx/digdown"
	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/config"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/entities"
	"github.com/gonewx/digdown/pkg/events"
	"github.com/gonewx/digdown/pkg/game"
	"github.com/gonewx/digdown/pkg/systems"
	"github.com/gonewx/digdown/pkg/utils"
)

const frameTime = 1.0 / 60

var seed = flag.Int64("seed", 42, "世界随机种子")

var failures int

func check(ok bool, name string) {
	if ok {
		log.Printf("  ✅ %s", name)
	} else {
		log.Printf("  ❌ %s", name)
		failures++
	}
}

func main() {
	flag.Parse()

	cfg, err := config.LoadEmbeddedTerrainConfig()
	if err != nil {
		log.Fatalf("failed to load embedded terrain config: %v", err)
	}
	cfg.Seed = *seed

	log.Println("========== 地形生成验证 ==========")
	w := game.NewWorld(cfg, nil)

	log.Println("[1] 初始平台")
	check(w.RowSolid(cfg.PlatformRow), "平台行实心")
	check(!w.RowSolid(cfg.PlatformRow+1), "平台下方尚未生成")

	log.Println("[2] 生成调度")
	w.Step(frameTime, 0)
	check(w.Frontier() == float64(cfg.GenerateAheadTiles)*cfg.TileSize, "前沿推到预生成余量处")
	allSolid := true
	for row := cfg.PlatformRow + 1; row <= 20; row++ {
		if !w.RowSolid(row) {
			allSolid = false
		}
	}
	check(allSolid, "前沿之前的行全部实心")
	noneAbove := true
	for row := 0; row < cfg.PlatformRow; row++ {
		if w.RowSolid(row) {
			noneAbove = false
		}
	}
	check(noneAbove, "平台上方没有自然生成")

	log.Println("[3] 挖掘定位")
	feetY := utils.RowColliderTopY(cfg.PlatformRow, cfg.TileSize, cfg.ColliderHeight)
	check(w.Dig(cfg.WorldCenterX(), feetY), "站在平台上挖掉脚下一行")
	check(!w.RowSolid(cfg.PlatformRow+1), "平台下第一行已清除")
	check(w.RowSolid(cfg.PlatformRow), "平台本身未受影响")
	check(!w.Dig(cfg.WorldCenterX(), feetY), "同一落点重复挖掘是空操作")
	// 触发点80与81相差1像素，加一格高后都落在已挖除的第6行
	check(!w.Dig(cfg.WorldCenterX(), 80), "触发点80定位到已挖除的行")
	check(!w.Dig(cfg.WorldCenterX(), 81), "触发点81定位到同一行")
	check(w.Dig(cfg.WorldCenterX(), 98), "触发点下移一格带后挖掉第7行")

	log.Println("[4] 前沿单调")
	frontier := w.Frontier()
	w.Step(frameTime, 0)
	check(w.Frontier() == frontier, "相机不动时前沿不动")
	w.Step(frameTime, 500)
	check(w.Frontier() == 500+float64(cfg.GenerateAheadTiles)*cfg.TileSize, "相机下行时前沿跟进")
	check(!w.RowSolid(6) && !w.RowSolid(7), "已挖除的行越过前沿后也不重生")
	check(w.RowCleared(6) && w.RowCleared(7) && !w.RowCleared(8), "已挖除集合只记录真正挖过的行")

	log.Println("[5] 占位检查")
	em := w.EntityManager()
	// 探测前沿之外的行，那里肯定还没有生成内容
	probeX := utils.CellCenterX(3, cfg.TileSize)
	probeY := utils.RowCenterY(60, cfg.TileSize)
	freeBefore := !w.Occupied(probeX, probeY, cfg.OccupancyRadius)
	entities.NewBoulderEntity(em, cfg, probeX, 60)
	check(freeBefore, "放置前目标格空闲")
	check(w.Occupied(probeX, probeY, cfg.OccupancyRadius), "放置后目标格占用")

	log.Println("[6] 坠落")
	boulder := entities.NewBoulderEntity(em, cfg, utils.CellCenterX(9, cfg.TileSize), 8)
	check(w.Dig(cfg.WorldCenterX(), utils.RowColliderTopY(7, cfg.TileSize, cfg.ColliderHeight)), "挖掉支撑行")
	for i := 0; i < 300; i++ {
		w.Step(frameTime, 500)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, boulder)
	box, _ := ecs.GetComponent[*components.CollisionComponent](em, boulder)
	landed := pos.Y + box.OffsetY + box.Height/2
	check(landed == utils.RowColliderTopY(9, cfg.TileSize, cfg.ColliderHeight), "巨石落到下一实心行")

	log.Println("[7] 固定种子可复现")
	counts := contentCounts(w)
	replay := game.NewWorld(cfg, nil)
	replay.Step(frameTime, 0)
	replay.Dig(cfg.WorldCenterX(), feetY)
	replay.Dig(cfg.WorldCenterX(), 98)
	replay.Step(frameTime, 0)
	replay.Step(frameTime, 500)
	check(contentCounts(replay)[components.BehaviorBoulder] == counts[components.BehaviorBoulder]-2,
		"相同种子生成相同地形内容")

	log.Println("[8] 粒子管线")
	catalog, err := particle.LoadEmbeddedCatalog()
	if err != nil {
		log.Fatalf("failed to load embedded effect catalog: %v", err)
	}
	engineKeys := []string{"row_burst", "explosion_burst", "boulder_crumble", "enemy_pop", "spike_break", "coin_sparkle"}
	allKnown := true
	for _, key := range engineKeys {
		if _, ok := catalog.Effect(key); !ok {
			allKnown = false
		}
	}
	check(allKnown, "引擎触发的效果键全部在目录中")

	pipelineDispatcher := events.NewDispatcher()
	router := particle.NewRouter(catalog, pipelineDispatcher, rand.New(rand.NewSource(*seed)))
	var effectEvents []events.EffectTriggeredEvent
	pipelineDispatcher.Subscribe(events.EventEffectTriggered, func(ev events.Event) {
		effectEvents = append(effectEvents, ev.(events.EffectTriggeredEvent))
	})

	pipeline := systems.NewTerrainSystem(ecs.NewEntityManager(), cfg, pipelineDispatcher, router, rand.New(rand.NewSource(*seed)))
	pipeline.GenerateRow(utils.RowTopY(8, cfg.TileSize), false)
	pipeline.ClearRowAt(utils.RowCenterY(8, cfg.TileSize))

	bursts := 0
	paramsOK := true
	for _, ev := range effectEvents {
		if ev.Key != "row_burst" {
			continue
		}
		bursts++
		if ev.Params["width"] != cfg.WorldWidth() {
			paramsOK = false
		}
		if count := ev.Params["count"]; count < 10 || count > 16 {
			paramsOK = false
		}
	}
	check(bursts == 2, "挖行经路由器发布两次全宽爆裂事件")
	check(paramsOK, "爆裂参数按目录采样且透传行宽")

	published := len(effectEvents)
	router.TriggerEffect("no_such_effect", 0, 0, nil)
	check(len(effectEvents) == published, "未知效果键被路由器丢弃")

	if failures > 0 {
		log.Printf("========== ❌ %d 项检查失败 ==========", failures)
		os.Exit(1)
	}
	log.Println("========== ✅ 地形生成验证全部通过 ==========")
}

func contentCounts(w *game.World) map[components.BehaviorType]int {
	counts := make(map[components.BehaviorType]int)
	for _, id := range ecs.GetEntitiesWith1[*components.BehaviorComponent](w.EntityManager()) {
		if !w.EntityManager().Alive(id) {
			continue
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](w.EntityManager(), id)
		counts[behavior.Type]++
	}
	return counts
}
