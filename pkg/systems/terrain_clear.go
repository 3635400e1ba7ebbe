package systems

import (
	"log"

	"github.com/gonewx/digdown/internal/particle"
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/ecs"
	"github.com/gonewx/digdown/pkg/events"
	"github.com/gonewx/digdown/pkg/utils"
)

// ClearRowAt 挖除包含 worldY 的地形行
//
// 行不在仓库中（从未生成或已挖除）时返回 false，且不产生任何副作用。
// 成功时依次：移出仓库并记入已挖除集合、销毁碰撞条与视觉条、
// 清除锚定在该行顶面的尖刺、在被挖行与其上一行各触发一次全宽
// 粒子爆裂，最后发布行清除事件。重复调用同一行只有第一次生效。
func (s *TerrainSystem) ClearRowAt(worldY float64) bool {
	index := utils.RowIndexAtY(worldY, s.cfg.TileSize)
	handles, ok := s.rows[index]
	if !ok {
		return false
	}

	delete(s.rows, index)
	s.cleared.Put(index)
	s.em.DestroyEntity(handles.collider)
	s.em.DestroyEntity(handles.visual)

	removedSpikes := s.clearSpikesAbove(index)

	width := s.cfg.WorldWidth()
	centerX := s.cfg.WorldCenterX()
	s.effects.TriggerEffect(effectRowBurst, centerX, utils.RowCenterY(index, s.cfg.TileSize), particle.Params{"width": width})
	s.effects.TriggerEffect(effectRowBurst, centerX, utils.RowCenterY(index-1, s.cfg.TileSize), particle.Params{"width": width})

	s.dispatcher.Publish(events.RowClearedEvent{RowIndex: index})

	log.Printf("[TerrainSystem] row %d cleared, %d spikes removed", index, removedSpikes)
	return true
}

// clearSpikesAbove 清除锚定在被挖行顶面的尖刺
//
// 尖刺中心位于行顶之上半个身位，落在上一行的格带
// [rowTop - tileSize, rowTop) 内。只按中心Y判带，不跨带波及。
func (s *TerrainSystem) clearSpikesAbove(index int) int {
	bandTop := utils.RowTopY(index-1, s.cfg.TileSize)
	bandBottom := utils.RowTopY(index, s.cfg.TileSize)

	removed := 0
	for _, id := range ecs.GetEntitiesWith2[*components.BehaviorComponent, *components.PositionComponent](s.em) {
		if !s.em.Alive(id) {
			continue
		}
		behavior, _ := ecs.GetComponent[*components.BehaviorComponent](s.em, id)
		if behavior.Type != components.BehaviorSpike {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.Y >= bandTop && pos.Y < bandBottom {
			if ApplyDamage(s.em, s.dispatcher, s.effects, id, LethalDamage) {
				removed++
			}
		}
	}
	return removed
}
