package game

import (
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/events"
)

// RunState 一局挖掘的运行时统计
//
// 由世界持有，通过订阅引擎事件自动累计，不参与任何模拟决策。
type RunState struct {
	rowsCleared       int
	deepestClearedRow int
	enemiesKilled     int
	bouldersShattered int
	elapsed           float64
}

// NewRunState 创建空的运行时统计
func NewRunState() *RunState {
	return &RunState{deepestClearedRow: -1}
}

// Watch 订阅行清除与实体销毁事件，自动累计统计量
func (s *RunState) Watch(dispatcher *events.Dispatcher) {
	dispatcher.Subscribe(events.EventRowCleared, func(ev events.Event) {
		cleared, ok := ev.(events.RowClearedEvent)
		if !ok {
			return
		}
		s.rowsCleared++
		if cleared.RowIndex > s.deepestClearedRow {
			s.deepestClearedRow = cleared.RowIndex
		}
	})
	dispatcher.Subscribe(events.EventEntityDestroyed, func(ev events.Event) {
		destroyed, ok := ev.(events.EntityDestroyedEvent)
		if !ok {
			return
		}
		switch destroyed.Behavior {
		case components.BehaviorEnemy:
			s.enemiesKilled++
		case components.BehaviorBoulder:
			s.bouldersShattered++
		}
	})
}

// Tick 累计本局已运行的时间
func (s *RunState) Tick(deltaTime float64) {
	if deltaTime > 0 {
		s.elapsed += deltaTime
	}
}

// RowsCleared 返回累计挖除的行数
func (s *RunState) RowsCleared() int {
	return s.rowsCleared
}

// DeepestClearedRow 返回挖到过的最深行号，未挖过任何行时为 -1
func (s *RunState) DeepestClearedRow() int {
	return s.deepestClearedRow
}

// EnemiesKilled 返回累计消灭的敌人数
func (s *RunState) EnemiesKilled() int {
	return s.enemiesKilled
}

// BouldersShattered 返回累计炸碎的巨石数
func (s *RunState) BouldersShattered() int {
	return s.bouldersShattered
}

// Elapsed 返回本局累计运行时间（秒）
func (s *RunState) Elapsed() float64 {
	return s.elapsed
}
