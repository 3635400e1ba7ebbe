package events

import (
	"github.com/gonewx/digdown/pkg/components"
	"github.com/gonewx/digdown/pkg/ecs"
)

// EventType 标识事件类别
type EventType int

const (
	// EventRowCleared 行被挖除
	// 触发时机：行清除器实际移除了一个实心行（幂等空调用不触发）
	// 消费方：坠落系统重新评估支撑、运行统计、外部音效/镜头反馈
	EventRowCleared EventType = iota

	// EventEffectTriggered 装饰粒子效果请求
	// 触发时机：行清除、爆炸等地形事件需要视觉反馈时（即发即忘）
	// 消费方：外部粒子渲染系统；引擎不关心是否有人消费
	EventEffectTriggered

	// EventEntityDestroyed 实体因伤害死亡
	// 触发时机：伤害结算将实体生命值降到0并标记删除之后
	// 消费方：运行统计（击杀计数）、外部掉落/音效逻辑
	EventEntityDestroyed
)

// Event 是所有事件载荷的公共接口
type Event interface {
	Type() EventType
}

// RowClearedEvent 行被挖除的通知载荷
type RowClearedEvent struct {
	RowIndex int // 被挖除的行号
}

// Type 实现 Event 接口
func (RowClearedEvent) Type() EventType { return EventRowCleared }

// EffectTriggeredEvent 粒子效果请求载荷
type EffectTriggeredEvent struct {
	Key    string             // 效果键（对应效果目录中的条目）
	X      float64            // 触发位置X（世界像素）
	Y      float64            // 触发位置Y（世界像素）
	Params map[string]float64 // 本次触发的参数（粒子数、速度等，已按目录采样）
}

// Type 实现 Event 接口
func (EffectTriggeredEvent) Type() EventType { return EventEffectTriggered }

// EntityDestroyedEvent 实体死亡通知载荷
type EntityDestroyedEvent struct {
	Entity   ecs.EntityID            // 死亡实体ID（本帧末才会真正移除）
	Behavior components.BehaviorType // 实体行为类型
	X        float64                 // 死亡位置X
	Y        float64                 // 死亡位置Y
}

// Type 实现 Event 接口
func (EntityDestroyedEvent) Type() EventType { return EventEntityDestroyed }
