package components

// BehaviorType 定义实体的行为类型
// 地形生成器按此类型区分放置的内容，占位检查和爆炸结算按此类型筛选实体
type BehaviorType int

const (
	// BehaviorBoulder 巨石：静态障碍物，可被爆炸逐步破坏
	BehaviorBoulder BehaviorType = iota
	// BehaviorEnemy 敌人：在所在行上水平巡逻，速度随深度提升
	BehaviorEnemy
	// BehaviorSpike 尖刺：锚定在行顶面的固定危险物，所在行被挖掉时一并销毁
	BehaviorSpike
	// BehaviorCoin 金币：可收集物，不参与伤害结算但占据生成位
	BehaviorCoin
)

// String 返回行为类型的可读名称（用于日志）
func (t BehaviorType) String() string {
	switch t {
	case BehaviorBoulder:
		return "boulder"
	case BehaviorEnemy:
		return "enemy"
	case BehaviorSpike:
		return "spike"
	case BehaviorCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// BehaviorComponent 标识实体的行为类型
type BehaviorComponent struct {
	Type BehaviorType // 行为类型
}
