package components

// FallingComponent 标记实体处于坠落状态
//
// 当支撑实体的行被挖掉后，坠落系统为其打上此标记并开始重力积分，
// 落到下一个实心行的碰撞条上沿时移除标记。尖刺不会坠落。
type FallingComponent struct {
	StartY float64 // 开始坠落时的中心Y坐标（用于日志与坠落距离统计）
}
