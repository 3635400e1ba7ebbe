package components

// VelocityComponent 存储实体的速度向量
// 由巡逻、坠落等物理类系统每帧积分到 PositionComponent 上
type VelocityComponent struct {
	VX float64 // 水平速度（像素/秒），正值向右
	VY float64 // 垂直速度（像素/秒），正值向下
}
