package components

// CollisionComponent 定义实体的碰撞检测边界框
// 占位检查和爆炸判定都以边界框中心（实体位置+偏移）为基准点
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体位置的Y偏移量（像素），正值向下偏移
}
