package components

// PositionComponent 存储实体在世界坐标系中的位置
//
// 约定：X/Y 指实体的几何中心，单位为世界像素。
// 世界坐标原点在地图左上角，Y 轴向下为正（越深数值越大）。
type PositionComponent struct {
	X float64 // 中心X坐标（世界像素）
	Y float64 // 中心Y坐标（世界像素）
}
