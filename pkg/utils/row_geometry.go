package utils

import "math"

// 行坐标换算工具
//
// 世界被切成等高的水平行格带：行 N 占据世界Y区间 [N×tileSize, (N+1)×tileSize)。
// 行碰撞条贴着格带底部，厚度 colliderHeight，实体站立在碰撞条上沿。

// RowIndexAtY 将世界Y坐标换算为所在行号
// 参数:
//   - worldY: 世界Y坐标（像素）
//   - tileSize: 格子边长（像素）
//
// 返回:
//   - 包含该Y坐标的行号（向下取整，负坐标得到负行号，由调用方做边界检查）
func RowIndexAtY(worldY, tileSize float64) int {
	return int(math.Floor(worldY / tileSize))
}

// RowTopY 返回行格带的顶边Y坐标
func RowTopY(index int, tileSize float64) float64 {
	return float64(index) * tileSize
}

// RowCenterY 返回行格带的垂直中心Y坐标
func RowCenterY(index int, tileSize float64) float64 {
	return RowTopY(index, tileSize) + tileSize/2
}

// RowBottomY 返回行格带的底边Y坐标（即下一行的顶边）
func RowBottomY(index int, tileSize float64) float64 {
	return RowTopY(index+1, tileSize)
}

// RowColliderTopY 返回行碰撞条的上沿Y坐标，站立实体的底边与其对齐
func RowColliderTopY(index int, tileSize, colliderHeight float64) float64 {
	return RowBottomY(index, tileSize) - colliderHeight
}

// CellCenterX 返回第 col 列格子的水平中心X坐标
func CellCenterX(col int, tileSize float64) float64 {
	return (float64(col) + 0.5) * tileSize
}

// RowSpanForRadius 返回半径 radius 的圆在垂直方向上最多覆盖到中心行上下各多少行
func RowSpanForRadius(radius, tileSize float64) int {
	return int(math.Ceil(radius / tileSize))
}
