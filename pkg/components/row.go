package components

// RowColliderComponent 标识一个地形行的碰撞条实体
//
// 碰撞条是贴着行格带底部的全宽细条，实体站立在它的上沿。
// 每个实心行恰有一个碰撞条实体，由行仓库独占持有其句柄。
type RowColliderComponent struct {
	Index int // 行号（世界Y = Index × tileSize）
}

// RowVisualComponent 标识一个地形行的视觉条实体
//
// 视觉条覆盖整行格带，渲染层按它绘制泥土贴图。
// 引擎本身不渲染，只负责它与碰撞条同生共死。
type RowVisualComponent struct {
	Index int // 行号
}
