package components

// HealthComponent 存储实体的生命值信息
//
// 所有由地形生成器放置的实体（巨石、敌人、尖刺、金币）都携带此组件，
// 统一通过伤害接口结算：生命值降到0即标记删除。
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Dead 判断实体是否已死亡（生命值耗尽）
func (h *HealthComponent) Dead() bool {
	return h.CurrentHealth <= 0
}
