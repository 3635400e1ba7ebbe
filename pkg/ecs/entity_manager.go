package ecs

import "reflect"

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 这是整个世界模拟的唯一实体容器。地形行、巨石、敌人、尖刺、金币
// 都是其中的实体，系统之间只通过组件查询交互，不持有实体指针。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 延迟删除标记集合（帧末由 RemoveMarkedEntities 统一清理）
	destroyed map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
		destroyed:  make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{}, 4)
	return id
}

// DestroyEntity 标记实体待删除（不立即删除，重复标记是安全的）
//
// 删除延迟到帧末统一执行，保证同一帧内其他系统仍能安全遍历。
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists {
		return
	}
	em.destroyed[id] = struct{}{}
}

// MarkedForDestruction 检查实体是否已被标记删除
func (em *EntityManager) MarkedForDestruction(id EntityID) bool {
	_, marked := em.destroyed[id]
	return marked
}

// Alive 检查实体是否存在且未被标记删除
func (em *EntityManager) Alive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	return !em.MarkedForDestruction(id)
}

// AddComponent 为实体添加组件（同类型组件会被覆盖）
//
// 组件应以指针形式传入，系统通过同一指针类型查询并原地修改。
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
//
// 返回:
//   - interface{}: 组件实例（需调用方断言具体类型）
//   - bool: 是否找到
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体
//
// 返回本次实际清理的实体数量，供帧循环做统计日志。
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for id := range em.destroyed {
		if _, exists := em.components[id]; exists {
			delete(em.components, id)
			removed++
		}
		delete(em.destroyed, id)
	}
	return removed
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
//
// 参数:
//   - componentTypes: 需要同时具备的组件类型列表
//
// 返回:
//   - []EntityID: 满足条件的实体ID列表（遍历顺序不保证稳定）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// EntityCount 返回当前存活（含已标记删除但尚未清理）的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}
