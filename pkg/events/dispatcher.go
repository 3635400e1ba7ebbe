package events

// Listener 事件监听回调，载荷需自行断言为具体事件类型
type Listener func(Event)

// Dispatcher 同步事件分发器
//
// 整个模拟是单线程逐帧推进的，事件在 Publish 调用内同步派发完毕，
// 没有队列也没有跨帧延迟。发布方不假设监听方的数量与身份；
// 监听回调内允许再次触发地形操作（重入由行仓库的成员检查保证安全）。
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher 创建一个空的事件分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe 注册某类事件的监听回调，按注册顺序派发
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	if d == nil || listener == nil {
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Publish 同步派发事件给所有已注册的监听者
//
// 派发期间新注册的监听者从下一次 Publish 开始生效，
// 避免遍历中追加导致的自递归放大。
func (d *Dispatcher) Publish(event Event) {
	if d == nil || event == nil {
		return
	}
	registered := d.listeners[event.Type()]
	if len(registered) == 0 {
		return
	}

	// 快照后派发，监听回调内的 Subscribe 不影响本轮
	snapshot := make([]Listener, len(registered))
	copy(snapshot, registered)
	for _, listener := range snapshot {
		listener(event)
	}
}

// ListenerCount 返回某类事件当前的监听者数量
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	if d == nil {
		return 0
	}
	return len(d.listeners[eventType])
}
