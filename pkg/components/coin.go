package components

// CoinComponent 存储金币的收集价值
type CoinComponent struct {
	Value int // 收集后获得的金币数
}
