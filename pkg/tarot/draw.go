package tarot

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// ReversedProbability 每张牌被抽为逆位的概率
const ReversedProbability = 0.33

// SelectionSize 解读与保存时要求的牌数
const SelectionSize = 3

// Rand 随机数来源，测试中注入固定种子的实现
type Rand interface {
	// IntN 返回 [0, n) 内的随机整数
	IntN(n int) int
	// Float64 返回 [0.0, 1.0) 内的随机浮点数
	Float64() float64
}

// globalRand 使用 math/rand/v2 的全局函数，可并发调用
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// GlobalRand 生产环境使用的随机数来源
var GlobalRand Rand = globalRand{}

var spreadPositions = map[SpreadType][2][]string{
	SpreadTemporal: {
		{"past", "present", "future"},
		{"минуле", "теперішнє", "майбутнє"},
	},
	SpreadQuestion: {
		{"card_1", "card_2", "card_3"},
		{"карта_1", "карта_2", "карта_3"},
	},
}

// positionFor 返回第 i 张牌在牌阵中的位置，未知牌阵或超出长度时使用 position_{i+1}
func positionFor(spread SpreadType, i int) (string, string) {
	if p, ok := spreadPositions[spread]; ok && i < len(p[0]) {
		return p[0][i], p[1][i]
	}
	n := strconv.Itoa(i + 1)
	return "position_" + n, "позиція_" + n
}

// Drawer 抽牌引擎，只读访问牌库，可并发使用（前提是 Rand 实现并发安全）
type Drawer struct {
	catalog *Catalog
	rng     Rand
}

// NewDrawer 创建抽牌引擎，rng 为 nil 时使用 GlobalRand
func NewDrawer(catalog *Catalog, rng Rand) *Drawer {
	if rng == nil {
		rng = GlobalRand
	}
	return &Drawer{catalog: catalog, rng: rng}
}

// Catalog 返回抽牌引擎使用的牌库
func (d *Drawer) Catalog() *Catalog {
	return d.catalog
}

// Draw 从牌库中不放回地随机抽取 count 张牌
func (d *Drawer) Draw(count int, spread SpreadType) ([]DrawnCard, error) {
	size := d.catalog.Size()
	if count < 0 || count > size {
		return nil, fmt.Errorf("%w: cannot draw %d cards from deck of %d", ErrInvalidArgument, count, size)
	}

	// Fisher-Yates 洗牌，在副本上进行
	deck := d.catalog.All()
	for i := len(deck) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	cards := make([]DrawnCard, count)
	for i := 0; i < count; i++ {
		position, positionUk := positionFor(spread, i)
		cards[i] = newDrawnCard(deck[i], position, positionUk, d.rollReversed())
		cards[i].SpreadType = spread
	}
	return cards, nil
}

// ResolveSelection 将客户端选中的 3 张牌还原为 DrawnCard
// 携带 reversed 的选择按原样使用，裸 id 重新掷出正逆位
func (d *Drawer) ResolveSelection(selections []Selection, spread SpreadType) ([]DrawnCard, error) {
	if len(selections) != SelectionSize {
		return nil, fmt.Errorf("%w: exactly %d cards are required, got %d", ErrInvalidArgument, SelectionSize, len(selections))
	}
	if spread == "" {
		spread = SpreadTemporal
	}

	cards := make([]DrawnCard, len(selections))
	for i, sel := range selections {
		card, err := d.catalog.ByID(sel.ID)
		if err != nil {
			return nil, err
		}

		var reversed bool
		if sel.Reversed != nil {
			reversed = *sel.Reversed
		} else {
			reversed = d.rollReversed()
		}

		position, positionUk := positionFor(spread, i)
		cards[i] = newDrawnCard(card, position, positionUk, reversed)
	}
	return cards, nil
}

func (d *Drawer) rollReversed() bool {
	return d.rng.Float64() < ReversedProbability
}
