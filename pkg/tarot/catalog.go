package tarot

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// DeckSize 完整塔罗牌库的牌数
const DeckSize = 78

//go:embed data/cards.toml
var cardsTOML string

type catalogFile struct {
	Cards []Card `toml:"cards"`
}

// Catalog 只读牌库，进程启动时加载一次，可并发读取
type Catalog struct {
	cards []Card
	index map[int]int
}

// LoadCatalog 解析内嵌的 cards.toml 并校验牌库完整性
func LoadCatalog() (*Catalog, error) {
	var file catalogFile
	if _, err := toml.Decode(cardsTOML, &file); err != nil {
		return nil, fmt.Errorf("error parsing cards.toml: %w", err)
	}
	return NewCatalog(file.Cards)
}

// NewCatalog 使用给定的牌构建牌库，id 必须唯一且为正数
func NewCatalog(cards []Card) (*Catalog, error) {
	c := &Catalog{
		cards: make([]Card, len(cards)),
		index: make(map[int]int, len(cards)),
	}
	copy(c.cards, cards)

	for i, card := range c.cards {
		if card.ID <= 0 {
			return nil, fmt.Errorf("card %q has non-positive id %d", card.Name, card.ID)
		}
		if _, dup := c.index[card.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %d", card.ID)
		}
		c.index[card.ID] = i
	}
	return c, nil
}

// Size 牌库中的牌数
func (c *Catalog) Size() int {
	return len(c.cards)
}

// All 按牌库顺序返回所有牌（副本）
func (c *Catalog) All() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// ByID 根据 id 获取牌
func (c *Catalog) ByID(id int) (Card, error) {
	i, ok := c.index[id]
	if !ok {
		return Card{}, fmt.Errorf("%w: card with id %d", ErrNotFound, id)
	}
	return c.cards[i], nil
}

// BySuit 按牌库顺序返回某一花色的牌
func (c *Catalog) BySuit(suit Suit) []Card {
	out := make([]Card, 0, 22)
	for _, card := range c.cards {
		if card.Suit == suit {
			out = append(out, card)
		}
	}
	return out
}

// Search 按名称搜索（不区分大小写的子串匹配）
// language 为 uk 时匹配乌克兰语名称，否则匹配英文名称
func (c *Catalog) Search(query string, language Language) []Card {
	q := strings.ToLower(query)
	out := make([]Card, 0)
	for _, card := range c.cards {
		name := card.Name
		if language == LanguageUk {
			name = card.NameUk
		}
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, card)
		}
	}
	return out
}
