// Package tarot 塔罗牌核心逻辑：牌库、抽牌与提示词构建
package tarot

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	// ErrInvalidArgument 请求参数不合法（牌数错误、缺少问题、超过牌库大小）
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound 牌库中不存在该卡牌
	ErrNotFound = errors.New("not found")
)

// Suit 花色
type Suit string

const (
	SuitMajorArcana Suit = "Major Arcana"
	SuitCups        Suit = "Cups"
	SuitSwords      Suit = "Swords"
	SuitWands       Suit = "Wands"
	SuitPentacles   Suit = "Pentacles"
)

// Suits 牌库中花色的固定顺序
var Suits = []Suit{SuitMajorArcana, SuitCups, SuitSwords, SuitWands, SuitPentacles}

// SpreadType 牌阵类型
type SpreadType string

const (
	SpreadTemporal SpreadType = "temporal" // 过去 / 现在 / 未来
	SpreadQuestion SpreadType = "question" // 针对具体问题
)

// ParseSpreadType 解析牌阵类型，空值默认为 temporal
func ParseSpreadType(s string) SpreadType {
	if s == "" {
		return SpreadTemporal
	}
	return SpreadType(s)
}

// Language 解读语言
type Language string

const (
	LanguageUk Language = "uk"
	LanguageEn Language = "en"
)

// ParseLanguage 解析语言，空值默认为乌克兰语
func ParseLanguage(s string) Language {
	if s == "" {
		return LanguageUk
	}
	return Language(s)
}

// Card 牌库中的一张牌，只读
type Card struct {
	ID                int      `json:"id" toml:"id"`
	Name              string   `json:"name" toml:"name"`
	NameUk            string   `json:"name_uk" toml:"name_uk"`
	Suit              Suit     `json:"suit" toml:"suit"`
	Number            int      `json:"number" toml:"number"`
	MeaningUpright    string   `json:"meaning_upright" toml:"meaning_upright"`
	MeaningUprightUk  string   `json:"meaning_upright_uk" toml:"meaning_upright_uk"`
	MeaningReversed   string   `json:"meaning_reversed" toml:"meaning_reversed"`
	MeaningReversedUk string   `json:"meaning_reversed_uk" toml:"meaning_reversed_uk"`
	Keywords          []string `json:"keywords" toml:"keywords"`
	KeywordsUk        []string `json:"keywords_uk" toml:"keywords_uk"`
}

// LocalizedName 乌克兰语名称，缺失时退回英文名
func (c Card) LocalizedName() string {
	if c.NameUk != "" {
		return c.NameUk
	}
	return c.Name
}

// DrawnCard 一次抽牌的结果：位置、正逆位以及对应的牌义
// 创建后不再修改
type DrawnCard struct {
	Card
	Position   string     `json:"position"`
	PositionUk string     `json:"position_uk"`
	Reversed   bool       `json:"reversed"`
	Meaning    string     `json:"meaning"`
	MeaningUk  string     `json:"meaning_uk"`
	SpreadType SpreadType `json:"spread_type,omitempty"`
}

// Selection 客户端选中的牌。Reversed 为 nil 时由服务端掷出正逆位
type Selection struct {
	ID       int   `json:"id"`
	Reversed *bool `json:"reversed,omitempty"`
}

// UnmarshalJSON 同时接受裸 id（如 12）与 {"id": 12, "reversed": true} 两种写法
func (s *Selection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '{' {
		var id int
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*s = Selection{ID: id}
		return nil
	}

	type plain Selection
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Selection(p)
	return nil
}

// newDrawnCard 根据正逆位确定牌义
func newDrawnCard(card Card, position, positionUk string, reversed bool) DrawnCard {
	dc := DrawnCard{
		Card:       card,
		Position:   position,
		PositionUk: positionUk,
		Reversed:   reversed,
		Meaning:    card.MeaningUpright,
		MeaningUk:  card.MeaningUprightUk,
	}
	if reversed {
		dc.Meaning = card.MeaningReversed
		dc.MeaningUk = card.MeaningReversedUk
	}
	return dc
}
