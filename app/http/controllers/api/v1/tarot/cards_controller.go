// Package tarot 牌库与解读相关的控制器
package tarot

import (
	v1 "arcana/app/http/controllers/api/v1"
	"arcana/app/services"
	"arcana/pkg/response"
	"arcana/pkg/tarot"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// CardsController 牌库浏览与随机抽牌
type CardsController struct {
	v1.BaseAPIController
	readings *services.ReadingService
}

func NewCardsController(readings *services.ReadingService) *CardsController {
	return &CardsController{readings: readings}
}

// Index 全部牌；?suit= 按花色过滤，?q=&language= 按名称搜索
func (cc *CardsController) Index(c *gin.Context) {
	catalog := cc.readings.Catalog()

	var cards []tarot.Card
	switch {
	case c.Query("q") != "":
		cards = catalog.Search(c.Query("q"), tarot.ParseLanguage(c.Query("language")))
	case c.Query("suit") != "":
		cards = catalog.BySuit(tarot.Suit(c.Query("suit")))
	default:
		cards = catalog.All()
	}
	if cards == nil {
		cards = []tarot.Card{}
	}

	response.Data(c, gin.H{
		"cards": cards,
		"total": len(cards),
	})
}

// Random 随机抽取 3 张牌，?spreadType= 决定位置名称
func (cc *CardsController) Random(c *gin.Context) {
	cards, err := cc.readings.Draw(tarot.SpreadType(c.Query("spreadType")))
	if err != nil {
		cc.Error(c, err)
		return
	}
	response.Data(c, gin.H{"cards": cards})
}

// Show 单张牌
func (cc *CardsController) Show(c *gin.Context) {
	id, err := cast.ToIntE(c.Param("id"))
	if err != nil {
		response.Abort400(c, "card id must be a number")
		return
	}

	card, err := cc.readings.Catalog().ByID(id)
	if err != nil {
		cc.Error(c, err)
		return
	}
	response.Data(c, gin.H{"card": card})
}
