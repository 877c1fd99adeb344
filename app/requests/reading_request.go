package requests

import (
	"fmt"
	"strings"

	"arcana/app/services"
	"arcana/pkg/tarot"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// SpreadRequest 解读请求，cards 的元素可以是 id 数字或 {id, reversed}
type SpreadRequest struct {
	Cards      []tarot.Selection `json:"cards" valid:"cards"`
	Question   string            `json:"question" valid:"question"`
	Language   string            `json:"language" valid:"language"`
	SpreadType string            `json:"spreadType" valid:"spreadType"`
}

// ToService 转换为业务层参数
func (r SpreadRequest) ToService() services.SpreadRequest {
	return services.SpreadRequest{
		Cards:      r.Cards,
		Question:   r.Question,
		Language:   tarot.Language(r.Language),
		SpreadType: tarot.SpreadType(r.SpreadType),
	}
}

// ValidateSpread 解读与创建记录共用的验证
func ValidateSpread(data interface{}, c *gin.Context) map[string][]string {
	rules := govalidator.MapData{
		"cards":      []string{"required"},
		"question":   []string{"max:500"},
		"language":   []string{"in:uk,en"},
		"spreadType": []string{"in:temporal,question"},
	}
	messages := govalidator.MapData{
		"cards": []string{
			"required:cards are required",
		},
		"question": []string{
			"max:question must not exceed 500 characters",
		},
		"language": []string{
			"in:language must be one of uk, en",
		},
		"spreadType": []string{
			"in:spreadType must be one of temporal, question",
		},
	}

	errs := validate(data, rules, messages)

	req := data.(*SpreadRequest)
	if len(req.Cards) > 0 && len(req.Cards) != tarot.SelectionSize {
		errs = addError(errs, "cards", fmt.Sprintf("exactly %d cards are required", tarot.SelectionSize))
	}
	if req.SpreadType == string(tarot.SpreadQuestion) && strings.TrimSpace(req.Question) == "" {
		errs = addError(errs, "question", "question is required for question spreads")
	}

	return errs
}
