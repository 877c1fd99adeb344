// Package reading 塔罗牌解读记录
package reading

import (
	"arcana/app/models"

	"gorm.io/gorm"
)

// Reading 塔罗牌解读记录模型
// UserID 与 SessionID 有且只有一个非空：登录用户使用 UserID，匿名访客使用 SessionID
type Reading struct {
	models.BaseModel

	UserID         *string `gorm:"type:varchar(36);index" json:"user_id"`
	SessionID      *string `gorm:"type:varchar(64);index" json:"session_id"`
	Cards          Cards   `gorm:"type:json" json:"cards"`
	Question       *string `gorm:"type:text" json:"question"`
	SpreadType     string  `gorm:"type:varchar(20);default:temporal" json:"spread_type"`
	Language       string  `gorm:"type:varchar(5);default:uk" json:"language"`
	Interpretation string  `gorm:"type:text" json:"interpretation"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Reading) TableName() string {
	return "readings"
}

// BeforeSave GORM 钩子
func (r *Reading) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}
