// Package user 存放用户 Model 相关逻辑
package user

import (
	"arcana/app/models"
	"arcana/pkg/hash"

	"gorm.io/gorm"
)

// User 用户模型
type User struct {
	models.BaseModel

	Email             string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username          string `gorm:"type:varchar(50)" json:"username"`
	Password          string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	PreferredLanguage string `gorm:"type:varchar(5);default:uk" json:"preferred_language"`

	models.CommonTimestampsField
}

// TableName 表名
func (User) TableName() string {
	return "users"
}

// BeforeSave GORM 的模型钩子，在创建和更新模型前调用
func (u *User) BeforeSave(tx *gorm.DB) error {
	if !hash.BcryptIsHashed(u.Password) {
		u.Password = hash.BcryptHash(u.Password)
	}
	return nil
}

// ComparePassword 密码是否正确
func (u *User) ComparePassword(password string) bool {
	return hash.BcryptCheck(password, u.Password)
}
