package config

import "arcana/pkg/config"

func init() {
	config.Add("jwt", func() map[string]interface{} {
		return map[string]interface{}{

			// 签名密钥，生产环境必须修改
			"secret": config.Env("JWT_SECRET", "change-this-secret"),

			// 过期时间，单位是小时，默认 7 天
			"expire_time": config.Env("JWT_EXPIRE_TIME", 24*7),
		}
	})
}
