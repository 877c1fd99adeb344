// Package config 存放程序所有的配置信息
package config

// Initialize 触发加载 config 包的所有 init 函数
func Initialize() {}
