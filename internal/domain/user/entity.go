package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. Username是登录与查找的业务唯一键（数据库UNIQUE索引保证）
// 2. Password保存bcrypt哈希值，不对外暴露
type User struct {
	ID        uint
	Username  string
	Password  string // bcrypt哈希值
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码，昵称为空时使用用户名
func NewUser(username, hashedPassword, nickname string) *User {
	if nickname == "" {
		nickname = username
	}
	now := time.Now()
	return &User{
		Username:  username,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
