package mysql

import (
	"time"
)

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:32;not null;comment:用户名"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string    `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
type CategoryModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel GORM图书模型
// 设计说明:
// 1. CategoryID可为NULL(分类删除后解除关联)
// 2. Publisher有索引,用于出版社筛选和去重查询
// 3. 图书采用物理删除,购物车明细随图书一起删除
type BookModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"index;size:200;not null;comment:书名"`
	CategoryID  *uint          `gorm:"index;comment:分类ID"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Description string         `gorm:"type:text;comment:图书描述"`
	Image       string         `gorm:"size:255;comment:封面文件名"`
	Status      string         `gorm:"size:32;comment:状态"`
	Publisher   string         `gorm:"index;size:100;comment:出版社"`
	Quantity    int            `gorm:"not null;default:0;comment:数量"`
	CreatedAt   time.Time      `gorm:"comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CartModel GORM购物车模型
// 与CartDetailModel是一对多关系
type CartModel struct {
	ID        uint              `gorm:"primaryKey"`
	UserID    uint              `gorm:"index;not null;comment:所属用户ID"`
	Details   []CartDetailModel `gorm:"foreignKey:CartID"`
	CreatedAt time.Time         `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (CartModel) TableName() string {
	return "carts"
}

// CartDetailModel GORM购物车明细模型
// (cart_id, book_id)唯一,加入同一本书时累加数量
type CartDetailModel struct {
	ID        uint      `gorm:"primaryKey"`
	CartID    uint      `gorm:"uniqueIndex:uk_cart_book;not null;comment:购物车ID"`
	BookID    uint      `gorm:"uniqueIndex:uk_cart_book;index;not null;comment:图书ID"`
	Quantity  int       `gorm:"not null;default:1;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartDetailModel) TableName() string {
	return "cart_details"
}
