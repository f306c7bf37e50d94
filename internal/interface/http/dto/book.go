package dto

// BookForm 新增/更新图书表单(multipart/form-data)
// 说明:
// 1. 不使用binding校验规则,更新时的字段校验由领域层完成并返回422
// 2. 封面通过image文件字段上传,不在此结构体中
type BookForm struct {
	Name        string `form:"name" example:"Go语言实战"`
	CategoryID  uint   `form:"category" example:"1"`
	Description string `form:"description" example:"这是一本关于Go语言的实战书籍"`
	Status      string `form:"status" example:"on_sale"`
	Publisher   string `form:"publisher" example:"人民邮电出版社"`
	Quantity    int    `form:"quantity" example:"100"`
}

// BookSearchQuery 图书搜索参数
type BookSearchQuery struct {
	Q string `form:"q" binding:"max=100" example:"Go"`
}
