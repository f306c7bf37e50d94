// Package validate 表单字段校验的基础谓词
package validate

import "strings"

// NotBlank 字符串去除首尾空白后非空
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// NotNegative 数值不小于0
func NotNegative(n int) bool {
	return n >= 0
}
