package model

// Language 标识支持的源码语言
type Language string

const (
	LangJava Language = "java"
)

// Extension 返回该语言源文件的扩展名，未知语言返回 ""
func (l Language) Extension() string {
	switch l {
	case LangJava:
		return ".java"
	default:
		return ""
	}
}
