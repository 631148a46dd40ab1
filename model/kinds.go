package model

import "github.com/CodMac/go-treesitter-uml/handle"

// --- 类型种类 (Domain Class Types) ---

// ClassType 是领域类的种类，取值封闭
type ClassType int

const (
	Class ClassType = iota
	Interface
	Enum
	Annotation
)

func (t ClassType) String() string {
	switch t {
	case Interface:
		return "INTERFACE"
	case Enum:
		return "ENUM"
	case Annotation:
		return "ANNOTATION"
	default:
		return "CLASS"
	}
}

func (t ClassType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// classTypeOf 按优先级映射：注解 > 枚举 > 接口 > 类 (注解类型同时带有 INTERFACE 位)
func classTypeOf(mods handle.Modifier) ClassType {
	switch {
	case mods&handle.Annotation != 0:
		return Annotation
	case mods&handle.Enum != 0:
		return Enum
	case mods&handle.Interface != 0:
		return Interface
	default:
		return Class
	}
}

// --- 可见性 (Visibility) ---

type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
	Default
)

// VisibilityOf 按 public > protected > private > default 的顺序取第一个命中的修饰符
func VisibilityOf(mods handle.Modifier) Visibility {
	switch {
	case mods.IsPublic():
		return Public
	case mods.IsProtected():
		return Protected
	case mods.IsPrivate():
		return Private
	default:
		return Default
	}
}

// Symbol 返回 UML 可见性符号
func (v Visibility) Symbol() string {
	switch v {
	case Public:
		return "+"
	case Protected:
		return "#"
	case Private:
		return "-"
	default:
		return "~"
	}
}

func (v Visibility) String() string { return v.Symbol() }
