// Package handle 定义了类型句柄 (TypeHandle) 的统一查询接口。
//
// 句柄由外部的类型定位器 (如 x/java 基于 tree-sitter 的实现，或 YAML 快照) 产生，
// 领域模型只通过这里的接口读取类型元数据。
package handle

// Kind 是类型声明的种类
type Kind string

const (
	KindClass      Kind = "class"
	KindInterface  Kind = "interface"
	KindEnum       Kind = "enum"
	KindAnnotation Kind = "annotation"
	KindRecord     Kind = "record"
)

// Bits 返回该种类在 JVM access_flags 中隐含的修饰符位
func (k Kind) Bits() Modifier {
	switch k {
	case KindInterface:
		return Interface | Abstract
	case KindAnnotation:
		return Interface | Annotation | Abstract
	case KindEnum:
		return Enum
	case KindRecord:
		return Final
	default:
		return 0
	}
}

// Ownership 描述字段值的生命周期归属
type Ownership string

const (
	OwnershipUnknown  Ownership = ""
	OwnershipOwned    Ownership = "owned"    // 在声明类内部构造 (new)
	OwnershipInjected Ownership = "injected" // 由构造器/方法参数传入，声明类内没有构造点
)

// Location 描述了类型声明在源码中的位置
type Location struct {
	FilePath    string `json:"FilePath" yaml:"file"`
	StartLine   int    `json:"StartLine" yaml:"start_line"`
	EndLine     int    `json:"EndLine" yaml:"end_line"`
	StartColumn int    `json:"StartColumn" yaml:"start_column,omitempty"`
	EndColumn   int    `json:"EndColumn" yaml:"end_column,omitempty"`
}

// TypeHandle 是领域模型构建所需的全部查询能力
type TypeHandle interface {
	// Name 返回完整限定名，嵌套类型以 "." 连接 (e.g. com.example.Outer.Inner)
	Name() string
	SimpleName() string
	PackageName() string
	// Modifiers 包含访问修饰符以及 INTERFACE / ANNOTATION / ENUM 种类位
	Modifiers() Modifier
	IsAnonymous() bool
	IsLocal() bool
	// EnclosingType 返回直接外层类型的限定名，顶级类型返回 ""
	EnclosingType() string
	// Superclass 返回直接父类限定名，没有显式父类时返回 ""
	Superclass() string
	Interfaces() []string
	Fields() []Field
	Constructors() []Executable
	Methods() []Executable
	EnumConstants() []string
	Location() *Location
}

// Field 是声明字段的快照
type Field struct {
	Name      string    `yaml:"name"`
	Modifiers Modifier  `yaml:"modifiers,omitempty"`
	Type      TypeRef   `yaml:"type"`
	Ownership Ownership `yaml:"ownership,omitempty"`
}

// Parameter 的 Name 为空表示参数名不可恢复
type Parameter struct {
	Name string  `yaml:"name,omitempty"`
	Type TypeRef `yaml:"type"`
}

// Executable 是构造器或方法的快照
type Executable struct {
	Name       string      `yaml:"name"`
	Modifiers  Modifier    `yaml:"modifiers,omitempty"`
	Parameters []Parameter `yaml:"parameters,omitempty"`
}

// ParameterNames 仅在全部参数名可恢复时返回 ok=true
func (e Executable) ParameterNames() ([]string, bool) {
	names := make([]string, 0, len(e.Parameters))
	for _, p := range e.Parameters {
		if p.Name == "" {
			return nil, false
		}
		names = append(names, p.Name)
	}
	return names, true
}
