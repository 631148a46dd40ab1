package java

import "github.com/CodMac/go-treesitter-uml/handle"

// TypeDecl 是第一阶段从语法树中摘出的类型声明。
// 类型名保持源码书写形式，限定名解析留给第二阶段。
type TypeDecl struct {
	Name          string
	QualifiedName string
	Enclosing     string
	Kind          handle.Kind
	Modifiers     handle.Modifier
	Anonymous     bool
	Local         bool

	SuperClass     string
	Interfaces     []string
	TypeParameters []string

	Fields        []*FieldDecl
	Constructors  []*ExecutableDecl
	Methods       []*ExecutableDecl
	EnumConstants []string

	Location *handle.Location
}

type FieldDecl struct {
	Name      string
	Modifiers handle.Modifier
	TypeText  string
	Ownership handle.Ownership
}

type ParamDecl struct {
	Name     string
	TypeText string
}

type ExecutableDecl struct {
	Name           string
	Modifiers      handle.Modifier
	Params         []ParamDecl
	TypeParameters []string
}

func (d *TypeDecl) field(name string) *FieldDecl {
	for _, f := range d.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (d *TypeDecl) hasMethod(name string, params int) bool {
	for _, m := range d.Methods {
		if m.Name == name && len(m.Params) == params {
			return true
		}
	}
	return false
}

func (d *TypeDecl) hasConstructor(params int) bool {
	for _, c := range d.Constructors {
		if len(c.Params) == params {
			return true
		}
	}
	return false
}

// Declarations 取出 Collector 写入 FileContext.Payload 的声明列表
func Declarations(payload interface{}) []*TypeDecl {
	decls, _ := payload.([]*TypeDecl)
	return decls
}
