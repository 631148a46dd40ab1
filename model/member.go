package model

import (
	"regexp"
	"strings"

	"github.com/CodMac/go-treesitter-uml/handle"
)

var packageSegment = regexp.MustCompile(`([a-zA-Z_$][a-zA-Z\d_$]*)\.`)

// CutPackages 去掉类型名中的所有包前缀: java.util.List<com.x.Part> -> List<Part>
func CutPackages(typeName string) string {
	return packageSegment.ReplaceAllString(typeName, "")
}

// DomainMember 是字段、构造器、方法的公共能力
type DomainMember interface {
	Visibility() Visibility
	IsStatic() bool
	IsAbstract() bool
}

type member struct {
	name      string
	modifiers handle.Modifier
}

func (m member) Name() string               { return m.name }
func (m member) Modifiers() handle.Modifier { return m.modifiers }
func (m member) Visibility() Visibility     { return VisibilityOf(m.modifiers) }
func (m member) IsStatic() bool             { return m.modifiers.IsStatic() }
func (m member) IsAbstract() bool           { return m.modifiers.IsAbstract() }

// DomainField 是领域类的一个声明字段
type DomainField struct {
	member
	typ       handle.TypeRef
	ownership handle.Ownership
}

func newDomainField(f handle.Field) *DomainField {
	return &DomainField{
		member:    member{name: f.Name, modifiers: f.Modifiers},
		typ:       f.Type,
		ownership: f.Ownership,
	}
}

func (f *DomainField) Type() handle.TypeRef        { return f.typ }
func (f *DomainField) Ownership() handle.Ownership { return f.ownership }

// UMLName 形如 "name : List<Part>"
func (f *DomainField) UMLName() string {
	return f.name + " : " + CutPackages(f.typ.Text)
}

// DomainExecutable 是构造器与方法的公共部分
type DomainExecutable struct {
	member
	params []handle.Parameter
}

func newDomainExecutable(name string, e handle.Executable) DomainExecutable {
	return DomainExecutable{
		member: member{name: name, modifiers: e.Modifiers},
		params: e.Parameters,
	}
}

func (e *DomainExecutable) Parameters() []handle.Parameter { return e.params }

// ParameterNamesKnown 报告是否全部参数名都可恢复
func (e *DomainExecutable) ParameterNamesKnown() bool {
	for _, p := range e.params {
		if p.Name == "" {
			return false
		}
	}
	return true
}

// UMLName 在 showNames 为真且参数名可恢复时输出 "name(a : A, b : B)"，否则 "name(A, B)"
func (e *DomainExecutable) UMLName(showNames bool) string {
	withNames := showNames && e.ParameterNamesKnown()

	var sb strings.Builder
	sb.WriteString(e.name)
	sb.WriteByte('(')
	for i, p := range e.params {
		if i > 0 {
			sb.WriteString(", ")
		}
		if withNames {
			sb.WriteString(p.Name)
			sb.WriteString(" : ")
		}
		sb.WriteString(CutPackages(p.Type.Text))
	}
	sb.WriteByte(')')
	return sb.String()
}

type DomainConstructor struct {
	DomainExecutable
}

type DomainMethod struct {
	DomainExecutable
}

var (
	_ DomainMember = (*DomainField)(nil)
	_ DomainMember = (*DomainConstructor)(nil)
	_ DomainMember = (*DomainMethod)(nil)
)
