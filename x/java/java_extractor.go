package java

import (
	"regexp"
	"strings"

	"github.com/CodMac/go-treesitter-uml/core"
	"github.com/CodMac/go-treesitter-uml/handle"
	"github.com/cockroachdb/errors"
)

// Extractor 把第一阶段的声明链接为 handle.TypeHandle：
// 父类、接口、字段与参数类型全部解析为限定名。
type Extractor struct{}

func NewJavaExtractor() *Extractor {
	return &Extractor{}
}

var (
	typeNamePattern   = regexp.MustCompile(`[A-Za-z_$][\w$]*(?:\s*\.\s*[A-Za-z_$][\w$]*)*`)
	annotationPattern = regexp.MustCompile(`@[\w.$]+(?:\([^)]*\))?\s*`)
)

func (e *Extractor) Extract(fc *core.FileContext, gc *core.GlobalContext) ([]handle.TypeHandle, error) {
	if fc == nil {
		return nil, errors.New("nil file context")
	}
	decls := Declarations(fc.Payload)
	byQN := make(map[string]*TypeDecl, len(decls))
	for _, d := range decls {
		byQN[d.QualifiedName] = d
	}

	handles := make([]handle.TypeHandle, 0, len(decls))
	for _, d := range decls {
		l := &linker{fc: fc, gc: gc, decl: d, typeParams: make(map[string]bool)}
		// 外层类型的类型参数在内部可见
		for cur := d; cur != nil; cur = byQN[cur.Enclosing] {
			for _, tp := range cur.TypeParameters {
				l.typeParams[tp] = true
			}
		}
		handles = append(handles, l.link())
	}
	return handles, nil
}

type linker struct {
	fc         *core.FileContext
	gc         *core.GlobalContext
	decl       *TypeDecl
	typeParams map[string]bool
}

func (l *linker) link() *handle.Type {
	d := l.decl
	t := &handle.Type{
		QualifiedName: d.QualifiedName,
		Simple:        d.Name,
		Package:       l.fc.PackageName,
		Kind:          d.Kind,
		Mods:          d.Modifiers,
		Anonymous:     d.Anonymous,
		Local:         d.Local,
		Enclosing:     d.Enclosing,
		Constants:     d.EnumConstants,
		Loc:           d.Location,
	}
	t.Super = l.superclass()
	for _, iface := range d.Interfaces {
		t.Ifaces = append(t.Ifaces, l.resolveRef(iface, nil).Raw)
	}
	for _, f := range d.Fields {
		t.FieldDecls = append(t.FieldDecls, handle.Field{
			Name:      f.Name,
			Modifiers: f.Modifiers,
			Type:      l.resolveRef(f.TypeText, nil),
			Ownership: f.Ownership,
		})
	}
	for _, c := range d.Constructors {
		t.CtorDecls = append(t.CtorDecls, l.executable(c))
	}
	for _, m := range d.Methods {
		t.MethodDecls = append(t.MethodDecls, l.executable(m))
	}
	return t
}

// superclass 与 Class.getSuperclass() 一致：接口没有父类，未声明 extends 时为隐式根类型
func (l *linker) superclass() string {
	d := l.decl
	switch d.Kind {
	case handle.KindInterface, handle.KindAnnotation:
		return ""
	case handle.KindEnum:
		return "java.lang.Enum"
	case handle.KindRecord:
		return "java.lang.Record"
	}
	if d.SuperClass == "" {
		return "java.lang.Object"
	}
	return l.resolveRef(d.SuperClass, nil).Raw
}

func (l *linker) executable(e *ExecutableDecl) handle.Executable {
	var local map[string]bool
	if len(e.TypeParameters) > 0 {
		local = make(map[string]bool, len(e.TypeParameters))
		for _, tp := range e.TypeParameters {
			local[tp] = true
		}
	}
	out := handle.Executable{Name: e.Name, Modifiers: e.Modifiers}
	for _, p := range e.Params {
		out.Parameters = append(out.Parameters, handle.Parameter{Name: p.Name, Type: l.resolveRef(p.TypeText, local)})
	}
	return out
}

// resolveRef 把类型文本中的每个类型名替换为限定名后再拆解
func (l *linker) resolveRef(text string, local map[string]bool) handle.TypeRef {
	text = strings.TrimSpace(annotationPattern.ReplaceAllString(text, ""))
	resolved := typeNamePattern.ReplaceAllStringFunc(text, func(name string) string {
		name = strings.Join(strings.Fields(name), "")
		return l.resolveName(name, local)
	})
	return handle.ParseTypeRef(resolved)
}

func (l *linker) resolveName(name string, local map[string]bool) string {
	switch {
	case name == "extends" || name == "super":
		return name
	case primitiveTypes[name], l.typeParams[name], local[name]:
		return name
	}
	scope := l.decl.QualifiedName
	if l.decl.Anonymous || l.decl.Local {
		scope = l.decl.Enclosing
	}
	if defs := l.gc.ResolveSymbol(l.fc, scope, name); len(defs) > 0 {
		return defs[0].QualifiedName
	}
	return name
}
