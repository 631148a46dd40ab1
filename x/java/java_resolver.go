package java

import (
	"strings"

	"github.com/CodMac/go-treesitter-uml/core"
	"github.com/CodMac/go-treesitter-uml/handle"
)

type SymbolResolver struct{}

func NewJavaSymbolResolver() *SymbolResolver {
	return &SymbolResolver{}
}

func (j *SymbolResolver) BuildQualifiedName(parentQN, name string) string {
	if parentQN == "" || parentQN == "." {
		return name
	}
	return parentQN + "." + name
}

// RegisterPackage 记录包及其所有父包 (com, com.example, com.example.app)
func (j *SymbolResolver) RegisterPackage(gc *core.GlobalContext, packageName string) {
	if packageName == "" {
		return
	}
	parts := strings.Split(packageName, ".")
	for i := range parts {
		gc.Packages[strings.Join(parts[:i+1], ".")] = true
	}
}

// Resolve 依次尝试：限定名前缀解析、嵌套作用域、精确导入、同包、通配符导入、java.lang、直接 QN。
func (j *SymbolResolver) Resolve(gc *core.GlobalContext, fc *core.FileContext, scope, symbol string) []*core.DefinitionEntry {
	if symbol == "" || primitiveTypes[symbol] {
		return nil
	}

	// 1. 带点号的名称: Outer.Inner 或 com.example.Type
	if dot := strings.IndexByte(symbol, '.'); dot > 0 {
		head, rest := symbol[:dot], symbol[dot+1:]
		if defs := j.Resolve(gc, fc, scope, head); len(defs) > 0 {
			if nested := gc.Lookup(defs[0].QualifiedName + "." + rest); len(nested) > 0 {
				return nested
			}
		}
		if defs := gc.Lookup(symbol); len(defs) > 0 {
			return defs
		}
		return nil
	}

	// 2. 嵌套作用域：由内向外查找成员类型
	for s := scope; s != "" && s != fc.PackageName; s = parentScope(s) {
		if defs := gc.Lookup(j.BuildQualifiedName(s, symbol)); len(defs) > 0 {
			return defs
		}
	}

	// 3. 精确导入
	for _, imp := range fc.Imports[symbol] {
		if imp.IsStatic || imp.IsWildcard {
			continue
		}
		if defs := gc.Lookup(imp.RawImportPath); len(defs) > 0 {
			return defs
		}
		return []*core.DefinitionEntry{external(symbol, imp.RawImportPath)}
	}

	// 4. 同包
	if defs := gc.Lookup(j.BuildQualifiedName(fc.PackageName, symbol)); len(defs) > 0 {
		return defs
	}

	// 5. 通配符导入
	for _, imp := range fc.WildcardImports() {
		if imp.IsStatic {
			continue
		}
		base := strings.TrimSuffix(imp.RawImportPath, ".*")
		if defs := gc.Lookup(base + "." + symbol); len(defs) > 0 {
			return defs
		}
	}

	// 6. java.lang 隐式导入
	if javaLangTypes[symbol] {
		return []*core.DefinitionEntry{external(symbol, "java.lang."+symbol)}
	}

	// 7. 兜底：默认包或直接按 QN 查找
	return gc.Lookup(symbol)
}

func parentScope(qn string) string {
	if i := strings.LastIndexByte(qn, '.'); i >= 0 {
		return qn[:i]
	}
	return ""
}

func external(name, qn string) *core.DefinitionEntry {
	return &core.DefinitionEntry{Name: name, QualifiedName: qn, ParentQN: parentScope(qn), Kind: handle.KindClass, External: true}
}
