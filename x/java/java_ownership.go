package java

import (
	"github.com/CodMac/go-treesitter-uml/handle"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// analyzeOwnership 推断字段值的归属：
//   - 字段初始值或类内任一赋值为 new 表达式 -> owned
//   - 否则，构造器/方法把参数 (或包装参数的调用结果) 赋给字段 -> injected
//
// 嵌套类与匿名类的类体不计入外层类。
func analyzeOwnership(st *fileState, body *sitter.Node, decl *TypeDecl) {
	if body == nil || len(decl.Fields) == 0 {
		return
	}

	owned := make(map[string]bool)
	injected := make(map[string]bool)

	var visitMembers func(b *sitter.Node)
	visitMembers = func(b *sitter.Node) {
		for i := uint(0); i < b.NamedChildCount(); i++ {
			member := b.NamedChild(i)
			switch member.Kind() {
			case nodeConstructorDecl, nodeMethodDecl:
				params := make(map[string]bool)
				for _, p := range st.parameters(member.ChildByFieldName("parameters")) {
					params[p.Name] = true
				}
				scanAssignments(st, member.ChildByFieldName("body"), params, decl, owned, injected)
			case nodeCompactCtorDecl:
				params := make(map[string]bool)
				for _, p := range recordParams(decl) {
					params[p.Name] = true
				}
				scanAssignments(st, member.ChildByFieldName("body"), params, decl, owned, injected)
			case nodeBlock, nodeStaticInit:
				scanAssignments(st, member, nil, decl, owned, injected)
			case nodeEnumBodyDecls:
				visitMembers(member)
			}
		}
	}
	visitMembers(body)

	for _, f := range decl.Fields {
		switch {
		case f.Ownership != handle.OwnershipUnknown:
		case owned[f.Name]:
			f.Ownership = handle.OwnershipOwned
		case injected[f.Name]:
			f.Ownership = handle.OwnershipInjected
		}
	}
}

func scanAssignments(st *fileState, body *sitter.Node, params map[string]bool, decl *TypeDecl, owned, injected map[string]bool) {
	if body == nil {
		return
	}
	sc := &assignmentScan{st: st, params: params, decl: decl, owned: owned, injected: injected}
	sc.visit(body, make(map[string]bool))
}

// scopeKinds 引入新的局部变量作用域
var scopeKinds = map[string]bool{
	nodeBlock:                      true,
	"for_statement":                true,
	"enhanced_for_statement":       true,
	"catch_clause":                 true,
	"lambda_expression":            true,
	"switch_block_statement_group": true,
	"try_with_resources_statement": true,
}

// assignmentScan 按语句顺序遍历方法体；局部变量只在声明之后、所在块之内遮蔽同名字段
type assignmentScan struct {
	st       *fileState
	params   map[string]bool
	decl     *TypeDecl
	owned    map[string]bool
	injected map[string]bool
}

func (sc *assignmentScan) visit(n *sitter.Node, locals map[string]bool) {
	kind := n.Kind()
	if kind == nodeClassBody || isTypeDeclaration(kind) {
		return
	}
	if scopeKinds[kind] {
		inner := make(map[string]bool, len(locals))
		for k := range locals {
			inner[k] = true
		}
		locals = inner
	}
	// 循环变量与 lambda 参数作用于整个语句
	switch kind {
	case "enhanced_for_statement":
		if name := n.ChildByFieldName("name"); name != nil {
			locals[sc.st.text(name)] = true
		}
	case "lambda_expression":
		sc.lambdaParams(n.ChildByFieldName("parameters"), locals)
	}

	if kind == nodeAssignment {
		sc.assignment(n, locals)
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		sc.visit(n.NamedChild(i), locals)
	}

	// 声明在初始值之后生效
	switch kind {
	case "local_variable_declaration":
		for i := uint(0); i < n.NamedChildCount(); i++ {
			if d := n.NamedChild(i); d.Kind() == nodeVarDeclarator {
				locals[sc.st.text(d.ChildByFieldName("name"))] = true
			}
		}
	case "catch_formal_parameter", "resource":
		if name := n.ChildByFieldName("name"); name != nil {
			locals[sc.st.text(name)] = true
		}
	}
}

func (sc *assignmentScan) lambdaParams(params *sitter.Node, locals map[string]bool) {
	if params == nil {
		return
	}
	if params.Kind() == nodeIdentifier {
		locals[sc.st.text(params)] = true
		return
	}
	for i := uint(0); i < params.NamedChildCount(); i++ {
		p := params.NamedChild(i)
		switch p.Kind() {
		case nodeIdentifier:
			locals[sc.st.text(p)] = true
		case "formal_parameter", "spread_parameter":
			if name := p.ChildByFieldName("name"); name != nil {
				locals[sc.st.text(name)] = true
			}
		}
	}
}

func (sc *assignmentScan) assignment(n *sitter.Node, locals map[string]bool) {
	name := assignedField(sc.st, n.ChildByFieldName("left"), sc.params, locals)
	if name == "" || sc.decl.field(name) == nil {
		return
	}
	switch right := unwrap(n.ChildByFieldName("right")); {
	case right == nil:
	case right.Kind() == nodeObjectCreation:
		sc.owned[name] = true
	case right.Kind() == nodeIdentifier && sc.params[sc.st.text(right)]:
		sc.injected[name] = true
	case right.Kind() == "method_invocation" && passesParameter(sc.st, right, sc.params):
		// this.repo = Objects.requireNonNull(repo)
		sc.injected[name] = true
	}
}

// assignedField 返回赋值左侧对应的字段名：this.f 或未被参数/局部变量遮蔽的 f
func assignedField(st *fileState, left *sitter.Node, params, locals map[string]bool) string {
	if left == nil {
		return ""
	}
	switch left.Kind() {
	case nodeIdentifier:
		name := st.text(left)
		if params[name] || locals[name] {
			return ""
		}
		return name
	case nodeFieldAccess:
		if obj := left.ChildByFieldName("object"); obj != nil && obj.Kind() == nodeThis {
			return st.text(left.ChildByFieldName("field"))
		}
	}
	return ""
}

func passesParameter(st *fileState, call *sitter.Node, params map[string]bool) bool {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return false
	}
	for i := uint(0); i < args.NamedChildCount(); i++ {
		if a := args.NamedChild(i); a.Kind() == nodeIdentifier && params[st.text(a)] {
			return true
		}
	}
	return false
}

// unwrap 去掉括号与类型转换
func unwrap(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Kind() {
		case "parenthesized_expression":
			n = n.NamedChild(0)
		case "cast_expression":
			n = n.ChildByFieldName("value")
		default:
			return n
		}
	}
	return nil
}
