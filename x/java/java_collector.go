package java

import (
	"strconv"
	"strings"

	"github.com/CodMac/go-treesitter-uml/core"
	"github.com/CodMac/go-treesitter-uml/handle"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Collector struct {
	resolver *SymbolResolver
}

func NewJavaCollector() *Collector {
	return &Collector{resolver: NewJavaSymbolResolver()}
}

// fileState 是单个文件收集过程中的临时状态
type fileState struct {
	fc     *core.FileContext
	src    []byte
	decls  []*TypeDecl
	counts map[string]int // 外层类型 -> 匿名/局部类计数
}

func (c *Collector) CollectDefinitions(rootNode *sitter.Node, filePath string, sourceBytes *[]byte) (*core.FileContext, error) {
	fc := core.NewFileContext(filePath)
	st := &fileState{fc: fc, src: *sourceBytes, counts: make(map[string]int)}

	// 1. 处理顶级声明 (Package & Imports)
	c.processTopLevelDeclarations(st, rootNode)

	// 2. 收集类型声明
	for i := uint(0); i < rootNode.NamedChildCount(); i++ {
		child := rootNode.NamedChild(i)
		if isTypeDeclaration(child.Kind()) {
			c.collectType(st, child, nil, false)
		}
	}

	fc.Payload = st.decls
	return fc, nil
}

func (c *Collector) processTopLevelDeclarations(st *fileState, root *sitter.Node) {
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		switch child.Kind() {
		case nodePackageDecl:
			for j := uint(0); j < child.NamedChildCount(); j++ {
				sub := child.NamedChild(j)
				if sub.Kind() == "scoped_identifier" || sub.Kind() == nodeIdentifier {
					st.fc.PackageName = st.text(sub)
					break
				}
			}
		case nodeImportDecl:
			c.handleImport(st, child)
		}
	}
}

func (c *Collector) handleImport(st *fileState, node *sitter.Node) {
	isStatic := false
	var pathParts []string

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "static":
			isStatic = true
		case "scoped_identifier", nodeIdentifier, "asterisk":
			pathParts = append(pathParts, st.text(child))
		}
	}
	if len(pathParts) == 0 {
		return
	}

	fullPath := strings.Join(pathParts, ".")
	isWildcard := pathParts[len(pathParts)-1] == "*"

	alias := "*"
	if !isWildcard {
		alias = fullPath[strings.LastIndexByte(fullPath, '.')+1:]
	}
	st.fc.AddImport(alias, &core.ImportEntry{
		RawImportPath: fullPath,
		Alias:         alias,
		IsStatic:      isStatic,
		IsWildcard:    isWildcard,
		Location:      st.location(node),
	})
}

// collectType 收集一个具名类型声明 (顶级、成员或局部)
func (c *Collector) collectType(st *fileState, node *sitter.Node, outer *TypeDecl, local bool) {
	name := st.text(node.ChildByFieldName("name"))
	if name == "" {
		return
	}

	decl := &TypeDecl{
		Name:      name,
		Kind:      declKind(node.Kind()),
		Modifiers: st.modifiers(node),
		Local:     local,
		Location:  st.location(node),
	}

	switch {
	case outer == nil:
		decl.QualifiedName = c.resolver.BuildQualifiedName(st.fc.PackageName, name)
	case local:
		decl.Enclosing = outer.QualifiedName
		decl.QualifiedName = outer.QualifiedName + "$" + strconv.Itoa(st.next(outer.QualifiedName)) + name
	default:
		decl.Enclosing = outer.QualifiedName
		decl.QualifiedName = outer.QualifiedName + "." + name
	}

	// 成员类型的隐式修饰符
	if outer != nil && !local {
		if decl.Kind != handle.KindClass {
			decl.Modifiers |= handle.Static
		}
		if outer.Kind == handle.KindInterface || outer.Kind == handle.KindAnnotation {
			decl.Modifiers |= handle.Public | handle.Static
		}
	}

	decl.TypeParameters = st.typeParameters(node)
	c.collectSupertypes(st, node, decl)

	st.decls = append(st.decls, decl)
	if !local && (outer == nil || !outer.Anonymous && !outer.Local) {
		st.fc.AddDefinition(&core.DefinitionEntry{
			Name:          name,
			QualifiedName: decl.QualifiedName,
			ParentQN:      parentOf(decl, st.fc.PackageName),
			Kind:          decl.Kind,
			Location:      decl.Location,
		})
	}

	if decl.Kind == handle.KindRecord {
		c.collectRecordComponents(st, node, decl)
	}

	body := node.ChildByFieldName("body")
	if body != nil {
		c.collectBody(st, body, decl)
	}
	c.addImplicitMembers(decl)
	analyzeOwnership(st, body, decl)
}

// collectAnonymous 收集匿名类 (new X() {...} 与带类体的枚举常量)
func (c *Collector) collectAnonymous(st *fileState, node, body *sitter.Node, outer *TypeDecl) {
	decl := &TypeDecl{
		QualifiedName: outer.QualifiedName + "$" + strconv.Itoa(st.next(outer.QualifiedName)),
		Enclosing:     outer.QualifiedName,
		Kind:          handle.KindClass,
		Anonymous:     true,
		Location:      st.location(node),
	}
	if t := node.ChildByFieldName("type"); t != nil {
		decl.SuperClass = st.text(t)
	} else if outer.Kind == handle.KindEnum {
		decl.SuperClass = outer.Name
	}
	st.decls = append(st.decls, decl)
	c.collectBody(st, body, decl)
	analyzeOwnership(st, body, decl)
}

func (c *Collector) collectSupertypes(st *fileState, node *sitter.Node, decl *TypeDecl) {
	if sc := node.ChildByFieldName("superclass"); sc != nil && sc.NamedChildCount() > 0 {
		decl.SuperClass = st.text(sc.NamedChild(0))
	}

	iNode := node.ChildByFieldName("interfaces")
	if iNode == nil {
		iNode = findNamedChild(node, nodeExtendsIfaces)
	}
	if iNode == nil {
		return
	}
	if list := findNamedChild(iNode, nodeTypeList); list != nil {
		iNode = list
	}
	for i := uint(0); i < iNode.NamedChildCount(); i++ {
		decl.Interfaces = append(decl.Interfaces, st.text(iNode.NamedChild(i)))
	}
}

// collectRecordComponents: 组件对应 private final 字段，值总是由构造器传入
func (c *Collector) collectRecordComponents(st *fileState, node *sitter.Node, decl *TypeDecl) {
	for _, p := range st.parameters(node.ChildByFieldName("parameters")) {
		decl.Fields = append(decl.Fields, &FieldDecl{
			Name:      p.Name,
			Modifiers: handle.Private | handle.Final,
			TypeText:  p.TypeText,
			Ownership: handle.OwnershipInjected,
		})
	}
}

// collectBody 遍历类体 / 接口体 / 枚举体的成员
func (c *Collector) collectBody(st *fileState, body *sitter.Node, decl *TypeDecl) {
	for i := uint(0); i < body.NamedChildCount(); i++ {
		member := body.NamedChild(i)
		switch member.Kind() {
		case nodeFieldDecl, nodeConstantDecl:
			c.collectField(st, member, decl)
			c.collectNestedInExpressions(st, member, decl)
		case nodeMethodDecl, nodeAnnotationElem:
			decl.Methods = append(decl.Methods, c.executable(st, member, decl))
			c.collectNestedInExpressions(st, member.ChildByFieldName("body"), decl)
		case nodeConstructorDecl, nodeCompactCtorDecl:
			ctor := c.executable(st, member, decl)
			ctor.Name = decl.Name
			if member.Kind() == nodeCompactCtorDecl {
				ctor.Params = recordParams(decl)
			}
			decl.Constructors = append(decl.Constructors, ctor)
			c.collectNestedInExpressions(st, member.ChildByFieldName("body"), decl)
		case nodeEnumConstant:
			decl.EnumConstants = append(decl.EnumConstants, st.text(member.ChildByFieldName("name")))
			if cb := member.ChildByFieldName("body"); cb != nil {
				c.collectAnonymous(st, member, cb, decl)
			}
		case nodeEnumBodyDecls:
			c.collectBody(st, member, decl)
		case nodeBlock, nodeStaticInit:
			c.collectNestedInExpressions(st, member, decl)
		default:
			if isTypeDeclaration(member.Kind()) {
				c.collectType(st, member, decl, false)
			}
		}
	}
}

func (c *Collector) collectField(st *fileState, node *sitter.Node, decl *TypeDecl) {
	mods := st.modifiers(node)
	if node.Kind() == nodeConstantDecl || decl.Kind == handle.KindInterface || decl.Kind == handle.KindAnnotation {
		mods |= handle.Public | handle.Static | handle.Final
	}
	typeText := st.text(node.ChildByFieldName("type"))

	for i := uint(0); i < node.NamedChildCount(); i++ {
		d := node.NamedChild(i)
		if d.Kind() != nodeVarDeclarator {
			continue
		}
		f := &FieldDecl{
			Name:      st.text(d.ChildByFieldName("name")),
			Modifiers: mods,
			TypeText:  typeText + st.text(d.ChildByFieldName("dimensions")),
		}
		if v := d.ChildByFieldName("value"); v != nil && v.Kind() == nodeObjectCreation {
			f.Ownership = handle.OwnershipOwned
		}
		decl.Fields = append(decl.Fields, f)
	}
}

func (c *Collector) executable(st *fileState, node *sitter.Node, decl *TypeDecl) *ExecutableDecl {
	e := &ExecutableDecl{
		Name:           st.text(node.ChildByFieldName("name")),
		Modifiers:      st.modifiers(node),
		Params:         st.parameters(node.ChildByFieldName("parameters")),
		TypeParameters: st.typeParameters(node),
	}

	isMethod := node.Kind() == nodeMethodDecl || node.Kind() == nodeAnnotationElem
	switch {
	case node.Kind() == nodeAnnotationElem:
		e.Modifiers |= handle.Public | handle.Abstract
	case isMethod && decl.Kind == handle.KindInterface:
		if !e.Modifiers.IsPrivate() {
			e.Modifiers |= handle.Public
		}
		if node.ChildByFieldName("body") == nil && !e.Modifiers.IsStatic() && !e.Modifiers.IsPrivate() {
			e.Modifiers |= handle.Abstract
		}
	case !isMethod && decl.Kind == handle.KindEnum:
		e.Modifiers |= handle.Private
	}
	return e
}

// addImplicitMembers 补充编译器生成的成员：普通类与枚举的默认构造器，record 的访问器与规范构造器
func (c *Collector) addImplicitMembers(decl *TypeDecl) {
	access := decl.Modifiers & (handle.Public | handle.Protected | handle.Private)
	switch {
	case decl.Kind == handle.KindRecord:
		params := recordParams(decl)
		for _, p := range params {
			if !decl.hasMethod(p.Name, 0) {
				decl.Methods = append(decl.Methods, &ExecutableDecl{Name: p.Name, Modifiers: handle.Public})
			}
		}
		if !decl.hasConstructor(len(params)) {
			decl.Constructors = append(decl.Constructors, &ExecutableDecl{Name: decl.Name, Modifiers: access, Params: params})
		}
	case decl.Kind == handle.KindClass && !decl.Anonymous && len(decl.Constructors) == 0:
		decl.Constructors = append(decl.Constructors, &ExecutableDecl{Name: decl.Name, Modifiers: access})
	case decl.Kind == handle.KindEnum && len(decl.Constructors) == 0:
		// 枚举的隐式构造器总是 private
		decl.Constructors = append(decl.Constructors, &ExecutableDecl{Name: decl.Name, Modifiers: handle.Private})
	}
}

// collectNestedInExpressions 在方法体、初始化器与字段初始值中查找匿名类和局部类
func (c *Collector) collectNestedInExpressions(st *fileState, node *sitter.Node, decl *TypeDecl) {
	walk(node, func(n *sitter.Node) bool {
		switch {
		case n.Kind() == nodeObjectCreation:
			if cb := findNamedChild(n, nodeClassBody); cb != nil {
				if args := n.ChildByFieldName("arguments"); args != nil {
					c.collectNestedInExpressions(st, args, decl)
				}
				c.collectAnonymous(st, n, cb, decl)
				return false
			}
		case isTypeDeclaration(n.Kind()) && n != node:
			c.collectType(st, n, decl, true)
			return false
		}
		return true
	})
}

// --- 工具函数 ---

func (st *fileState) next(outer string) int {
	st.counts[outer]++
	return st.counts[outer]
}

func (st *fileState) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(st.src)
}

func (st *fileState) location(n *sitter.Node) *handle.Location {
	if n == nil {
		return nil
	}
	return &handle.Location{
		FilePath:    st.fc.FilePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}

// modifiers 读取 modifiers 子节点中的关键字，注解与 default/sealed 等被忽略
func (st *fileState) modifiers(n *sitter.Node) handle.Modifier {
	mNode := findNamedChild(n, nodeModifiers)
	if mNode == nil {
		return 0
	}
	var mods handle.Modifier
	for i := uint(0); i < mNode.ChildCount(); i++ {
		child := mNode.Child(i)
		if child.Kind() == nodeAnnotation || child.Kind() == nodeMarkerAnno {
			continue
		}
		mods |= handle.ModifierFromKeyword(st.text(child))
	}
	return mods
}

func (st *fileState) typeParameters(n *sitter.Node) []string {
	tp := n.ChildByFieldName("type_parameters")
	if tp == nil {
		return nil
	}
	var names []string
	for i := uint(0); i < tp.NamedChildCount(); i++ {
		p := tp.NamedChild(i)
		if p.Kind() != nodeTypeParameter {
			continue
		}
		for j := uint(0); j < p.NamedChildCount(); j++ {
			if id := p.NamedChild(j); id.Kind() == "type_identifier" || id.Kind() == nodeIdentifier {
				names = append(names, st.text(id))
				break
			}
		}
	}
	return names
}

func (st *fileState) parameters(n *sitter.Node) []ParamDecl {
	if n == nil {
		return nil
	}
	var params []ParamDecl
	for i := uint(0); i < n.NamedChildCount(); i++ {
		p := n.NamedChild(i)
		switch p.Kind() {
		case nodeFormalParam:
			params = append(params, ParamDecl{
				Name:     st.text(p.ChildByFieldName("name")),
				TypeText: st.text(p.ChildByFieldName("type")) + st.text(p.ChildByFieldName("dimensions")),
			})
		case nodeSpreadParam:
			// spread_parameter 没有 type 字段：类型节点后跟 "..." 与 variable_declarator
			var param ParamDecl
			for j := uint(0); j < p.NamedChildCount(); j++ {
				child := p.NamedChild(j)
				switch {
				case child.Kind() == nodeModifiers:
				case child.Kind() == nodeVarDeclarator:
					param.Name = st.text(child.ChildByFieldName("name"))
				case param.TypeText == "":
					param.TypeText = st.text(child) + "..."
				}
			}
			params = append(params, param)
		}
	}
	return params
}

func recordParams(decl *TypeDecl) []ParamDecl {
	var params []ParamDecl
	for _, f := range decl.Fields {
		if f.Modifiers.Has(handle.Private|handle.Final) && !f.Modifiers.IsStatic() {
			params = append(params, ParamDecl{Name: f.Name, TypeText: f.TypeText})
		}
	}
	return params
}

func parentOf(decl *TypeDecl, pkg string) string {
	if decl.Enclosing != "" {
		return decl.Enclosing
	}
	return pkg
}

func declKind(nodeKind string) handle.Kind {
	switch nodeKind {
	case nodeInterfaceDecl:
		return handle.KindInterface
	case nodeEnumDecl:
		return handle.KindEnum
	case nodeAnnotationDecl:
		return handle.KindAnnotation
	case nodeRecordDecl:
		return handle.KindRecord
	default:
		return handle.KindClass
	}
}

func isTypeDeclaration(kind string) bool {
	switch kind {
	case nodeClassDecl, nodeInterfaceDecl, nodeEnumDecl, nodeAnnotationDecl, nodeRecordDecl:
		return true
	}
	return false
}

func findNamedChild(n *sitter.Node, kind string) *sitter.Node {
	if n == nil {
		return nil
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		if child := n.NamedChild(i); child.Kind() == kind {
			return child
		}
	}
	return nil
}

// walk 先序遍历命名子节点，fn 返回 false 时不再深入
func walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for i := uint(0); i < n.NamedChildCount(); i++ {
		walk(n.NamedChild(i), fn)
	}
}
