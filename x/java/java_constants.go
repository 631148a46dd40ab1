package java

// Tree-sitter Java 语法节点类型
const (
	nodePackageDecl     = "package_declaration"
	nodeImportDecl      = "import_declaration"
	nodeClassDecl       = "class_declaration"
	nodeInterfaceDecl   = "interface_declaration"
	nodeEnumDecl        = "enum_declaration"
	nodeAnnotationDecl  = "annotation_type_declaration"
	nodeRecordDecl      = "record_declaration"
	nodeModifiers       = "modifiers"
	nodeFieldDecl       = "field_declaration"
	nodeConstantDecl    = "constant_declaration"
	nodeMethodDecl      = "method_declaration"
	nodeConstructorDecl = "constructor_declaration"
	nodeCompactCtorDecl = "compact_constructor_declaration"
	nodeAnnotationElem  = "annotation_type_element_declaration"
	nodeEnumConstant    = "enum_constant"
	nodeEnumBodyDecls   = "enum_body_declarations"
	nodeExtendsIfaces   = "extends_interfaces"
	nodeTypeList        = "type_list"
	nodeTypeParameter   = "type_parameter"
	nodeVarDeclarator   = "variable_declarator"
	nodeFormalParam     = "formal_parameter"
	nodeSpreadParam     = "spread_parameter"
	nodeClassBody       = "class_body"
	nodeBlock           = "block"
	nodeStaticInit      = "static_initializer"
	nodeObjectCreation  = "object_creation_expression"
	nodeAssignment      = "assignment_expression"
	nodeFieldAccess     = "field_access"
	nodeIdentifier      = "identifier"
	nodeThis            = "this"
	nodeAnnotation      = "annotation"
	nodeMarkerAnno      = "marker_annotation"
)

// javaLangTypes 是 java.lang 中无需导入即可使用的常见类型
var javaLangTypes = map[string]bool{
	"Object": true, "String": true, "Integer": true, "Long": true, "Short": true,
	"Byte": true, "Character": true, "Boolean": true, "Double": true, "Float": true,
	"Number": true, "Void": true, "Class": true, "Enum": true, "Record": true,
	"Iterable": true, "Comparable": true, "Runnable": true, "Thread": true,
	"CharSequence": true, "StringBuilder": true, "Exception": true,
	"RuntimeException": true, "Error": true, "Throwable": true, "Cloneable": true,
	"AutoCloseable": true, "Override": true, "Deprecated": true, "FunctionalInterface": true,
	"SuppressWarnings": true, "Math": true, "System": true,
}

// primitiveTypes 不参与限定名解析
var primitiveTypes = map[string]bool{
	"boolean": true, "byte": true, "char": true, "short": true,
	"int": true, "long": true, "float": true, "double": true, "void": true, "var": true,
}
