package core

import (
	"sync"

	"github.com/CodMac/go-treesitter-uml/handle"
)

// DefinitionEntry 是符号表中的一个类型定义
type DefinitionEntry struct {
	Name          string
	QualifiedName string
	ParentQN      string // 外层类型或包的限定名
	Kind          handle.Kind
	Location      *handle.Location
	// External 表示该条目只来自 import 语句，不在扫描范围内
	External bool
}

type ImportEntry struct {
	RawImportPath string           `json:"RawImportPath"`
	Alias         string           `json:"Alias"`
	IsStatic      bool             `json:"IsStatic"`
	IsWildcard    bool             `json:"IsWildcard"`
	Location      *handle.Location `json:"Location,omitempty"`
}

// FileContext 存储单个文件的包名、导入与类型定义
type FileContext struct {
	FilePath        string
	PackageName     string
	DefinitionsBySN map[string][]*DefinitionEntry
	Imports         map[string][]*ImportEntry
	// Payload 是语言相关的声明数据，由 Collector 写入、Extractor 读取
	Payload interface{}
	mutex   sync.RWMutex
}

func NewFileContext(filePath string) *FileContext {
	return &FileContext{
		FilePath:        filePath,
		DefinitionsBySN: make(map[string][]*DefinitionEntry),
		Imports:         make(map[string][]*ImportEntry),
	}
}

func (fc *FileContext) AddDefinition(entry *DefinitionEntry) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.DefinitionsBySN[entry.Name] = append(fc.DefinitionsBySN[entry.Name], entry)
}

func (fc *FileContext) AddImport(alias string, imp *ImportEntry) {
	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	fc.Imports[alias] = append(fc.Imports[alias], imp)
}

// WildcardImports 返回按声明顺序排列的通配符导入
func (fc *FileContext) WildcardImports() []*ImportEntry {
	fc.mutex.RLock()
	defer fc.mutex.RUnlock()
	return fc.Imports["*"]
}

// GlobalContext 汇总所有文件的定义，用于跨文件限定名解析
type GlobalContext struct {
	FileContexts    map[string]*FileContext
	DefinitionsByQN map[string][]*DefinitionEntry
	Packages        map[string]bool
	resolver        SymbolResolver
	mutex           sync.RWMutex
}

func NewGlobalContext(resolver SymbolResolver) *GlobalContext {
	return &GlobalContext{
		FileContexts:    make(map[string]*FileContext),
		DefinitionsByQN: make(map[string][]*DefinitionEntry),
		Packages:        make(map[string]bool),
		resolver:        resolver,
	}
}

// RegisterFileContext 把文件定义合并进全局符号表，包名注册委托给 Resolver
func (gc *GlobalContext) RegisterFileContext(fc *FileContext) {
	gc.mutex.Lock()
	defer gc.mutex.Unlock()

	gc.FileContexts[fc.FilePath] = fc
	gc.resolver.RegisterPackage(gc, fc.PackageName)

	for _, entries := range fc.DefinitionsBySN {
		for _, entry := range entries {
			gc.DefinitionsByQN[entry.QualifiedName] = append(gc.DefinitionsByQN[entry.QualifiedName], entry)
		}
	}
}

// Lookup 按限定名查找扫描范围内的定义
func (gc *GlobalContext) Lookup(qn string) []*DefinitionEntry {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()
	return gc.DefinitionsByQN[qn]
}

// HasPackage 报告是否有文件声明了该包
func (gc *GlobalContext) HasPackage(pkg string) bool {
	gc.mutex.RLock()
	defer gc.mutex.RUnlock()
	return gc.Packages[pkg]
}

// ResolveSymbol 在 scope (当前类型的限定名) 内解析一个类型名
func (gc *GlobalContext) ResolveSymbol(fc *FileContext, scope, symbol string) []*DefinitionEntry {
	return gc.resolver.Resolve(gc, fc, scope, symbol)
}

func (gc *GlobalContext) BuildQualifiedName(parentQN, name string) string {
	return gc.resolver.BuildQualifiedName(parentQN, name)
}
