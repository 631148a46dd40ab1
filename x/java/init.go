package java

import (
	"github.com/CodMac/go-treesitter-uml/collector"
	"github.com/CodMac/go-treesitter-uml/core"
	"github.com/CodMac/go-treesitter-uml/extractor"
	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/CodMac/go-treesitter-uml/noisefilter"
	"github.com/CodMac/go-treesitter-uml/parser"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

func init() {
	// 注册 Tree-sitter Java 语言对象
	parser.RegisterLanguage(model.LangJava, sitter.NewLanguage(tree_sitter_java.Language()))
	// 注册 Collector
	collector.RegisterCollector(model.LangJava, NewJavaCollector())
	// 注册 Extractor
	extractor.RegisterExtractor(model.LangJava, NewJavaExtractor())
	// 注册 NoiseFilter(噪音过滤)
	noisefilter.RegisterNoiseFilter(model.LangJava, NewJavaNoiseFilter())
	// 注册 SymbolResolver(符号解析)
	core.RegisterSymbolResolver(model.LangJava, NewJavaSymbolResolver())
}
