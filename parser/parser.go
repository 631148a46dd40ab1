package parser

import (
	"os"

	"github.com/CodMac/go-treesitter-uml/model"
	"github.com/cockroachdb/errors"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Parser 定义了所有语言解析器的通用能力
type Parser interface {
	// ParseFile 读取文件内容并解析，返回 AST 根节点与源码字节
	ParseFile(filePath string) (*sitter.Node, *[]byte, error)
	// ParseSource 解析内存中的源码，name 仅用于错误信息
	ParseSource(name string, source []byte) (*sitter.Node, *[]byte, error)
	// Close 释放解析器以及它产生的全部语法树
	Close()
}

// TreeSitterParser 是 Parser 的 Tree-sitter 实现，非并发安全，每个 worker 持有一个
type TreeSitterParser struct {
	Language model.Language
	tsParser *sitter.Parser
	trees    []*sitter.Tree
}

// NewParser 创建一个新的 TreeSitterParser 实例
func NewParser(lang model.Language) (*TreeSitterParser, error) {
	tsLang, err := GetLanguage(lang)
	if err != nil {
		return nil, err
	}

	tsParser := sitter.NewParser()
	if err := tsParser.SetLanguage(tsLang); err != nil {
		tsParser.Close()
		return nil, errors.Wrapf(err, "failed to set language %s", lang)
	}

	return &TreeSitterParser{
		Language: lang,
		tsParser: tsParser,
	}, nil
}

func (p *TreeSitterParser) ParseFile(filePath string) (*sitter.Node, *[]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read file %s", filePath)
	}
	return p.ParseSource(filePath, content)
}

func (p *TreeSitterParser) ParseSource(name string, source []byte) (*sitter.Node, *[]byte, error) {
	tree := p.tsParser.Parse(source, nil)
	if tree == nil {
		return nil, nil, errors.Newf("tree-sitter failed to parse %s", name)
	}
	p.trees = append(p.trees, tree)
	return tree.RootNode(), &source, nil
}

func (p *TreeSitterParser) Close() {
	for _, t := range p.trees {
		t.Close()
	}
	p.trees = nil
	if p.tsParser != nil {
		p.tsParser.Close()
		p.tsParser = nil
	}
}
