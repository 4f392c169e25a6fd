// Package gen renders the erased container wrappers of a capability
// contract from a contract definition.
package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/oliverbestmann/erasure/internal/typedpool"
)

//go:embed contract.go.tmpl
var contractTemplate string

// Strategies lists the storage strategies a wrapper is generated for.
var Strategies = []string{"Heap", "Shared", "Inline", "SharedInline"}

var tmpl = template.Must(template.New("contract").
	Funcs(template.FuncMap{
		"strategies": func() []string { return Strategies },
		"comment":    comment,
		"params":     params,
		"args":       args,
		"results":    results,
	}).
	Parse(contractTemplate))

var buffers = typedpool.New(func(buf *bytes.Buffer) { buf.Reset() })

// Render generates the Go source for contract. The result is formatted
// and its imports are cleaned up.
func Render(contract *Contract) ([]byte, error) {
	if err := contract.Validate(); err != nil {
		return nil, err
	}

	buf := buffers.Get()
	defer buffers.Put(buf)

	if err := tmpl.Execute(buf, contract); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	filename := strings.ToLower(contract.Name) + "_gen.go"

	source, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source of %s: %w", contract.Name, err)
	}

	return source, nil
}

func comment(doc string) string {
	doc = strings.TrimSpace(doc)

	var lines []string
	for line := range strings.Lines(doc) {
		lines = append(lines, strings.TrimRight("// "+strings.TrimSpace(line), " "))
	}

	return strings.Join(lines, "\n")
}

func params(m Method) string {
	var parts []string
	for _, param := range m.Params {
		parts = append(parts, param.Name+" "+param.Type)
	}

	return strings.Join(parts, ", ")
}

func args(m Method) string {
	var parts []string
	for _, param := range m.Params {
		if strings.HasPrefix(param.Type, "...") {
			parts = append(parts, param.Name+"...")
		} else {
			parts = append(parts, param.Name)
		}
	}

	return strings.Join(parts, ", ")
}

func results(m Method) string {
	switch len(m.Results) {
	case 0:
		return ""
	case 1:
		return " " + m.Results[0]
	default:
		return " (" + strings.Join(m.Results, ", ") + ")"
	}
}
