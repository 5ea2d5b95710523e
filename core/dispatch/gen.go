//go:build ignore

// Command gen generates call_gen.go, the arity-indexed dispatch family.
// Run via go generate in this directory.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

const maxArity = 21

func main() {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by gen.go; DO NOT EDIT.\n\npackage dispatch\n\n")
	buf.WriteString("import (\n\t\"github.com/dmitrymomot/junction/core/binder\"\n\t\"github.com/dmitrymomot/junction/core/handler\"\n)\n\n")

	buf.WriteString("// Call0 invokes a zero-argument generator immediately.\n")
	buf.WriteString("func Call0(fn func() handler.Handler, opts ...Option) handler.Handler {\n\treturn fn()\n}\n")

	for n := 1; n <= maxArity; n++ {
		var tparams, params, args, unwrap []string
		for i := 1; i <= n; i++ {
			tparams = append(tparams, fmt.Sprintf("A%d", i))
			params = append(params, fmt.Sprintf("p%d binder.BoundParam[A%d]", i, i))
			args = append(args, fmt.Sprintf("A%d", i))
			unwrap = append(unwrap, fmt.Sprintf("p%d.Value", i))
		}

		noun := "parameters"
		if n == 1 {
			noun = "parameter"
		}
		fmt.Fprintf(&buf, "\n// Call%d binds %d %s in declared order and invokes fn; the first\n// binding failure short-circuits to the bad-request hook.\n", n, n, noun)
		fmt.Fprintf(&buf, "func Call%d[%s any](%s, fn func(%s) handler.Handler, opts ...Option) handler.Handler {\n",
			n, strings.Join(tparams, ", "), strings.Join(params, ", "), strings.Join(args, ", "))
		for i := 1; i <= n; i++ {
			fmt.Fprintf(&buf, "\tif p%d.Err != nil {\n\t\treturn reject(p%d.Err, opts)\n\t}\n", i, i)
		}
		fmt.Fprintf(&buf, "\treturn fn(%s)\n}\n", strings.Join(unwrap, ", "))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("call_gen.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}
