package lint

import (
	"reflect"

	"github.com/dop251/goja/ast"
)

var astPkg = reflect.TypeOf(ast.Program{}).PkgPath()

// inspect calls fn for every syntax node reachable from n.  The goja AST has
// no visitor, so the tree is traversed by reflection over the node structs.
// Declaration lists repeat nodes already present in the statement bodies,
// every node is visited once.
func inspect(n any, fn func(ast.Node)) {
	w := walker{fn: fn, seen: map[uintptr]bool{}}
	w.walk(reflect.ValueOf(n))
}

type walker struct {
	fn   func(ast.Node)
	seen map[uintptr]bool
}

func (w *walker) walk(v reflect.Value) {
	switch v.Kind() {
	case reflect.Interface:
		if !v.IsNil() {
			w.walk(v.Elem())
		}
	case reflect.Pointer:
		if v.IsNil() || v.Type().Elem().PkgPath() != astPkg {
			return
		}
		if w.seen[v.Pointer()] {
			return
		}
		w.seen[v.Pointer()] = true
		if v.CanInterface() {
			if n, ok := v.Interface().(ast.Node); ok {
				w.fn(n)
			}
		}
		w.walk(v.Elem())
	case reflect.Struct:
		if v.Type().PkgPath() != astPkg {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			w.walk(v.Field(i))
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			w.walk(v.Index(i))
		}
	}
}
