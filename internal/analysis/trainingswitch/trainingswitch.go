// Package trainingswitch defines an Analyzer that reports type switches
// over a closed interface which miss some of its implementations.
package trainingswitch

import (
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const Doc = `check type switches over closed training interface for exhaustiveness

A type switch over the interface named by -iface must either list every
concrete type of the interface package implementing it or contain a default clause.`

const defaultInterface = "github.com/Yandex-Practicum/ftracker/internal/ftracker.Training"

var Analyzer = &analysis.Analyzer{
	Name:     "trainingswitch",
	Doc:      Doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var flagInterface string

func init() {
	Analyzer.Flags.StringVar(&flagInterface, "iface", defaultInterface, "fully qualified name of closed interface")
}

func run(pass *analysis.Pass) (interface{}, error) {
	pkgPath, name := splitQualified(flagInterface)
	if name == "" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.TypeSwitchStmt)(nil)}, func(n ast.Node) {
		ts := n.(*ast.TypeSwitchStmt)

		subject := switchSubject(ts)
		if subject == nil {
			return
		}
		named, ok := pass.TypesInfo.TypeOf(subject).(*types.Named)
		if !ok || named.Obj().Pkg() == nil {
			return
		}
		if named.Obj().Pkg().Path() != pkgPath || named.Obj().Name() != name {
			return
		}
		iface, ok := named.Underlying().(*types.Interface)
		if !ok {
			return
		}

		covered := make(map[*types.TypeName]bool)
		for _, stmt := range ts.Body.List {
			clause := stmt.(*ast.CaseClause)
			if clause.List == nil {
				// default
				return
			}
			for _, expr := range clause.List {
				if obj := typeName(pass.TypesInfo.TypeOf(expr)); obj != nil {
					covered[obj] = true
				}
			}
		}

		var missing []string
		for _, obj := range implementations(named.Obj().Pkg(), iface) {
			if !covered[obj] {
				missing = append(missing, obj.Name())
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			pass.Reportf(ts.Pos(), "type switch over %s misses %s", named.Obj().Name(), strings.Join(missing, ", "))
		}
	})

	return nil, nil
}

func splitQualified(s string) (pkgPath, name string) {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return "", ""
	}
	return s[:i], s[i+1:]
}

// switchSubject returns x of switch x.(type) or switch v := x.(type)
func switchSubject(ts *ast.TypeSwitchStmt) ast.Expr {
	var expr ast.Expr
	switch a := ts.Assign.(type) {
	case *ast.ExprStmt:
		expr = a.X
	case *ast.AssignStmt:
		if len(a.Rhs) == 1 {
			expr = a.Rhs[0]
		}
	}
	assert, ok := expr.(*ast.TypeAssertExpr)
	if !ok {
		return nil
	}
	return assert.X
}

// typeName returns named type of t, dereferencing pointers
func typeName(t types.Type) *types.TypeName {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	if named, ok := t.(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

// implementations returns concrete types of pkg implementing iface
func implementations(pkg *types.Package, iface *types.Interface) []*types.TypeName {
	var res []*types.TypeName
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj.IsAlias() {
			continue
		}
		t := obj.Type()
		if types.IsInterface(t) {
			continue
		}
		if types.Implements(t, iface) || types.Implements(types.NewPointer(t), iface) {
			res = append(res, obj)
		}
	}
	return res
}
