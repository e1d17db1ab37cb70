package lint

import (
	"fmt"

	"github.com/dop251/goja/ast"
)

// E2EActionID is the ID of the E2EAction rule.
const E2EActionID = "e2e-action"

// actionHelper is the name of the receiver that is allowed to call the
// flagged methods.
const actionHelper = "action"

// flagged maps the driver methods to the action helper methods replacing
// them.
var flagged = map[string]string{
	"click":    "action.click",
	"sendKeys": "action.sendKeys",
	"clear":    "action.clear",
}

// E2EAction flags click, sendKeys and clear calls made on anything but the
// action helper.
type E2EAction struct {
	exclude ExclusionList
}

// NewE2EAction returns the rule.  Files in exclude are not checked.
func NewE2EAction(exclude ExclusionList) *E2EAction {
	return &E2EAction{exclude: exclude}
}

func (*E2EAction) ID() string {
	return E2EActionID
}

func (r *E2EAction) Check(f *File) []Diagnostic {
	if r.exclude.Excludes(f.Name) {
		return nil
	}
	var ds []Diagnostic
	inspect(f.Program, func(n ast.Node) {
		call, ok := n.(*ast.CallExpression)
		if !ok {
			return
		}
		member, ok := unwrapOptional(call.Callee).(*ast.DotExpression)
		if !ok {
			return
		}
		method := member.Identifier.Name.String()
		replacement, ok := flagged[method]
		if !ok {
			return
		}
		receiver := "(some expression)"
		if id, ok := unwrapOptional(member.Left).(*ast.Identifier); ok {
			if id.Name.String() == actionHelper {
				return
			}
			receiver = id.Name.String()
		}
		line, col := f.Position(member.Idx0())
		ds = append(ds, Diagnostic{
			RuleID:   E2EActionID,
			Filename: f.Name,
			Line:     line,
			Column:   col,
			Type:     "MemberExpression",
			Message:  fmt.Sprintf("%s.%s() is called instead of using %s()", receiver, method, replacement),
		})
	})
	return ds
}

// unwrapOptional strips optional chaining: el?.click() and el.click?.()
// are calls of click on el.
func unwrapOptional(e ast.Expression) ast.Expression {
	for {
		switch x := e.(type) {
		case *ast.Optional:
			e = x.Expression
		case *ast.OptionalChain:
			e = x.Expression
		default:
			return e
		}
	}
}
