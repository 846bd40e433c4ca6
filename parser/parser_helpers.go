/*
File    : mlang/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// freeIdentifiers walks a function body and returns, in order of first
// appearance, every identifier it references that is not one of params
// and not bound by a `let` earlier in the same body. This is the capture
// list a closure snapshots at construction time.
func freeIdentifiers(params []*Identifier, body *BlockExpression) []string {
	bound := make(map[string]bool, len(params))
	for _, param := range params {
		bound[param.Name] = true
	}

	seen := make(map[string]bool)
	free := make([]string, 0)

	var record = func(name string) {
		if bound[name] || seen[name] {
			return
		}
		seen[name] = true
		free = append(free, name)
	}

	var walkStatements func([]Statement)
	var walkExpr func(Expression)

	walkExpr = func(expr Expression) {
		switch e := expr.(type) {
		case nil:
		case *Identifier:
			record(e.Name)
		case *IntegerLiteral, *StringLiteral, *BooleanLiteral:
		case *PrefixExpression:
			walkExpr(e.Right)
		case *InfixExpression:
			walkExpr(e.Left)
			walkExpr(e.Right)
		case *AssignExpression:
			if obj, ok := e.Target.(*AccessExpression); ok {
				walkExpr(obj.Object)
			} else if id, ok := e.Target.(*Identifier); ok {
				record(id.Name)
			}
			walkExpr(e.Value)
		case *AccessExpression:
			walkExpr(e.Object)
		case *BlockExpression:
			walkStatements(e.Statements)
		case *IfExpression:
			walkExpr(e.Condition)
			walkStatements(e.Consequence.Statements)
			if e.Alternative != nil {
				walkStatements(e.Alternative.Statements)
			}
		case *FunctionLiteral:
			// Nested functions compute their own capture list; any name
			// they reference that isn't their own parameter is still free
			// in the enclosing function too.
			for _, name := range e.Capture {
				record(name)
			}
		case *CallExpression:
			walkExpr(e.Function)
			for _, arg := range e.Arguments {
				walkExpr(arg)
			}
		case *IndexExpression:
			walkExpr(e.Left)
			walkExpr(e.Index)
		case *VectorLiteral:
			for _, elem := range e.Elements {
				walkExpr(elem)
			}
		case *CollectionLiteral:
			for _, member := range e.Members {
				walkExpr(member.Value)
			}
		}
	}

	walkStatements = func(statements []Statement) {
		for _, stmt := range statements {
			switch s := stmt.(type) {
			case *LetStatement:
				walkExpr(s.Value)
				bound[s.Name.Name] = true
			case *ReturnStatement:
				walkExpr(s.Value)
			case *ExpressionStatement:
				walkExpr(s.Expr)
			}
		}
	}

	if body != nil {
		walkStatements(body.Statements)
	}
	return free
}
