package ast

// TransformFunc rewrites a single node. Transform calls f with each node
// AFTER its children have already been rewritten (post-order), so f only
// ever sees children in their final, transformed shape.
type TransformFunc func(Node) Node

// Transform performs a post-order rewrite of n: every child is rewritten
// first via recursive Transform calls, a new node of n's same concrete
// type is built from the rewritten children, and finally f is applied to
// that new node. The switch below has a case for every node type defined
// in this package except *With, which its owning statement rewrites
// through transformWith; a variant without a case here falls through to
// the default branch, which applies f without visiting its children, and
// neither the compiler nor a test reports the omission.
func Transform(n Node, f TransformFunc) Node {
	if n == nil {
		return nil
	}

	switch v := n.(type) {
	// Leaves: no children to recurse into.
	case *Literal, *True, *False, *Null, *Star, *Identifier, *Column, *Table, *WorkspacePath:
		return f(n)

	case *Alias:
		nv := *v
		nv.Expr = transformExpr(v.Expr, f)
		return f(&nv)

	case *Add:
		return f(&Add{transformBinary(v.binary, f)})
	case *Sub:
		return f(&Sub{transformBinary(v.binary, f)})
	case *Mul:
		return f(&Mul{transformBinary(v.binary, f)})
	case *Div:
		return f(&Div{transformBinary(v.binary, f)})
	case *Mod:
		return f(&Mod{transformBinary(v.binary, f)})
	case *EQ:
		return f(&EQ{transformBinary(v.binary, f)})
	case *NEQ:
		return f(&NEQ{transformBinary(v.binary, f)})
	case *GT:
		return f(&GT{transformBinary(v.binary, f)})
	case *LT:
		return f(&LT{transformBinary(v.binary, f)})
	case *GTE:
		return f(&GTE{transformBinary(v.binary, f)})
	case *LTE:
		return f(&LTE{transformBinary(v.binary, f)})
	case *Is:
		nv := *v
		nv.binary = transformBinary(v.binary, f)
		return f(&nv)
	case *And:
		return f(&And{transformBinary(v.binary, f)})
	case *Or:
		return f(&Or{transformBinary(v.binary, f)})
	case *Not:
		return f(&Not{transformUnary(v.unary, f)})
	case *Neg:
		return f(&Neg{transformUnary(v.unary, f)})
	case *Paren:
		return f(&Paren{transformUnary(v.unary, f)})

	case *In:
		nv := *v
		nv.Expr = transformExpr(v.Expr, f)
		nv.List = transformExprs(v.List, f)
		if v.Query != nil {
			nv.Query = transformExpr(v.Query, f).(*Subquery)
		}
		return f(&nv)

	case *Between:
		nv := *v
		nv.Expr = transformExpr(v.Expr, f)
		nv.Low = transformExpr(v.Low, f)
		nv.High = transformExpr(v.High, f)
		return f(&nv)

	case *Like:
		nv := *v
		nv.Expr = transformExpr(v.Expr, f)
		nv.Pattern = transformExpr(v.Pattern, f)
		if v.Escape != nil {
			nv.Escape = transformExpr(v.Escape, f)
		}
		return f(&nv)

	case *Exists:
		nv := *v
		if v.Query != nil {
			nv.Query = transformExpr(v.Query, f).(*Subquery)
		}
		return f(&nv)

	case *Function:
		nv := *v
		nv.Args = transformExprs(v.Args, f)
		if v.Filter != nil {
			nv.Filter = transformExpr(v.Filter, f)
		}
		if v.Over != nil {
			nv.Over = transformExpr(v.Over, f).(*Window)
		}
		return f(&nv)

	case *Cast:
		nv := *v
		nv.Expr = transformExpr(v.Expr, f)
		return f(&nv)

	case *Window:
		nv := *v
		nv.PartitionBy = transformExprs(v.PartitionBy, f)
		nv.OrderBy = transformOrderItems(v.OrderBy, f)
		return f(&nv)

	case *From:
		nv := *v
		nv.Source = transformExpr(v.Source, f)
		return f(&nv)

	case *Join:
		nv := *v
		nv.Left = transformExpr(v.Left, f)
		nv.Right = transformExpr(v.Right, f)
		if v.On != nil {
			nv.On = transformExpr(v.On, f)
		}
		return f(&nv)

	case *Where:
		nv := *v
		nv.Condition = transformExpr(v.Condition, f)
		return f(&nv)

	case *GroupBy:
		nv := *v
		nv.Exprs = transformExprs(v.Exprs, f)
		return f(&nv)

	case *Having:
		nv := *v
		nv.Condition = transformExpr(v.Condition, f)
		return f(&nv)

	case *OrderItem:
		nv := *v
		nv.Expr = transformExpr(v.Expr, f)
		return f(&nv)

	case *Limit:
		nv := *v
		nv.Count = transformExpr(v.Count, f)
		return f(&nv)

	case *Offset:
		nv := *v
		nv.Count = transformExpr(v.Count, f)
		return f(&nv)

	case *Select:
		nv := *v
		nv.Columns = transformExprs(v.Columns, f)
		if v.From != nil {
			nv.From = transformExpr(v.From, f).(*From)
		}
		nv.Joins = transformJoins(v.Joins, f)
		if v.Where != nil {
			nv.Where = transformExpr(v.Where, f).(*Where)
		}
		if v.GroupBy != nil {
			nv.GroupBy = transformExpr(v.GroupBy, f).(*GroupBy)
		}
		if v.Having != nil {
			nv.Having = transformExpr(v.Having, f).(*Having)
		}
		if v.Windows != nil {
			nv.Windows = make(map[string]*Window, len(v.Windows))
			for name, w := range v.Windows {
				nv.Windows[name] = transformExpr(w, f).(*Window)
			}
		}
		nv.OrderBy = transformOrderItems(v.OrderBy, f)
		if v.Limit != nil {
			nv.Limit = transformExpr(v.Limit, f).(*Limit)
		}
		if v.Offset != nil {
			nv.Offset = transformExpr(v.Offset, f).(*Offset)
		}
		if v.With != nil {
			nv.With = transformWith(v.With, f)
		}
		return f(&nv)

	case *SetOp:
		nv := *v
		nv.Left = transformStmt(v.Left, f)
		nv.Right = transformStmt(v.Right, f)
		return f(&nv)

	case *Insert:
		nv := *v
		if v.Values != nil {
			nv.Values = make([][]Expr, len(v.Values))
			for i, row := range v.Values {
				nv.Values[i] = transformExprs(row, f)
			}
		}
		if v.Query != nil {
			nv.Query = transformStmt(v.Query, f).(*Select)
		}
		if v.With != nil {
			nv.With = transformWith(v.With, f)
		}
		return f(&nv)

	case *Update:
		nv := *v
		nv.Assignments = make([]Assignment, len(v.Assignments))
		for i, a := range v.Assignments {
			nv.Assignments[i] = Assignment{Column: a.Column, Value: transformExpr(a.Value, f)}
		}
		if v.Where != nil {
			nv.Where = transformExpr(v.Where, f).(*Where)
		}
		if v.With != nil {
			nv.With = transformWith(v.With, f)
		}
		return f(&nv)

	case *Delete:
		nv := *v
		if v.Where != nil {
			nv.Where = transformExpr(v.Where, f).(*Where)
		}
		if v.With != nil {
			nv.With = transformWith(v.With, f)
		}
		return f(&nv)

	case *Create:
		nv := *v
		if v.AsSelect != nil {
			nv.AsSelect = transformStmt(v.AsSelect, f).(*Select)
		}
		return f(&nv)

	case *Drop, *Alter:
		return f(n)

	case *Subquery:
		nv := *v
		nv.Query = transformStmt(v.Query, f)
		return f(&nv)

	case *CTE:
		nv := *v
		nv.Query = transformStmt(v.Query, f)
		return f(&nv)

	case *Case:
		nv := *v
		if v.Operand != nil {
			nv.Operand = transformExpr(v.Operand, f)
		}
		nv.Whens = make([]When, len(v.Whens))
		for i, w := range v.Whens {
			nw := When{Result: transformExpr(w.Result, f)}
			if w.Condition != nil {
				nw.Condition = transformExpr(w.Condition, f)
			}
			nv.Whens[i] = nw
		}
		if v.Else != nil {
			nv.Else = transformExpr(v.Else, f)
		}
		return f(&nv)

	default:
		return f(n)
	}
}

func transformBinary(b binary, f TransformFunc) binary {
	return binary{base: b.base, Left: transformExpr(b.Left, f), Right: transformExpr(b.Right, f)}
}

func transformUnary(u unary, f TransformFunc) unary {
	return unary{base: u.base, Expr: transformExpr(u.Expr, f)}
}

func transformExpr(e Expr, f TransformFunc) Expr {
	if e == nil {
		return nil
	}
	return Transform(e, f).(Expr)
}

func transformExprs(list []Expr, f TransformFunc) []Expr {
	if list == nil {
		return nil
	}
	out := make([]Expr, len(list))
	for i, e := range list {
		out[i] = transformExpr(e, f)
	}
	return out
}

func transformStmt(s Stmt, f TransformFunc) Stmt {
	if s == nil {
		return nil
	}
	return Transform(s, f).(Stmt)
}

func transformJoins(joins []*Join, f TransformFunc) []*Join {
	if joins == nil {
		return nil
	}
	out := make([]*Join, len(joins))
	for i, j := range joins {
		out[i] = Transform(j, f).(*Join)
	}
	return out
}

func transformOrderItems(items []*OrderItem, f TransformFunc) []*OrderItem {
	if items == nil {
		return nil
	}
	out := make([]*OrderItem, len(items))
	for i, it := range items {
		out[i] = Transform(it, f).(*OrderItem)
	}
	return out
}

func transformWith(w *With, f TransformFunc) *With {
	nv := *w
	nv.CTEs = make([]*CTE, len(w.CTEs))
	for i, c := range w.CTEs {
		nv.CTEs[i] = Transform(c, f).(*CTE)
	}
	return &nv
}
