package ast

// Children returns n's immediate child nodes, skipping nils. It underlies
// FindAll's descent; Transform does not use it; Transform reconstructs
// nodes field-by-field so it can preserve each field's concrete type.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c == nil {
			return
		}
		out = append(out, c)
	}

	switch v := n.(type) {
	case *Literal, *True, *False, *Null, *Star, *Identifier, *Column, *Table, *WorkspacePath:
		// leaves

	case *Alias:
		add(v.Expr)

	case *Add:
		add(v.Left)
		add(v.Right)
	case *Sub:
		add(v.Left)
		add(v.Right)
	case *Mul:
		add(v.Left)
		add(v.Right)
	case *Div:
		add(v.Left)
		add(v.Right)
	case *Mod:
		add(v.Left)
		add(v.Right)
	case *EQ:
		add(v.Left)
		add(v.Right)
	case *NEQ:
		add(v.Left)
		add(v.Right)
	case *GT:
		add(v.Left)
		add(v.Right)
	case *LT:
		add(v.Left)
		add(v.Right)
	case *GTE:
		add(v.Left)
		add(v.Right)
	case *LTE:
		add(v.Left)
		add(v.Right)
	case *Is:
		add(v.Left)
		add(v.Right)
	case *And:
		add(v.Left)
		add(v.Right)
	case *Or:
		add(v.Left)
		add(v.Right)
	case *Not:
		add(v.Expr)
	case *Neg:
		add(v.Expr)
	case *Paren:
		add(v.Expr)

	case *In:
		add(v.Expr)
		for _, e := range v.List {
			add(e)
		}
		if v.Query != nil {
			add(v.Query)
		}

	case *Between:
		add(v.Expr)
		add(v.Low)
		add(v.High)

	case *Like:
		add(v.Expr)
		add(v.Pattern)
		if v.Escape != nil {
			add(v.Escape)
		}

	case *Exists:
		if v.Query != nil {
			add(v.Query)
		}

	case *Function:
		for _, a := range v.Args {
			add(a)
		}
		if v.Filter != nil {
			add(v.Filter)
		}
		if v.Over != nil {
			add(v.Over)
		}

	case *Cast:
		add(v.Expr)

	case *Window:
		for _, e := range v.PartitionBy {
			add(e)
		}
		for _, o := range v.OrderBy {
			add(o)
		}

	case *From:
		add(v.Source)

	case *Join:
		add(v.Left)
		add(v.Right)
		if v.On != nil {
			add(v.On)
		}

	case *Where:
		add(v.Condition)

	case *GroupBy:
		for _, e := range v.Exprs {
			add(e)
		}

	case *Having:
		add(v.Condition)

	case *OrderItem:
		add(v.Expr)

	case *Limit:
		add(v.Count)

	case *Offset:
		add(v.Count)

	case *Select:
		for _, c := range v.Columns {
			add(c)
		}
		if v.From != nil {
			add(v.From)
		}
		for _, j := range v.Joins {
			add(j)
		}
		if v.Where != nil {
			add(v.Where)
		}
		if v.GroupBy != nil {
			add(v.GroupBy)
		}
		if v.Having != nil {
			add(v.Having)
		}
		for _, w := range v.Windows {
			add(w)
		}
		for _, o := range v.OrderBy {
			add(o)
		}
		if v.Limit != nil {
			add(v.Limit)
		}
		if v.Offset != nil {
			add(v.Offset)
		}
		if v.With != nil {
			add(v.With)
		}

	case *SetOp:
		add(v.Left)
		add(v.Right)

	case *Insert:
		if v.With != nil {
			add(v.With)
		}
		for _, row := range v.Values {
			for _, e := range row {
				add(e)
			}
		}
		if v.Query != nil {
			add(v.Query)
		}

	case *Update:
		if v.With != nil {
			add(v.With)
		}
		for _, a := range v.Assignments {
			add(a.Value)
		}
		if v.Where != nil {
			add(v.Where)
		}

	case *Delete:
		if v.With != nil {
			add(v.With)
		}
		if v.Where != nil {
			add(v.Where)
		}

	case *Create:
		if v.AsSelect != nil {
			add(v.AsSelect)
		}

	case *Drop, *Alter:
		// no expression children

	case *Subquery:
		add(v.Query)

	case *CTE:
		add(v.Query)

	case *With:
		for _, c := range v.CTEs {
			add(c)
		}

	case *Case:
		if v.Operand != nil {
			add(v.Operand)
		}
		for _, w := range v.Whens {
			if w.Condition != nil {
				add(w.Condition)
			}
			add(w.Result)
		}
		if v.Else != nil {
			add(v.Else)
		}
	}

	return out
}
