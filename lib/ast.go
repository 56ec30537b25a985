package lib

type operatorType int

const (
	OperatorSummation operatorType = iota
	OperatorSubtraction
	OperatorMultiplication
	OperatorLessThanComparison
	OperatorBiggerThanComparison
	OperatorEqualityComparison
)

// operatorFromSymbol maps the operator subset of symbols to operators.
// Parentheses have no operator counterpart, so ok is false for them.
func operatorFromSymbol(sym symbol) (operatorType, bool) {
	switch sym {
	case symbolPlus:
		return OperatorSummation, true
	case symbolMinus:
		return OperatorSubtraction, true
	case symbolAsterisk:
		return OperatorMultiplication, true
	case symbolLess:
		return OperatorLessThanComparison, true
	case symbolGreater:
		return OperatorBiggerThanComparison, true
	case symbolEqual:
		return OperatorEqualityComparison, true
	}
	return 0, false
}

func (op operatorType) apply(left int64, right int64) int64 {
	switch op {
	case OperatorSummation:
		return left + right
	case OperatorSubtraction:
		return left - right
	case OperatorMultiplication:
		return left * right
	case OperatorLessThanComparison:
		return boolToInt(left < right)
	case OperatorBiggerThanComparison:
		return boolToInt(left > right)
	case OperatorEqualityComparison:
		return boolToInt(left == right)
	}
	panic("unknown operator")
}

// Comparisons share the integer result type with arithmetic.
func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Expression is the parsed tree: either a Const leaf or an Action node
// owning its two children.
type Expression interface {
	isExpression()
}

func (c Const) isExpression()  {}
func (a Action) isExpression() {}

type Const struct {
	Value int64
}

type Action struct {
	Left  Expression
	Right Expression
	Op    operatorType
}

// Evaluate reduces a well-formed tree to a single integer. It cannot
// fail: every operator is total over int64.
func Evaluate(expr Expression) int64 {
	switch e := expr.(type) {
	case Const:
		return e.Value
	case Action:
		return e.Op.apply(Evaluate(e.Left), Evaluate(e.Right))
	}
	panic("unknown expression node")
}
