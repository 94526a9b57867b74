// Package smvlang models the fragment of the nuXmv expression language the
// encoder emits. Expressions are built as a small tree of typed nodes and
// rendered in one place, so operator spelling and parenthesization are not
// scattered across the code that decides what to say.
package smvlang

import (
	"fmt"
	"strconv"
	"strings"
)

// Expr is a node of an SMV expression tree.
type Expr interface {
	// SMV renders the node in nuXmv surface syntax. Rendering is
	// deterministic: the same tree always produces the same bytes.
	SMV() string
}

type intLit int

func (e intLit) SMV() string {
	return strconv.Itoa(int(e))
}

// Int returns an integer literal.
func Int(n int) Expr {
	return intLit(n)
}

type symbol string

func (e symbol) SMV() string {
	return string(e)
}

// Sym returns a reference to a named variable, constant or enum symbol.
func Sym(name string) Expr {
	return symbol(name)
}

type offset struct {
	base  Expr
	delta int
}

func (e offset) SMV() string {
	if e.delta < 0 {
		return fmt.Sprintf("%s - %d", e.base.SMV(), -e.delta)
	}
	return fmt.Sprintf("%s + %d", e.base.SMV(), e.delta)
}

// Offset returns base shifted by a constant. A zero delta returns base
// unchanged.
func Offset(base Expr, delta int) Expr {
	if delta == 0 {
		return base
	}
	return offset{base: base, delta: delta}
}

type compare struct {
	op  string
	lhs Expr
	rhs Expr
}

func (e compare) SMV() string {
	return fmt.Sprintf("(%s %s %s)", e.lhs.SMV(), e.op, e.rhs.SMV())
}

// Eq returns the comparison lhs = rhs.
func Eq(lhs, rhs Expr) Expr {
	return compare{op: "=", lhs: lhs, rhs: rhs}
}

// Geq returns the comparison lhs >= rhs.
func Geq(lhs, rhs Expr) Expr {
	return compare{op: ">=", lhs: lhs, rhs: rhs}
}

// Lt returns the comparison lhs < rhs.
func Lt(lhs, rhs Expr) Expr {
	return compare{op: "<", lhs: lhs, rhs: rhs}
}

type boolLit bool

func (e boolLit) SMV() string {
	if e {
		return "TRUE"
	}
	return "FALSE"
}

// True returns the TRUE constant.
func True() Expr {
	return boolLit(true)
}

// False returns the FALSE constant.
func False() Expr {
	return boolLit(false)
}

type nary struct {
	op    string
	terms []Expr
}

func (e nary) SMV() string {
	parts := make([]string, len(e.terms))
	for i, term := range e.terms {
		parts[i] = term.SMV()
	}
	return "(" + strings.Join(parts, " "+e.op+" ") + ")"
}

// And returns the conjunction of terms. No terms is TRUE, a single term is
// returned as-is.
func And(terms ...Expr) Expr {
	switch len(terms) {
	case 0:
		return True()
	case 1:
		return terms[0]
	}
	return nary{op: "&", terms: terms}
}

// Or returns the disjunction of terms. No terms is FALSE, a single term is
// returned as-is.
func Or(terms ...Expr) Expr {
	switch len(terms) {
	case 0:
		return False()
	case 1:
		return terms[0]
	}
	return nary{op: "|", terms: terms}
}

type negation struct {
	operand Expr
}

func (e negation) SMV() string {
	return "!" + e.operand.SMV()
}

// Not returns the negation of operand. Comparisons and n-ary connectives
// render with their own parentheses, so no extra wrapping is needed.
func Not(operand Expr) Expr {
	return negation{operand: operand}
}
