package eqn

import (
	"reflect"
	"testing"
)

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"scalar", C(2.5), "2.5"},
		{"param", Param("Separator porosity"), "Separator porosity"},
		{"sum", Add(C(1), C(2), C(3)), "((1 + 2) + 3)"},
		{"quotient", DivBy(Var("Q"), C(3600)), "(Q / 3600)"},
		{"power", Pow(Param("Separator porosity"), C(1.5)), "(Separator porosity ^ 1.5)"},
		{"neg", Neg(Var("V")), "-(V)"},
		{"grad", Grad(Var("phi")), "grad(phi)"},
		{"div", Divergence(Grad(Var("phi"))), "div(grad(phi))"},
		{"boundary", BoundaryValue(Var("phi"), Right), "boundary(phi, right)"},
		{"function", Function("Electrolyte conductivity [S.m-1]", Var("c"), T()), "Electrolyte conductivity [S.m-1](c, t)"},
		{"concat", Concat(Var("a"), Var("b")), "concat(a, b)"},
		{"broadcast", Broadcast(C(0), Separator), "broadcast(0, separator)"},
		{"restrict", Restrict(Var("c"), NegativeElectrode), "restrict(c, negative electrode)"},
	}

	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParams(t *testing.T) {
	e := Add(
		Mul(Param("b"), Var("x")),
		Function("f", Var("x"), Param("a")),
		Param("a"),
	)

	got := Params(e)
	want := []string{"a", "b", "f"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Params: got %v, want %v", got, want)
	}
}

func TestVars(t *testing.T) {
	e := Sub(BoundaryValue(Var("phi_p"), Right), BoundaryValue(Var("phi_n"), Left))

	got := Vars(e)
	want := []string{"phi_n", "phi_p"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vars: got %v, want %v", got, want)
	}
}

func TestWalkStopsDescent(t *testing.T) {
	e := Mul(Param("a"), Grad(Param("b")))

	var visited []string
	Walk(e, func(n Expr) bool {
		if _, ok := n.(GradExpr); ok {
			visited = append(visited, "grad")
			return false
		}
		if p, ok := n.(ParamRef); ok {
			visited = append(visited, p.Name)
		}
		return true
	})

	for _, v := range visited {
		if v == "b" {
			t.Error("walk descended below a node that returned false")
		}
	}
}

func TestWalkNil(t *testing.T) {
	Walk(nil, func(Expr) bool {
		t.Error("callback invoked for nil expression")
		return true
	})
}
