package emulator

import (
	"errors"
	"iter"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Watch is a starlark boolean expression over the machine registers,
// for example `pc == 12 and r0 < 0`.
type Watch struct {
	Expr string

	env  starlark.StringDict
	eval *starlark.Function
}

// NewWatch compiles a watch over the supplied names, and checks it
// against their current values.
func NewWatch(expr string, names iter.Seq2[string, int32]) (watch *Watch, err error) {
	env := starlark.StringDict{}
	for key, value := range names {
		env[key] = starlark.MakeInt(int(value))
	}

	opts := syntax.FileOptions{}
	eval, err := starlark.ExprFuncOptions(&opts, "watch", expr, env)
	if err != nil {
		err = errors.Join(ErrWatch, err)
		return
	}

	watch = &Watch{
		Expr: expr,
		env:  env,
		eval: eval,
	}

	_, err = watch.Eval(names)
	if err != nil {
		watch = nil
	}

	return
}

// Eval rebinds the names, and evaluates the expression.
func (watch *Watch) Eval(names iter.Seq2[string, int32]) (hit bool, err error) {
	for key, value := range names {
		watch.env[key] = starlark.MakeInt(int(value))
	}

	thread := starlark.Thread{Name: "watch"}
	rc, err := starlark.Call(&thread, watch.eval, nil, nil)
	if err != nil {
		err = errors.Join(ErrWatch, err)
		return
	}

	hit = bool(rc.Truth())
	return
}
