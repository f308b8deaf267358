package semantic

import (
	"mica/internal/ast"
	"mica/internal/errors"
	"mica/internal/sast"
	"mica/internal/types"
)

// BindKind classifies where a (type, name) binding was declared. Identifier
// lookup walks the kinds in a fixed precedence order, so a local may shadow
// a formal and a formal may shadow a global.
type BindKind int

const (
	GlobalBind BindKind = iota
	FormalBind
	LocalBind
	StructFieldBind
)

var bindKindNames = [...]string{"global", "formal", "local", "struct field"}

func (k BindKind) String() string { return bindKindNames[k] }

// lookupOrder is the identifier resolution precedence.
var lookupOrder = [...]BindKind{LocalBind, FormalBind, GlobalBind}

// FuncSig is a callable signature: enough for call-site checking, distinct
// from the checked Function artifact.
type FuncSig struct {
	Return  types.Type
	Name    string
	Formals []sast.Bind
	// Variadic marks printf, the sole variadic form. Variadic calls skip
	// arity checking and only verify the format argument's type.
	Variadic bool
}

// Env is the mutable symbol environment of one analysis run: variable
// bindings keyed by (name, kind), the function signature table, and the
// struct layout table. It is never shared between runs.
type Env struct {
	vars    map[BindKind]map[string]types.Type
	funcs   map[string]*FuncSig
	structs map[string]*sast.StructDef
}

// NewEnv creates an environment with the built-in functions pre-seeded, so
// user declarations that collide with a builtin fail as redeclarations.
func NewEnv() *Env {
	e := &Env{
		vars: map[BindKind]map[string]types.Type{
			GlobalBind: {},
			FormalBind: {},
			LocalBind:  {},
		},
		funcs:   make(map[string]*FuncSig),
		structs: make(map[string]*sast.StructDef),
	}
	for _, sig := range builtinSignatures() {
		e.funcs[sig.Name] = sig
	}
	return e
}

// PushScope opens a function-local extension of the environment and returns
// the restore function. Callers defer the restore so it runs on every exit
// path, including early error returns; a failed function must not leak its
// formals or locals into the checking of a sibling.
func (e *Env) PushScope() func() {
	savedFormals := e.vars[FormalBind]
	savedLocals := e.vars[LocalBind]
	e.vars[FormalBind] = make(map[string]types.Type)
	e.vars[LocalBind] = make(map[string]types.Type)
	return func() {
		e.vars[FormalBind] = savedFormals
		e.vars[LocalBind] = savedLocals
	}
}

// Bind registers a declaration of the given kind. Void-typed and duplicate
// bindings are illegal.
func (e *Env) Bind(kind BindKind, b *ast.Bind) *errors.CompilerError {
	if types.Equal(b.Type, types.Void) {
		return errors.IllegalVoidBinding(kind.String(), b.Name, b.Pos)
	}
	if _, exists := e.vars[kind][b.Name]; exists {
		return errors.IllegalDuplicateBinding(kind.String(), b.Name, b.Pos)
	}
	e.vars[kind][b.Name] = b.Type
	return nil
}

// Lookup resolves an identifier by walking binding kinds in precedence
// order: local, then formal, then global.
func (e *Env) Lookup(name string) (types.Type, bool) {
	for _, kind := range lookupOrder {
		if t, ok := e.vars[kind][name]; ok {
			return t, true
		}
	}
	return nil, false
}

// RegisterFunc adds a signature to the function table.
func (e *Env) RegisterFunc(sig *FuncSig, pos ast.Position) *errors.CompilerError {
	if _, exists := e.funcs[sig.Name]; exists {
		return errors.Redeclaration(sig.Name, pos)
	}
	e.funcs[sig.Name] = sig
	return nil
}

// Func looks up a function signature by name.
func (e *Env) Func(name string) (*FuncSig, bool) {
	sig, ok := e.funcs[name]
	return sig, ok
}

// RegisterStruct validates a struct declaration's fields and stores the
// checked layout. Field order in the layout equals declaration order, which
// the field offsets produced during access checking index into.
func (e *Env) RegisterStruct(decl *ast.StructDecl) (*sast.StructDef, *errors.CompilerError) {
	def := &sast.StructDef{Name: decl.Name}
	seen := make(map[string]bool, len(decl.Fields))
	for _, f := range decl.Fields {
		if types.Equal(f.Type, types.Void) {
			return nil, errors.IllegalVoidBinding(StructFieldBind.String(), f.Name, f.Pos)
		}
		if seen[f.Name] {
			return nil, errors.IllegalDuplicateBinding(StructFieldBind.String(), f.Name, f.Pos)
		}
		seen[f.Name] = true
		def.Fields = append(def.Fields, sast.Bind{Type: f.Type, Name: f.Name})
	}
	e.structs[decl.Name] = def
	return def, nil
}

// Struct looks up a checked struct layout by name.
func (e *Env) Struct(name string) (*sast.StructDef, bool) {
	def, ok := e.structs[name]
	return def, ok
}
