package semantic

import (
	"mica/internal/sast"
	"mica/internal/types"
)

// builtinSignatures returns the functions every Mica program can call
// without declaring them. They are seeded into the function table before
// any user declaration is processed.
func builtinSignatures() []*FuncSig {
	return []*FuncSig{
		{
			Name:     "printf",
			Return:   types.Int,
			Formals:  []sast.Bind{{Type: types.CharPointer(), Name: "format"}},
			Variadic: true,
		},
		{
			Name:    "printbig",
			Return:  types.Void,
			Formals: []sast.Bind{{Type: types.Int, Name: "n"}},
		},
		{
			Name:    "malloc",
			Return:  types.VoidPointer(),
			Formals: []sast.Bind{{Type: types.Int, Name: "size"}},
		},
		{
			Name:    "free",
			Return:  types.Void,
			Formals: []sast.Bind{{Type: types.VoidPointer(), Name: "ptr"}},
		},
	}
}
