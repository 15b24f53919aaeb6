package builtin

import "github.com/sandfs/sandsh/internal/verb"

// RegisterAll adds every built-in verb handler to the registry.
func RegisterAll(r *verb.Registry) {
	r.Register(&Cat{})
	r.Register(&Cd{})
	r.Register(&Clear{})
	r.Register(&Cp{})
	r.Register(&Df{})
	r.Register(&Diff{})
	r.Register(&Echo{})
	r.Register(&Export{})
	r.Register(&Grep{})
	r.Register(&Head{})
	r.Register(NewHelp(r))
	r.Register(&Import{})
	r.Register(&Ls{})
	r.Register(&Mkdir{})
	r.Register(&Mv{})
	r.Register(&Pwd{})
	r.Register(&Read{})
	r.Register(&Reset{})
	r.Register(&Rm{})
	r.Register(&Rmdir{})
	r.Register(&Sort{})
	r.Register(&Tail{})
	r.Register(&Touch{})
	r.Register(&Tree{})
	r.Register(&Uniq{})
	r.Register(&Wc{})
	r.Register(&Write{})
}
