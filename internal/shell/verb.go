package shell

import "strings"

// aliases maps every accepted spelling, canonical names included, to its
// canonical verb. The table is fixed; it is not user-extensible.
var aliases = map[string]Verb{
	"help":     VerbHelp,
	"man":      VerbHelp,
	"commands": VerbHelp,

	"ls":             VerbLs,
	"list":           VerbLs,
	"dir":            VerbLs,
	"list-directory": VerbLs,

	"read": VerbRead,
	"open": VerbRead,
	"view": VerbRead,

	"cat":         VerbCat,
	"concat":      VerbCat,
	"concatenate": VerbCat,
	"type":        VerbCat,

	"mkdir":          VerbMkdir,
	"md":             VerbMkdir,
	"make-directory": VerbMkdir,

	"touch":        VerbTouch,
	"create":       VerbTouch,
	"create-empty": VerbTouch,

	"rm":     VerbRm,
	"remove": VerbRm,
	"delete": VerbRm,
	"del":    VerbRm,

	"rmdir":            VerbRmdir,
	"rd":               VerbRmdir,
	"remove-directory": VerbRmdir,

	"mv":     VerbMv,
	"move":   VerbMv,
	"rename": VerbMv,

	"cp":   VerbCp,
	"copy": VerbCp,

	"pwd":                     VerbPwd,
	"print-working-directory": VerbPwd,

	"cd":               VerbCd,
	"chdir":            VerbCd,
	"change-directory": VerbCd,

	"clear":        VerbClear,
	"cls":          VerbClear,
	"clear-screen": VerbClear,

	"tree": VerbTree,

	"head":  VerbHead,
	"first": VerbHead,

	"tail": VerbTail,
	"last": VerbTail,

	"grep":   VerbGrep,
	"search": VerbGrep,
	"find":   VerbGrep,
	"match":  VerbGrep,

	"wc":         VerbWc,
	"count":      VerbWc,
	"word-count": VerbWc,

	"diff":    VerbDiff,
	"compare": VerbDiff,

	"sort": VerbSort,

	"uniq":        VerbUniq,
	"dedup":       VerbUniq,
	"deduplicate": VerbUniq,

	"echo":  VerbEcho,
	"print": VerbEcho,

	"write": VerbWrite,
	"save":  VerbWrite,

	"import": VerbImport,
	"upload": VerbImport,

	"export":   VerbExport,
	"download": VerbExport,

	"df":           VerbDf,
	"storage":      VerbDf,
	"storage-info": VerbDf,
	"quota":        VerbDf,

	"reset":         VerbReset,
	"reset-all":     VerbReset,
	"factory-reset": VerbReset,
}

// Lookup resolves a word to its canonical verb. Resolution is total, pure
// and case-insensitive.
func Lookup(word string) (Verb, bool) {
	v, ok := aliases[strings.ToLower(word)]
	return v, ok
}

// Verbs returns every canonical verb, sorted by name.
func Verbs() []Verb {
	return []Verb{
		VerbCat, VerbCd, VerbClear, VerbCp, VerbDf, VerbDiff, VerbEcho,
		VerbExport, VerbGrep, VerbHead, VerbHelp, VerbImport, VerbLs,
		VerbMkdir, VerbMv, VerbPwd, VerbRead, VerbReset, VerbRm, VerbRmdir,
		VerbSort, VerbTail, VerbTouch, VerbTree, VerbUniq, VerbWc, VerbWrite,
	}
}

// requiresSource holds the verbs that, as the first stage of a pipeline,
// must name their own input file: nothing precedes them to pipe from.
var requiresSource = map[Verb]bool{
	VerbCat:  true,
	VerbGrep: true,
	VerbRead: true,
}
