package store

import "strings"

// Resolve turns a user-supplied path into the store's internal form: a
// forward-slash relative path with no leading slash. A leading slash makes
// the argument absolute; otherwise it is resolved against cwd. ".", ".." and
// empty segments are folded away, and ".." above the root clamps to the root
// rather than erroring.
func Resolve(cwd, arg string) string {
	arg = strings.TrimSpace(arg)

	var segs []string
	if !strings.HasPrefix(arg, "/") && cwd != "" {
		segs = strings.Split(cwd, "/")
	}

	for _, s := range strings.Split(arg, "/") {
		switch s {
		case "", ".":
			// skip
		case "..":
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
		default:
			segs = append(segs, s)
		}
	}
	return strings.Join(segs, "/")
}

// Parent returns the directory portion of a path ("" for top-level entries).
func Parent(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}

// Base returns the last path segment.
func Base(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	return path[i+1:]
}

// Under reports whether path lies strictly under prefix. The root prefix ""
// contains every non-empty path.
func Under(path, prefix string) bool {
	if prefix == "" {
		return path != ""
	}
	return strings.HasPrefix(path, prefix+"/")
}
