package pathargs

import "iter"

// Occurrences yields the indexes at which name appears in args, in ascending
// order. Each search restarts right after the previous hit and reads the live
// slice, so values rewritten between steps are seen as rewritten.
func Occurrences(name string, args []string) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < len(args); i++ {
			if args[i] != name {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
