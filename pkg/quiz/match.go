package quiz

import "strings"

// splitOnce returns the text before the first sep and, when sep occurs, the
// text between the first and second sep. Anything after a second sep is ignored.
func splitOnce(s, sep string) (string, *string) {
	parts := strings.SplitN(s, sep, 3)
	if len(parts) == 1 {
		return parts[0], nil
	}
	return parts[0], &parts[1]
}

// IsCorrect reports whether answer is an accepted surface form of reference.
//
// A reference with a space is "left right" (particle and stem, or article and
// noun); exactly one side may carry a "/" alternative, e.g. "der/die Flasche"
// or "ab fahren/fährt". When both or neither side carries one, only the literal
// reference is accepted. Without a space, "a/b" accepts a or b. Comparison is
// exact: no trimming or case folding.
func IsCorrect(answer, reference string) bool {
	if left, right, ok := strings.Cut(reference, " "); ok {
		l1, l2 := splitOnce(left, "/")
		r1, r2 := splitOnce(right, "/")

		var opt1, opt2 string
		switch {
		case l2 != nil && r2 == nil:
			opt1, opt2 = l1+" "+right, *l2+" "+right
		case l2 == nil && r2 != nil:
			opt1, opt2 = left+" "+r1, left+" "+*r2
		default:
			opt1, opt2 = reference, reference
		}
		return answer == opt1 || answer == opt2
	}

	opt1, opt2 := splitOnce(reference, "/")
	return answer == opt1 || (opt2 != nil && answer == *opt2)
}
