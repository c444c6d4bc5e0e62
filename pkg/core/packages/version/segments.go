package version

import "strconv"

// manipulateSegments builds a four-segment version string from the numeric
// groups of a range match. Groups beyond position are replaced with pad;
// a non-zero increment is applied at position, borrowing leftward when a
// segment turns negative. ok is false when the borrow walks off the first
// segment, meaning no representable bound exists.
func manipulateSegments(match []string, position, increment int, pad string) (result string, ok bool) {
	var segments [5]string
	for i := 1; i <= 4 && i < len(match); i++ {
		segments[i] = match[i]
	}

	for i := 4; i > 0; i-- {
		if i > position {
			segments[i] = pad
		} else if i == position && increment != 0 {
			value, err := strconv.Atoi(segments[i])
			if err != nil {
				return "", false
			}
			value += increment
			if value < 0 {
				segments[i] = pad
				position--
				if i == 1 {
					return "", false
				}
			} else {
				segments[i] = strconv.Itoa(value)
			}
		}
	}
	return segments[1] + "." + segments[2] + "." + segments[3] + "." + segments[4], true
}
