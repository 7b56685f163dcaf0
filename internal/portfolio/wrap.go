package portfolio

// Wrap maps any index onto [0, n) cyclically, so prev/next navigation
// over an item's images never runs off either end. Returns 0 when n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Next returns the image index after i, wrapping to the first.
func Next(i, n int) int { return Wrap(i+1, n) }

// Prev returns the image index before i, wrapping to the last.
func Prev(i, n int) int { return Wrap(i-1, n) }
