package charset

import (
	"bytes"
	"fmt"
	"sort"
	"unicode/utf8"
)

type runeSlice []rune

var _ sort.Interface = (runeSlice)(nil)

func (x runeSlice) Len() int           { return len(x) }
func (x runeSlice) Less(i, j int) bool { return x[i] < x[j] }
func (x runeSlice) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

type runeSliceReverse []rune

var _ sort.Interface = (runeSliceReverse)(nil)

func (x runeSliceReverse) Len() int           { return len(x) }
func (x runeSliceReverse) Less(i, j int) bool { return x[i] > x[j] }
func (x runeSliceReverse) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

type rangeSlice []Range

var _ sort.Interface = (rangeSlice)(nil)

func (x rangeSlice) Len() int           { return len(x) }
func (x rangeSlice) Less(i, j int) bool { return x[i].Lo < x[j].Lo }
func (x rangeSlice) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }

// isScalarValue reports whether r is a valid Unicode scalar value, i.e.
// not one of the UTF-16 surrogate code points.
func isScalarValue(r rune) bool {
	return r >= 0 && !(r >= 0xd800 && r <= 0xdfff) && r <= utf8.MaxRune
}

func forEachRune(lo, hi rune, f func(r rune)) {
	for r := lo; r <= hi; r++ {
		if isScalarValue(r) {
			f(r)
		}
	}
}

func forEachUnion(ms []Matcher, f func(r rune)) {
	if len(ms) == 0 {
		return
	}

	chans := make([]chan rune, len(ms))
	for i := range ms {
		ch := make(chan rune)
		m := ms[i]
		go func() {
			m.ForEach(func(r rune) { ch <- r })
			close(ch)
		}()
		chans[i] = ch
	}

	var data []rune
	seen := make(map[rune]struct{})
	for {
		for _, ch := range chans {
			for {
				r, ok := <-ch
				if !ok {
					break
				}
				_, found := seen[r]
				if !found {
					data = append(data, r)
					seen[r] = struct{}{}
					break
				}
			}
		}
		if len(data) == 0 {
			break
		}
		sort.Sort(runeSliceReverse(data))
		i := len(data) - 1
		f(data[i])
		data = data[:i]
	}
}

func forEachIntersection(ms []Matcher, f func(r rune)) {
	if len(ms) == 0 {
		forEachRune(0, utf8.MaxRune, f)
		return
	}
	first := ms[0]
	rest := ms[1:]
	first.ForEach(func(r rune) {
		for _, sub := range rest {
			if !sub.Match(r) {
				return
			}
		}
		f(r)
	})
}

func genericForEach(m Matcher, f func(r rune)) {
	forEachRune(0, utf8.MaxRune, func(r rune) {
		if m.Match(r) {
			f(r)
		}
	})
}

func genericString(m Matcher) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	m.ForEach(func(r rune) {
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&buf, "%q", r)
	})
	buf.WriteByte(']')
	return buf.String()
}
