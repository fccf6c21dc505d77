// Copyright (c) 2026 blairtcg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package splitlog

import "time"

var _smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

func appendTwo(b []byte, v int) []byte {
	i := uint(v) * 2
	return append(b, _smallsString[i], _smallsString[i+1])
}

// appendInt appends an integer to a byte slice, zero padded to width.
func appendInt(b []byte, v int, width int) []byte {
	u := uint(v)
	if width == 2 && u < 100 {
		return appendTwo(b, v)
	}

	var buf [20]byte
	i := len(buf)
	for u > 0 || width > 0 {
		i--
		q := u / 10
		buf[i] = byte('0' + u - q*10)
		u = q
		width--
	}
	return append(b, buf[i:]...)
}

// appendDate appends t as YYYY<sep>MM<sep>DD.
func appendDate(b []byte, t time.Time, sep byte) []byte {
	year, month, day := t.Date()
	if year >= 0 && year < 10000 {
		b = appendTwo(b, year/100)
		b = appendTwo(b, year%100)
	} else {
		b = appendInt(b, year, 4)
	}
	b = append(b, sep)
	b = appendTwo(b, int(month))
	b = append(b, sep)
	return appendTwo(b, day)
}

// appendTime formats t with layout and appends it to b.
//
// DefaultTimeFormat is encoded by hand, since it is used for every line; any
// other layout goes through time.AppendFormat.
func appendTime(b []byte, t time.Time, layout string) []byte {
	if layout != DefaultTimeFormat {
		return t.AppendFormat(b, layout)
	}

	// "2006-01-02 15:04:05.000000"
	b = appendDate(b, t, '-')
	b = append(b, ' ')

	hour, min, sec := t.Clock()
	b = appendTwo(b, hour)
	b = append(b, ':')
	b = appendTwo(b, min)
	b = append(b, ':')
	b = appendTwo(b, sec)
	b = append(b, '.')
	return appendInt(b, t.Nanosecond()/1000, 6)
}
