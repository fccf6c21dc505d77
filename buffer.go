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

import "sync"

// maxPooledBuffer keeps one oversized message from pinning memory in the pool.
const maxPooledBuffer = 64 * 1024

// buffer is a pooled byte buffer used to assemble one line.
type buffer struct {
	B []byte
}

// bufferPool hands out buffers whose initial capacity is the configured
// LogBufSize.
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool(size int) *bufferPool {
	p := &bufferPool{}
	p.pool.New = func() any {
		return &buffer{B: make([]byte, 0, size)}
	}
	return p
}

func (p *bufferPool) get() *buffer {
	return p.pool.Get().(*buffer)
}

func (p *bufferPool) put(b *buffer) {
	if cap(b.B) > maxPooledBuffer {
		return
	}
	b.Reset()
	p.pool.Put(b)
}

func (b *buffer) Reset() {
	b.B = b.B[:0]
}

func (b *buffer) WriteString(s string) {
	b.B = append(b.B, s...)
}

func (b *buffer) WriteByte(c byte) {
	b.B = append(b.B, c)
}
