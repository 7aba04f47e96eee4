package engine

// gateQueue is a ring-buffer deque of gates ordered oldest first.
// Push to the back and pop from the front are amortized O(1).
type gateQueue struct {
	buf  []Gate
	head int
	n    int
}

func (q *gateQueue) len() int {
	return q.n
}

// at returns a pointer to the i-th gate counted from the front.
func (q *gateQueue) at(i int) *Gate {
	return &q.buf[(q.head+i)%len(q.buf)]
}

func (q *gateQueue) front() *Gate {
	return q.at(0)
}

func (q *gateQueue) back() *Gate {
	return q.at(q.n - 1)
}

func (q *gateQueue) pushBack(g Gate) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = g
	q.n++
}

func (q *gateQueue) popFront() Gate {
	g := q.buf[q.head]
	q.buf[q.head] = Gate{}
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return g
}

func (q *gateQueue) clear() {
	for i := 0; i < q.n; i++ {
		*q.at(i) = Gate{}
	}
	q.head = 0
	q.n = 0
}

// grow doubles capacity and unwraps the ring so head is at index 0.
func (q *gateQueue) grow() {
	size := len(q.buf) * 2
	if size == 0 {
		size = 8
	}
	buf := make([]Gate, size)
	q.appendTo(buf[:0])
	q.buf = buf
	q.head = 0
}

// copyFrom makes q an ordered copy of o without sharing storage.
func (q *gateQueue) copyFrom(o *gateQueue) {
	if len(q.buf) < o.n {
		q.buf = make([]Gate, len(o.buf))
	}
	q.head = 0
	q.n = o.n
	for i := 0; i < o.n; i++ {
		q.buf[i] = *o.at(i)
	}
}

// appendTo appends the gates in order to dst.
func (q *gateQueue) appendTo(dst []Gate) []Gate {
	for i := 0; i < q.n; i++ {
		dst = append(dst, *q.at(i))
	}
	return dst
}
