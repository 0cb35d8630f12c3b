package rope

import "strings"

// Tree fan-out bounds.
const (
	maxChildren      = 8
	maxChunksPerLeaf = 4
)

// node is a vertex of the rope B+ tree. Leaves (height 0) hold chunks;
// internal nodes hold children. Nodes are immutable once linked into a
// rope; edits produce fresh nodes and share untouched subtrees.
type node struct {
	height   uint8
	sum      summary
	children []*node // internal nodes only
	chunks   []chunk // leaves only
}

func newLeaf(chunks []chunk) *node {
	n := &node{chunks: chunks}
	for _, c := range chunks {
		n.sum = n.sum.add(c.sum)
	}
	return n
}

func newInternal(children []*node) *node {
	if len(children) == 0 {
		return newLeaf(nil)
	}
	n := &node{
		height:   children[0].height + 1,
		children: children,
	}
	for _, c := range children {
		n.sum = n.sum.add(c.sum)
	}
	return n
}

func (n *node) leaf() bool { return n.height == 0 }

func (n *node) appendTo(sb *strings.Builder) {
	if n.leaf() {
		for _, c := range n.chunks {
			sb.WriteString(c.data)
		}
		return
	}
	for _, child := range n.children {
		child.appendTo(sb)
	}
}

// appendRange writes the text in [start, end) to sb. Bounds are
// relative to this subtree.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}
	if n.leaf() {
		off := 0
		for _, c := range n.chunks {
			chunkEnd := off + c.len()
			if chunkEnd > start && off < end {
				lo, hi := 0, c.len()
				if start > off {
					lo = start - off
				}
				if end < chunkEnd {
					hi = end - off
				}
				sb.WriteString(c.data[lo:hi])
			}
			off = chunkEnd
			if off >= end {
				break
			}
		}
		return
	}
	off := 0
	for _, child := range n.children {
		childEnd := off + child.sum.bytes
		if childEnd > start && off < end {
			lo, hi := 0, child.sum.bytes
			if start > off {
				lo = start - off
			}
			if end < childEnd {
				hi = end - off
			}
			child.appendRange(sb, lo, hi)
		}
		off = childEnd
		if off >= end {
			break
		}
	}
}

// byteAt returns the byte at offset within the subtree.
func (n *node) byteAt(offset int) byte {
	for !n.leaf() {
		for _, child := range n.children {
			if offset < child.sum.bytes {
				n = child
				break
			}
			offset -= child.sum.bytes
		}
	}
	for _, c := range n.chunks {
		if offset < c.len() {
			return c.data[offset]
		}
		offset -= c.len()
	}
	return 0
}

// split divides the subtree at a byte offset into two trees.
func (n *node) split(offset int) (*node, *node) {
	if offset <= 0 {
		return newLeaf(nil), n
	}
	if offset >= n.sum.bytes {
		return n, newLeaf(nil)
	}

	if n.leaf() {
		var left, right []chunk
		off := 0
		for _, c := range n.chunks {
			switch {
			case off+c.len() <= offset:
				left = append(left, c)
			case off >= offset:
				right = append(right, c)
			default:
				l, r := c.split(offset - off)
				if !l.empty() {
					left = append(left, l)
				}
				if !r.empty() {
					right = append(right, r)
				}
			}
			off += c.len()
		}
		return newLeaf(left), newLeaf(right)
	}

	var left, right []*node
	off := 0
	for _, child := range n.children {
		switch {
		case off+child.sum.bytes <= offset:
			left = append(left, child)
		case off >= offset:
			right = append(right, child)
		default:
			l, r := child.split(offset - off)
			if l.sum.bytes > 0 {
				left = append(left, l)
			}
			if r.sum.bytes > 0 {
				right = append(right, r)
			}
		}
		off += child.sum.bytes
	}
	return fromChildren(left), fromChildren(right)
}

// fromChildren builds a balanced tree over an ordered child list.
func fromChildren(children []*node) *node {
	switch {
	case len(children) == 0:
		return newLeaf(nil)
	case len(children) == 1:
		return children[0]
	case len(children) <= maxChildren:
		return newInternal(children)
	}
	var parents []*node
	for i := 0; i < len(children); i += maxChildren {
		end := i + maxChildren
		if end > len(children) {
			end = len(children)
		}
		parents = append(parents, newInternal(children[i:end]))
	}
	return fromChildren(parents)
}

// concat joins two subtrees, rebalancing as needed.
func concatNodes(left, right *node) *node {
	if left == nil || left.sum.bytes == 0 {
		if right == nil {
			return newLeaf(nil)
		}
		return right
	}
	if right == nil || right.sum.bytes == 0 {
		return left
	}

	if left.leaf() && right.leaf() {
		return concatLeaves(left, right)
	}

	for left.height < right.height {
		left = newInternal([]*node{left})
	}
	for right.height < left.height {
		right = newInternal([]*node{right})
	}

	if left.leaf() {
		return concatLeaves(left, right)
	}
	all := make([]*node, 0, len(left.children)+len(right.children))
	all = append(all, left.children...)
	all = append(all, right.children...)
	return fromChildren(all)
}

func concatLeaves(left, right *node) *node {
	total := len(left.chunks) + len(right.chunks)
	if total <= maxChunksPerLeaf {
		chunks := make([]chunk, 0, total)
		chunks = append(chunks, left.chunks...)
		chunks = append(chunks, right.chunks...)
		return newLeaf(chunks)
	}
	return newInternal([]*node{left, right})
}

// byteAfterNewline returns the offset immediately after the nth newline
// (1-indexed) in the subtree. The caller guarantees n is within the
// subtree's newline count.
func (n *node) byteAfterNewline(nth int) int {
	if n.leaf() {
		acc := 0
		for _, c := range n.chunks {
			if c.sum.newlines >= nth {
				idx := nthNewline(c.data, nth)
				return acc + idx + 1
			}
			nth -= c.sum.newlines
			acc += c.len()
		}
		return acc
	}
	acc := 0
	for _, child := range n.children {
		if child.sum.newlines >= nth {
			return acc + child.byteAfterNewline(nth)
		}
		nth -= child.sum.newlines
		acc += child.sum.bytes
	}
	return acc
}

// newlinesBefore counts newlines in [0, offset) of the subtree.
func (n *node) newlinesBefore(offset int) int {
	if offset >= n.sum.bytes {
		return n.sum.newlines
	}
	if offset <= 0 {
		return 0
	}
	if n.leaf() {
		count := 0
		for _, c := range n.chunks {
			if offset < c.len() {
				return count + strings.Count(c.data[:offset], "\n")
			}
			count += c.sum.newlines
			offset -= c.len()
		}
		return count
	}
	count := 0
	for _, child := range n.children {
		if offset < child.sum.bytes {
			return count + child.newlinesBefore(offset)
		}
		count += child.sum.newlines
		offset -= child.sum.bytes
	}
	return count
}

// nthNewline returns the byte index of the nth newline (1-indexed) in s.
func nthNewline(s string, n int) int {
	idx := 0
	for n > 0 {
		rel := strings.IndexByte(s[idx:], '\n')
		if rel < 0 {
			return -1
		}
		idx += rel
		n--
		if n == 0 {
			return idx
		}
		idx++
	}
	return -1
}
