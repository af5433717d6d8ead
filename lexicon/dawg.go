package lexicon

import (
	"encoding/binary"
	"fmt"
	"iter"
	"unicode"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
)

type dawgNode struct {
	id        uint32
	accepting bool
	letters   []rune
	children  []*dawgNode

	// Construction bookkeeping.
	incoming   int
	registered bool
	sig        uint64
}

func (n *dawgNode) IsAccepting() bool {
	return n.accepting
}

func (n *dawgNode) child(letter rune) *dawgNode {
	for i, l := range n.letters {
		if l == letter {
			return n.children[i]
		}
	}
	return nil
}

func (n *dawgNode) Next(letter rune) Node {
	if c := n.child(letter); c != nil {
		return c
	}
	return nil
}

func (n *dawgNode) Children() iter.Seq2[rune, Node] {
	return func(yield func(rune, Node) bool) {
		for i, l := range n.letters {
			if !yield(l, n.children[i]) {
				return
			}
		}
	}
}

// replaceChild repoints the transition on letter from old to repl.
func (n *dawgNode) replaceChild(letter rune, old, repl *dawgNode) {
	for i, l := range n.letters {
		if l == letter {
			if n.children[i] != old {
				panic(fmt.Sprintf("dawg: transition %c does not lead to the expected node", letter))
			}
			n.children[i] = repl
			old.incoming--
			repl.incoming++
			return
		}
	}
	panic(fmt.Sprintf("dawg: no transition on %c to replace", letter))
}

// equivalent returns whether both nodes accept the same language. The
// children are already canonical, so comparing them by identity is enough.
func (n *dawgNode) equivalent(o *dawgNode) bool {
	if n.accepting != o.accepting || len(n.letters) != len(o.letters) {
		return false
	}
	for i := range n.letters {
		if n.letters[i] != o.letters[i] || n.children[i] != o.children[i] {
			return false
		}
	}
	return true
}

// DawgBuilder builds a minimized acyclic automaton one word at a time.
//
// Words must be inserted in ascending order, and Build rejects unsorted
// lists with ErrUnsortedWordList. Out-of-order inserts still give a correct
// automaton because Insert clones any shared path before extending it, but
// it is not minimal. Callers holding an unsorted list should sort it or use
// a Trie.
type DawgBuilder struct {
	name     string
	root     *dawgNode
	register map[uint64][]*dawgNode
	prev     []rune
	nextID   uint32
	numWords int
	sigbuf   []byte
	finished bool
}

func NewDawgBuilder(name string) *DawgBuilder {
	b := &DawgBuilder{
		name:     name,
		register: make(map[uint64][]*dawgNode),
	}
	b.root = b.newNode()
	return b
}

func (b *DawgBuilder) newNode() *dawgNode {
	n := &dawgNode{id: b.nextID}
	b.nextID++
	return n
}

func (b *DawgBuilder) addEdge(from *dawgNode, letter rune) *dawgNode {
	c := b.newNode()
	// Suffix letters are appended in order, and a new branch off an
	// existing node must sort after its siblings for sorted input. Keep
	// the slice ordered anyway so unsorted input stays well formed.
	idx := len(from.letters)
	for idx > 0 && from.letters[idx-1] > letter {
		idx--
	}
	from.letters = append(from.letters, 0)
	from.children = append(from.children, nil)
	copy(from.letters[idx+1:], from.letters[idx:])
	copy(from.children[idx+1:], from.children[idx:])
	from.letters[idx] = letter
	from.children[idx] = c
	c.incoming = 1
	return c
}

// Insert adds a word to the automaton.
func (b *DawgBuilder) Insert(word string) {
	if b.finished {
		panic("dawg: insert after Finish")
	}
	w := []rune(word)
	for i, r := range w {
		w[i] = unicode.ToUpper(r)
	}
	if len(w) == 0 || search(b.root, string(w)) {
		return
	}
	if len(b.prev) > 0 {
		i := commonPrefixLen(b.prev, w)
		if i < len(b.prev) {
			b.minimize(b.nodeAt(b.prev[:i]), b.prev[i:])
		}
	}
	b.addString(w)
	b.prev = w
	b.numWords++
}

func commonPrefixLen(a, c []rune) int {
	i := 0
	for i < len(a) && i < len(c) && a[i] == c[i] {
		i++
	}
	return i
}

func (b *DawgBuilder) nodeAt(prefix []rune) *dawgNode {
	n := b.root
	for _, r := range prefix {
		n = n.child(r)
		if n == nil {
			panic(fmt.Sprintf("dawg: prefix %q missing from automaton", string(prefix)))
		}
	}
	return n
}

func (b *DawgBuilder) addString(word []rune) {
	path := []*dawgNode{b.root}
	for _, r := range word {
		c := path[len(path)-1].child(r)
		if c == nil {
			break
		}
		path = append(path, c)
	}
	plen := len(path) - 1

	// Find the first node on the prefix path that is shared with other
	// words. Everything before it belongs to this path alone.
	fork := -1
	for d := 1; d <= plen; d++ {
		if path[d].incoming > 1 {
			fork = d
			break
		}
	}
	private := plen
	if fork != -1 {
		private = fork - 1
	}
	for d := 1; d <= private; d++ {
		b.unregister(path[d])
	}
	if fork != -1 {
		b.clonePath(path, word, fork)
	}

	last := path[plen]
	if plen == len(word) {
		last.accepting = true
		return
	}
	for _, r := range word[plen:] {
		last = b.addEdge(last, r)
	}
	last.accepting = true
}

// clonePath replaces path[fork:] with private copies so that the new word
// can be attached without changing the words that share those nodes.
func (b *DawgBuilder) clonePath(path []*dawgNode, word []rune, fork int) {
	parent := path[fork-1]
	for d := fork; d < len(path); d++ {
		orig := path[d]
		clone := b.newNode()
		clone.accepting = orig.accepting
		clone.letters = append([]rune(nil), orig.letters...)
		clone.children = append([]*dawgNode(nil), orig.children...)
		for _, c := range clone.children {
			c.incoming++
		}
		parent.replaceChild(word[d-1], orig, clone)
		path[d] = clone
		parent = clone
	}
	log.Debug().Str("word", string(word)).Int("fork", fork).Msg("cloned shared path")
}

// minimize folds the nodes along suffix, below parent, into equivalent
// registered nodes, deepest first.
func (b *DawgBuilder) minimize(parent *dawgNode, suffix []rune) {
	letter := suffix[0]
	child := parent.child(letter)
	if child == nil {
		panic(fmt.Sprintf("dawg: no transition on %c while minimizing", letter))
	}
	if len(suffix) > 1 {
		b.minimize(child, suffix[1:])
	}
	if child.registered {
		return
	}
	sig := b.signature(child)
	if eq := b.lookup(sig, child); eq != nil {
		parent.replaceChild(letter, child, eq)
		b.release(child)
		return
	}
	child.sig = sig
	child.registered = true
	b.register[sig] = append(b.register[sig], child)
}

func (b *DawgBuilder) signature(n *dawgNode) uint64 {
	buf := b.sigbuf[:0]
	if n.accepting {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	for i, l := range n.letters {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(l))
		buf = binary.LittleEndian.AppendUint32(buf, n.children[i].id)
	}
	b.sigbuf = buf
	return xxhash.Sum64(buf)
}

func (b *DawgBuilder) lookup(sig uint64, n *dawgNode) *dawgNode {
	for _, cand := range b.register[sig] {
		if cand != n && cand.equivalent(n) {
			return cand
		}
	}
	return nil
}

func (b *DawgBuilder) unregister(n *dawgNode) {
	if !n.registered {
		return
	}
	bucket := b.register[n.sig]
	for i, cand := range bucket {
		if cand == n {
			bucket[i] = bucket[len(bucket)-1]
			bucket = bucket[:len(bucket)-1]
			if len(bucket) == 0 {
				delete(b.register, n.sig)
			} else {
				b.register[n.sig] = bucket
			}
			n.registered = false
			return
		}
	}
	panic(fmt.Sprintf("dawg: node %d is marked registered but missing from the register", n.id))
}

// release drops a node that was folded into an equivalent one.
func (b *DawgBuilder) release(n *dawgNode) {
	if n.incoming != 0 {
		panic(fmt.Sprintf("dawg: released node %d still has %d incoming transitions", n.id, n.incoming))
	}
	for _, c := range n.children {
		c.incoming--
		if c.incoming < 0 {
			panic(fmt.Sprintf("dawg: node %d has a negative incoming count", c.id))
		}
	}
}

// Finish minimizes the last word and returns the finished automaton. The
// builder can not be used afterwards.
func (b *DawgBuilder) Finish() *Dawg {
	if len(b.prev) > 0 {
		b.minimize(b.root, b.prev)
	}
	b.finished = true
	d := &Dawg{
		name:     b.name,
		root:     b.root,
		numWords: b.numWords,
		numNodes: countNodes(b.root),
	}
	log.Debug().Str("lexicon", b.name).Int("words", d.numWords).
		Int("nodes", d.numNodes).Int("created", int(b.nextID)).Msg("built dawg")
	b.register = nil
	return d
}

func countNodes(root *dawgNode) int {
	seen := map[*dawgNode]bool{root: true}
	stack := []*dawgNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range n.children {
			if !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	return len(seen)
}

// Dawg is a minimized acyclic automaton: a trie in which identical suffix
// subtrees are shared.
type Dawg struct {
	name     string
	root     *dawgNode
	numNodes int
	numWords int
}

func (d *Dawg) Name() string { return d.name }

func (d *Dawg) Root() Node { return d.root }

func (d *Dawg) Search(word string) bool {
	return search(d.root, word)
}

func (d *Dawg) Transition(from Node, word string) Node {
	return transition(d.root, from, word)
}

func (d *Dawg) IsAccepting(n Node) bool {
	return isAccepting(n)
}

func (d *Dawg) Children(n Node) iter.Seq2[rune, Node] {
	return children(n)
}

func (d *Dawg) NodeCount() int { return d.numNodes }

func (d *Dawg) WordCount() int { return d.numWords }
