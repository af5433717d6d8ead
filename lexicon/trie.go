package lexicon

import (
	"iter"
	"sort"
	"unicode"
)

type trieNode struct {
	accepting bool
	letters   []rune
	children  []*trieNode
}

func (n *trieNode) IsAccepting() bool {
	return n.accepting
}

func (n *trieNode) child(letter rune) *trieNode {
	for i, l := range n.letters {
		if l == letter {
			return n.children[i]
		}
	}
	return nil
}

func (n *trieNode) Next(letter rune) Node {
	if c := n.child(letter); c != nil {
		return c
	}
	return nil
}

func (n *trieNode) Children() iter.Seq2[rune, Node] {
	return func(yield func(rune, Node) bool) {
		for i, l := range n.letters {
			if !yield(l, n.children[i]) {
				return
			}
		}
	}
}

// addChild inserts a new child, keeping letters sorted.
func (n *trieNode) addChild(letter rune) *trieNode {
	idx := sort.Search(len(n.letters), func(i int) bool { return n.letters[i] >= letter })
	c := &trieNode{}
	n.letters = append(n.letters, 0)
	n.children = append(n.children, nil)
	copy(n.letters[idx+1:], n.letters[idx:])
	copy(n.children[idx+1:], n.children[idx:])
	n.letters[idx] = letter
	n.children[idx] = c
	return c
}

// Trie is a plain prefix tree. Words may be inserted in any order.
type Trie struct {
	name     string
	root     *trieNode
	numNodes int
	numWords int
}

func NewTrie(name string) *Trie {
	return &Trie{name: name, root: &trieNode{}, numNodes: 1}
}

// Insert adds a word. Inserting a word twice is harmless.
func (t *Trie) Insert(word string) {
	node := t.root
	for _, r := range word {
		r = unicode.ToUpper(r)
		next := node.child(r)
		if next == nil {
			next = node.addChild(r)
			t.numNodes++
		}
		node = next
	}
	if !node.accepting {
		node.accepting = true
		t.numWords++
	}
}

func (t *Trie) Name() string { return t.name }

func (t *Trie) Root() Node { return t.root }

func (t *Trie) Search(word string) bool {
	return search(t.root, word)
}

func (t *Trie) Transition(from Node, word string) Node {
	return transition(t.root, from, word)
}

func (t *Trie) IsAccepting(n Node) bool {
	return isAccepting(n)
}

func (t *Trie) Children(n Node) iter.Seq2[rune, Node] {
	return children(n)
}

func (t *Trie) NodeCount() int { return t.numNodes }

func (t *Trie) WordCount() int { return t.numWords }
