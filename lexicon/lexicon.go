// Package lexicon holds the word automata used for membership tests and for
// walking partial words during move generation. There are two
// implementations of the same contract: a plain Trie and a minimized Dawg.
package lexicon

import (
	"iter"
	"unicode"
)

// Node is a state in a word automaton. Nodes are immutable once the
// automaton has been built.
type Node interface {
	IsAccepting() bool
	// Next returns the child reached by the (uppercase) letter, or nil.
	Next(letter rune) Node
	// Children yields every outgoing letter and child, in letter order.
	Children() iter.Seq2[rune, Node]
}

// Lexicon is the contract shared by the Trie and the Dawg. All letters are
// normalized to uppercase on lookup.
type Lexicon interface {
	Name() string
	Root() Node
	// Search returns whether word is a complete word in the lexicon.
	Search(word string) bool
	// Transition walks zero or more letters starting at from (the root if
	// from is nil). It returns nil if the walk falls off the automaton.
	Transition(from Node, word string) Node
	IsAccepting(n Node) bool
	Children(n Node) iter.Seq2[rune, Node]
	// NodeCount is the number of distinct states in the automaton.
	NodeCount() int
	WordCount() int
}

// Type is the kind of lexicon implementation.
type Type string

const (
	TypeTrie Type = "trie"
	TypeDawg Type = "dawg"
)

func transition(root, from Node, word string) Node {
	node := from
	if node == nil {
		node = root
	}
	for _, r := range word {
		node = node.Next(unicode.ToUpper(r))
		if node == nil {
			return nil
		}
	}
	return node
}

func search(root Node, word string) bool {
	n := transition(root, root, word)
	return n != nil && n.IsAccepting()
}

func isAccepting(n Node) bool {
	return n != nil && n.IsAccepting()
}

func children(n Node) iter.Seq2[rune, Node] {
	if n == nil {
		return func(func(rune, Node) bool) {}
	}
	return n.Children()
}
