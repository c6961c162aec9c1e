// Package lexicon implements the word list as a trie. The referee uses it
// for exact membership checks; the move generator additionally walks its
// nodes edge by edge.
package lexicon

import (
	"sort"
	"strings"
)

// Node is a single trie node. The zero value is not usable; nodes are
// created through Add.
type Node struct {
	edges map[rune]*Node
	final bool
}

// Edge returns the child node for the given (uppercase) letter, or nil.
func (n *Node) Edge(letter rune) *Node {
	if n == nil {
		return nil
	}
	return n.edges[letter]
}

// Final reports whether the path from the root to this node spells a word.
func (n *Node) Final() bool {
	return n != nil && n.final
}

// Edges returns the outgoing letters of this node in alphabetical order.
func (n *Node) Edges() []rune {
	if n == nil {
		return nil
	}
	letters := make([]rune, 0, len(n.edges))
	for l := range n.edges {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Lexicon is an immutable-after-load set of uppercase words. It is shared
// by reference between the referee and any in-process players.
type Lexicon struct {
	name  string
	root  *Node
	words int
}

func New(name string) *Lexicon {
	return &Lexicon{name: name, root: &Node{edges: map[rune]*Node{}}}
}

func (l *Lexicon) Name() string {
	return l.name
}

// WordCount returns the number of distinct words added.
func (l *Lexicon) WordCount() int {
	return l.words
}

// Root returns the root node, for prefix walks.
func (l *Lexicon) Root() *Node {
	return l.root
}

// Add inserts a word, normalized to uppercase. Empty input is ignored.
func (l *Lexicon) Add(word string) {
	if word == "" {
		return
	}
	node := l.root
	for _, c := range strings.ToUpper(word) {
		next := node.edges[c]
		if next == nil {
			next = &Node{edges: map[rune]*Node{}}
			node.edges[c] = next
		}
		node = next
	}
	if !node.final {
		node.final = true
		l.words++
	}
}

// HasWord checks exact membership, case-normalized.
func (l *Lexicon) HasWord(word string) bool {
	return l.NodeAt(word).Final()
}

// NodeAt returns the node reached by walking the given prefix from the
// root, or nil if no word starts with it.
func (l *Lexicon) NodeAt(prefix string) *Node {
	node := l.root
	for _, c := range strings.ToUpper(prefix) {
		node = node.Edge(c)
		if node == nil {
			return nil
		}
	}
	return node
}
