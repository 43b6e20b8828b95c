package lexicon

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"sort"
	"unsafe"
)

// Entry is one (surface form, lemma, tags) row to compile into a DAWG file.
type Entry struct {
	Word, Lemma, Tags string
}

// trieNode is the builder's in-memory representation: children keyed by
// rune, plus the node's payload rows.
type trieNode struct {
	children map[rune]*trieNode
	payloads []payloadEntry
	isFinal  bool
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// BuildDAWGFile compiles entries into the binary format LoadDAWG reads and
// writes it to path. It exists so tests and small tools can produce a
// dictionary file without an external build pipeline.
func BuildDAWGFile(path string, entries []Entry) error {
	root := newTrieNode()
	lemmaIDs := make(map[string]uint32)
	tagsIDs := make(map[string]uint32)
	var lemmaPool, tagsPool []string

	internID := func(ids map[string]uint32, pool *[]string, s string) uint32 {
		if id, ok := ids[s]; ok {
			return id
		}
		id := uint32(len(*pool))
		*pool = append(*pool, s)
		ids[s] = id
		return id
	}

	for _, e := range entries {
		node := root
		for _, r := range e.Word {
			child, ok := node.children[r]
			if !ok {
				child = newTrieNode()
				node.children[r] = child
			}
			node = child
		}
		node.isFinal = true
		node.payloads = append(node.payloads, payloadEntry{
			LemmaID: internID(lemmaIDs, &lemmaPool, e.Lemma),
			TagsID:  internID(tagsIDs, &tagsPool, e.Tags),
		})
	}

	nodes, edges, payloads := flatten(root)

	cd := complexData{LemmaPool: lemmaPool, TagsPool: tagsPool}
	var cdBuf bytes.Buffer
	gz := gzip.NewWriter(&cdBuf)
	if err := gob.NewEncoder(gz).Encode(cd); err != nil {
		return fmt.Errorf("encoding complex data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("closing gzip writer: %w", err)
	}

	h := header{
		// binary.Size, not unsafe.Sizeof: binary.Write packs struct fields
		// with no Go memory-alignment padding, so this must match what
		// LoadDAWG's binary.Read consumes, not the in-memory struct size.
		ComplexDataOffset: int64(binary.Size(header{})),
		ComplexDataLength: int64(cdBuf.Len()),
	}
	h.NodesOffset = h.ComplexDataOffset + h.ComplexDataLength
	h.NodesCount = int64(len(nodes))
	h.EdgesOffset = h.NodesOffset + h.NodesCount*int64(unsafe.Sizeof(flatNode{}))
	h.EdgesCount = int64(len(edges))
	h.PayloadsOffset = h.EdgesOffset + h.EdgesCount*int64(unsafe.Sizeof(flatEdge{}))
	h.PayloadsCount = int64(len(payloads))
	copy(h.Magic[:], magic)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := f.Write(cdBuf.Bytes()); err != nil {
		return fmt.Errorf("writing complex data: %w", err)
	}
	for _, n := range nodes {
		if err := binary.Write(f, binary.LittleEndian, n); err != nil {
			return fmt.Errorf("writing node: %w", err)
		}
	}
	for _, e := range edges {
		if err := binary.Write(f, binary.LittleEndian, e); err != nil {
			return fmt.Errorf("writing edge: %w", err)
		}
	}
	for _, p := range payloads {
		if err := binary.Write(f, binary.LittleEndian, p); err != nil {
			return fmt.Errorf("writing payload: %w", err)
		}
	}
	return nil
}

// flatten assigns each trie node a contiguous ID via breadth-first
// traversal and produces the flat node/edge/payload arrays, with each
// node's outgoing edges sorted by rune so the reader can binary-search them.
func flatten(root *trieNode) ([]flatNode, []flatEdge, []payloadEntry) {
	order := []*trieNode{root}
	ids := map[*trieNode]uint32{root: 0}
	for i := 0; i < len(order); i++ {
		chars := sortedChildren(order[i])
		for _, r := range chars {
			child := order[i].children[r]
			if _, seen := ids[child]; !seen {
				ids[child] = uint32(len(order))
				order = append(order, child)
			}
		}
	}

	var nodes []flatNode
	var edges []flatEdge
	var payloads []payloadEntry

	for _, n := range order {
		fn := flatNode{
			PayloadIdx: uint32(len(payloads)),
			PayloadLen: uint16(len(n.payloads)),
			EdgesIdx:   uint32(len(edges)),
			IsFinal:    n.isFinal,
		}
		payloads = append(payloads, n.payloads...)

		chars := sortedChildren(n)
		for _, r := range chars {
			edges = append(edges, flatEdge{Char: r, NodeID: ids[n.children[r]]})
		}
		fn.EdgesLen = uint16(len(chars))
		nodes = append(nodes, fn)
	}
	return nodes, edges, payloads
}

func sortedChildren(n *trieNode) []rune {
	chars := make([]rune, 0, len(n.children))
	for r := range n.children {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}
