package lexicon

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"sort"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/steosofficial/sanskritmorphy/sanskriterr"
)

// DAWG is a zero-copy, mmap-backed binary dictionary: a header mapping the
// file, a gzip+gob block for variable-length string pools, and flat
// node/edge/payload arrays read directly out of the mapped bytes.
//
// It stores a trie, not a minimized DAWG proper: suffix sharing is a space
// optimization the on-disk format permits but the builder does not yet
// perform.
type DAWG struct {
	lemmaPool []string
	tagsPool  []string

	nodes    []flatNode
	edges    []flatEdge
	payloads []payloadEntry

	mmapFile mmap.MMap
	file     *os.File
}

type header struct {
	Magic             [4]byte
	ComplexDataOffset int64
	ComplexDataLength int64
	NodesOffset       int64
	NodesCount        int64
	EdgesOffset       int64
	EdgesCount        int64
	PayloadsOffset    int64
	PayloadsCount     int64
}

type flatNode struct {
	PayloadIdx, EdgesIdx uint32
	PayloadLen, EdgesLen uint16
	IsFinal              bool
	_                    [3]byte // pad to a fixed, alignment-stable size
}

type flatEdge struct {
	Char   rune
	NodeID uint32
}

type payloadEntry struct {
	LemmaID, TagsID uint32
}

type complexData struct {
	LemmaPool []string
	TagsPool  []string
}

const magic = "SKM1"

// LoadDAWG maps dictPath into memory and reads its header and pools.
func LoadDAWG(dictPath string) (*DAWG, error) {
	file, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening lexicon %q: %v", sanskriterr.ErrConfigLoad, dictPath, err)
	}

	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: mmap %q: %v", sanskriterr.ErrConfigLoad, dictPath, err)
	}

	var h header
	// headerSize uses binary.Size, not unsafe.Sizeof: binary.Read/Write
	// encode struct fields packed with no Go memory-alignment padding, so
	// the on-disk header is smaller than the in-memory struct.
	headerSize := binary.Size(h)
	if len(mapped) < headerSize {
		_ = mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("%w: %q is smaller than its own header", sanskriterr.ErrConfigLoad, dictPath)
	}
	if err := binary.Read(bytes.NewReader(mapped[:headerSize]), binary.LittleEndian, &h); err != nil {
		_ = mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("%w: reading header of %q: %v", sanskriterr.ErrConfigLoad, dictPath, err)
	}
	if string(h.Magic[:]) != magic {
		_ = mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("%w: %q has invalid magic", sanskriterr.ErrConfigLoad, dictPath)
	}

	gz, err := gzip.NewReader(bytes.NewReader(mapped[h.ComplexDataOffset : h.ComplexDataOffset+h.ComplexDataLength]))
	if err != nil {
		_ = mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("%w: gzip reader for %q: %v", sanskriterr.ErrConfigLoad, dictPath, err)
	}
	raw, err := io.ReadAll(gz)
	if err != nil {
		_ = mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("%w: decompressing %q: %v", sanskriterr.ErrConfigLoad, dictPath, err)
	}
	var cd complexData
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&cd); err != nil {
		_ = mapped.Unmap()
		file.Close()
		return nil, fmt.Errorf("%w: gob-decoding %q: %v", sanskriterr.ErrConfigLoad, dictPath, err)
	}

	d := &DAWG{
		lemmaPool: cd.LemmaPool,
		tagsPool:  cd.TagsPool,
		nodes:     bytesToSlice[flatNode](mapped[h.NodesOffset : h.NodesOffset+h.NodesCount*int64(unsafe.Sizeof(flatNode{}))]),
		edges:     bytesToSlice[flatEdge](mapped[h.EdgesOffset : h.EdgesOffset+h.EdgesCount*int64(unsafe.Sizeof(flatEdge{}))]),
		payloads:  bytesToSlice[payloadEntry](mapped[h.PayloadsOffset : h.PayloadsOffset+h.PayloadsCount*int64(unsafe.Sizeof(payloadEntry{}))]),
		mmapFile:  mapped,
		file:      file,
	}
	return d, nil
}

// Close unmaps the backing file. A process that loads one dictionary for
// its lifetime never needs this; a long-lived server that reloads
// configuration does.
func (d *DAWG) Close() error {
	if err := d.mmapFile.Unmap(); err != nil {
		return err
	}
	return d.file.Close()
}

func bytesToSlice[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	var t T
	size := int(unsafe.Sizeof(t))
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/size)
}

// GetAll implements Lexicon by walking the trie edge by edge.
func (d *DAWG) GetAll(text string) []Handle {
	node, ok := d.walk(text)
	if !ok || !d.nodes[node].IsFinal {
		return nil
	}
	n := d.nodes[node]
	handles := make([]Handle, n.PayloadLen)
	for i := range handles {
		handles[i] = Handle(uint32(n.PayloadIdx) + uint32(i))
	}
	return handles
}

// Unpack implements Lexicon.
func (d *DAWG) Unpack(h Handle) (Analysis, error) {
	if int(h) >= len(d.payloads) {
		return nil, fmt.Errorf("%w: handle %d out of range", sanskriterr.ErrLexiconUnpack, h)
	}
	p := d.payloads[h]
	if int(p.LemmaID) >= len(d.lemmaPool) || int(p.TagsID) >= len(d.tagsPool) {
		return nil, fmt.Errorf("%w: handle %d references out-of-range pool entry", sanskriterr.ErrLexiconUnpack, h)
	}
	return taggedAnalysis{lemma: d.lemmaPool[p.LemmaID], tags: d.tagsPool[p.TagsID]}, nil
}

// walk follows the trie from the root, one rune of text at a time, using
// binary search over each node's sorted outgoing edges.
func (d *DAWG) walk(text string) (uint32, bool) {
	node := uint32(0)
	for _, r := range text {
		n := d.nodes[node]
		if n.EdgesLen == 0 {
			return 0, false
		}
		edges := d.edges[n.EdgesIdx : uint32(n.EdgesIdx)+uint32(n.EdgesLen)]
		i := sort.Search(len(edges), func(i int) bool { return edges[i].Char >= r })
		if i >= len(edges) || edges[i].Char != r {
			return 0, false
		}
		node = edges[i].NodeID
	}
	return node, true
}
