package collection

import (
	"bytes"
	"math"

	"github.com/pkg/errors"
)

// pointerSize is the bookkeeping cost of one record in the pointer table
// (2 bytes offset + 2 bytes length).
const pointerSize = 4

var (
	// ErrBlockFull is returned by Insert when the record plus its pointer
	// does not fit in the remaining free space.
	ErrBlockFull = errors.New("block: not enough free space")

	// ErrRecordTooLarge is returned by Insert for records whose length
	// cannot be represented in the pointer table.
	ErrRecordTooLarge = errors.New("block: record too large")
)

// Block is a fixed-capacity contiguous store of variable-length byte
// records kept in ascending bytes.Compare order. Record bytes grow from
// the tail of the buffer while the pointer table grows from the head,
// with the free space between them. Both lookups and insertion positions
// are located with LowerBound, making the block the random-access
// specialization of Collection and a consumer of the search engine at
// the same time.
//
// Records compare as raw bytes; composite keys should be encoded with
// the keycodec package so that byte order matches field order.
// Duplicates are allowed and group together.
type Block struct {
	body []byte
	free int // start of the used tail area
	ptrs []pointer
}

type pointer struct {
	offset uint16
	length uint16
}

// NewBlock returns an empty block with the given capacity in bytes.
// Offsets are 16-bit, so the capacity is capped at 64 KiB - 1.
func NewBlock(capacity int) *Block {
	if capacity > math.MaxUint16 {
		capacity = math.MaxUint16
	}
	return &Block{
		body: make([]byte, capacity),
		free: capacity,
	}
}

func (b *Block) Len() int {
	return len(b.ptrs)
}

// At returns the record at index i as a view into the block's buffer;
// the caller must not modify it.
func (b *Block) At(i int) []byte {
	p := b.ptrs[i]
	return b.body[p.offset : int(p.offset)+int(p.length)]
}

// FreeSpace returns the number of payload bytes still insertable,
// accounting for the pointer each record needs.
func (b *Block) FreeSpace() int {
	free := b.free - len(b.ptrs)*pointerSize - pointerSize
	if free < 0 {
		return 0
	}
	return free
}

// Insert adds a copy of rec at its sorted position.
func (b *Block) Insert(rec []byte) error {
	if len(rec) > math.MaxUint16 {
		return errors.Wrapf(ErrRecordTooLarge, "%d bytes", len(rec))
	}
	if len(rec)+pointerSize > b.free-len(b.ptrs)*pointerSize {
		return errors.Wrapf(ErrBlockFull, "record of %d bytes", len(rec))
	}

	pos := LowerBound(b, 0, len(b.ptrs), rec, recordAt, bytes.Compare)

	b.free -= len(rec)
	copy(b.body[b.free:], rec)

	b.ptrs = append(b.ptrs, pointer{})
	copy(b.ptrs[pos+1:], b.ptrs[pos:])
	b.ptrs[pos] = pointer{offset: uint16(b.free), length: uint16(len(rec))}
	return nil
}

// Find returns the index of the first record not less than key, and
// whether that record equals key exactly. Without an exact match the
// index is key's insertion point, possibly Len().
func (b *Block) Find(key []byte) (int, bool) {
	i := LowerBound(b, 0, len(b.ptrs), key, recordAt, bytes.Compare)
	if i < len(b.ptrs) && bytes.Equal(b.At(i), key) {
		return i, true
	}
	return i, false
}

func recordAt(b *Block, i int) []byte {
	return b.At(i)
}
