// Package keycodec encodes composite search keys into single byte
// sequences whose bytes.Compare order equals the field-wise
// lexicographic order of the original fields. That property is what lets
// multi-field keys flow through the by-key search flavors and the sorted
// record block, which only ever compare raw bytes.
//
// Fields are split into chunks of eight bytes followed by a marker: a
// continuation marker while more of the field follows, or the number of
// meaningful bytes in the (zero-padded) final chunk. Shorter fields
// therefore order before their extensions, and no field can bleed into
// its neighbor during comparison.
package keycodec

// chunkSize is the encoded size of one chunk; the last byte of each chunk
// is the marker.
const chunkSize = 9

const chunkData = chunkSize - 1

// EncodedSize returns the encoded length of a field of n bytes.
func EncodedSize(n int) int {
	if n == 0 {
		return chunkSize
	}
	return (n + chunkData - 1) / chunkData * chunkSize
}

// Encode appends the encoding of a single field to dst.
func Encode(field []byte, dst *[]byte) {
	for {
		n := len(field)
		if n > chunkData {
			n = chunkData
		}
		*dst = append(*dst, field[:n]...)
		field = field[n:]
		if len(field) == 0 {
			for i := n; i < chunkData; i++ {
				*dst = append(*dst, 0)
			}
			*dst = append(*dst, byte(n))
			return
		}
		*dst = append(*dst, chunkSize)
	}
}

// Decode consumes one encoded field from src, appending the original
// bytes to field. src is advanced past the consumed chunks.
func Decode(src *[]byte, field *[]byte) {
	for len(*src) >= chunkSize {
		chunk := (*src)[:chunkSize]
		*src = (*src)[chunkSize:]
		marker := chunk[chunkData]
		if marker >= chunkSize {
			*field = append(*field, chunk[:chunkData]...)
			continue
		}
		*field = append(*field, chunk[:marker]...)
		return
	}
}

// Append appends the encoding of a whole field list to dst.
func Append(fields [][]byte, dst *[]byte) {
	for _, field := range fields {
		Encode(field, dst)
	}
}

// Split decodes an encoded field list back into its fields.
func Split(encoded []byte, fields *[][]byte) {
	rest := encoded
	for len(rest) > 0 {
		var field []byte
		Decode(&rest, &field)
		*fields = append(*fields, field)
	}
}
