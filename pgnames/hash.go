package pgnames

import "github.com/starfield-tools/pgnames/internal/pgdata"

// ClassifyOffset decides whether the class-1-space sector offset
// belongs to the class-1 or class-2 naming grammar. It reproduces Bob
// Jenkins' one-at-a-time integer mix (see
// http://papa.bretmulvey.com/post/124027987928/hash-functions),
// masking to 32 bits after every additive step so the wraparound
// behaves identically regardless of the host language's integer size.
func ClassifyOffset(offset int) int {
	const mask = 0xFFFFFFFF
	key := uint32(offset+pgdata.C1ArbitraryIndexOffset) & mask

	key += key << 12
	key &= mask
	key ^= key >> 22
	key += key << 4
	key &= mask
	key ^= key >> 9
	key += key << 10
	key &= mask
	key ^= key >> 2
	key += key << 7
	key &= mask
	key ^= key >> 12

	return int(key%2) + 1
}
