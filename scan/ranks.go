package scan

// byteRank orders byte values by how often they appear in x86-64 executable
// images. Lower rank = rarer byte = better probe byte.
// Padding (0x00, 0xCC, 0xFF), REX prefixes, two-byte opcode escapes and the
// mov/lea/call family dominate code sections and rank highest.
var byteRank = [256]byte{
	// 0x00-0x0F: zero fill, add, 0x0F escape
	255, 200, 170, 160, 175, 150, 130, 125, 180, 130, 140, 120, 130, 125, 110, 215,
	// 0x10-0x1F
	170, 140, 130, 120, 135, 120, 110, 105, 160, 115, 105, 100, 120, 100, 100, 100,
	// 0x20-0x2F: and/sub, 0x24 SIB byte for rsp
	170, 125, 120, 115, 190, 120, 100, 95, 165, 115, 110, 100, 120, 110, 100, 100,
	// 0x30-0x3F: xor/cmp
	160, 130, 110, 110, 110, 100, 95, 90, 155, 140, 110, 100, 110, 110, 100, 100,
	// 0x40-0x4F: REX prefixes, 0x48 REX.W most common
	185, 185, 120, 115, 200, 180, 120, 110, 240, 185, 120, 110, 190, 175, 110, 105,
	// 0x50-0x5F: push/pop
	160, 140, 135, 150, 140, 150, 150, 150, 140, 130, 125, 140, 150, 145, 145, 145,
	// 0x60-0x6F: rarely used in 64-bit code
	90, 85, 80, 85, 80, 80, 95, 80, 110, 110, 80, 110, 85, 85, 80, 85,
	// 0x70-0x7F: short conditional jumps
	110, 100, 120, 120, 175, 175, 120, 120, 110, 110, 95, 95, 120, 115, 125, 115,
	// 0x80-0x8F: group 1 immediates, test, mov, lea
	140, 160, 80, 210, 175, 185, 110, 105, 175, 230, 110, 235, 130, 205, 110, 110,
	// 0x90-0x9F: nop, xchg, cwde
	180, 90, 85, 85, 85, 85, 85, 85, 130, 120, 80, 85, 85, 85, 85, 85,
	// 0xA0-0xAF: string ops
	95, 95, 90, 95, 95, 95, 85, 85, 110, 100, 90, 90, 90, 90, 90, 90,
	// 0xB0-0xBF: mov immediate
	105, 100, 100, 100, 100, 100, 100, 100, 150, 100, 100, 105, 100, 100, 100, 110,
	// 0xC0-0xCF: shifts, ret, mov imm, int3 padding
	190, 160, 110, 160, 100, 115, 155, 175, 110, 130, 90, 90, 220, 95, 85, 90,
	// 0xD0-0xDF: shifts, x87
	110, 120, 100, 100, 85, 80, 75, 75, 100, 95, 85, 85, 90, 85, 80, 80,
	// 0xE0-0xEF: call, jmp
	90, 85, 80, 90, 85, 85, 80, 80, 200, 180, 90, 150, 80, 75, 75, 80,
	// 0xF0-0xFF: lock/rep prefixes, group 3, 0xFF fill and indirect call
	120, 95, 110, 140, 95, 105, 135, 145, 100, 95, 95, 95, 100, 95, 105, 250,
}

// ByteRank returns a copy of the default rank table.
func ByteRank() [256]byte {
	return byteRank
}

// BuildRankTable builds a byte frequency table from a corpus sample.
func BuildRankTable(corpus []byte) [256]byte {
	var counts [256]int
	for _, c := range corpus {
		counts[c]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var ranks [256]byte
	for i := range ranks {
		ranks[i] = byte((counts[i] * 255) / maxCount)
	}
	return ranks
}

// selectRarePair picks the two rarest exact positions of nd in [from, to),
// returned in ascending order. With a single exact position both offsets are
// equal; with none both are -1.
func selectRarePair(nd needle, from, to int, ranks *[256]byte) (off1, off2 int) {
	off1, off2 = -1, -1
	best1, best2 := 256, 256

	for i := from; i < to; i++ {
		if nd.wild[i] {
			continue
		}
		rank := int(ranks[nd.bytes[i]])
		if rank < best1 {
			off2, best2 = off1, best1
			off1, best1 = i, rank
		} else if rank < best2 {
			off2, best2 = i, rank
		}
	}

	if off2 < 0 {
		off2 = off1
	}
	if off1 > off2 {
		off1, off2 = off2, off1
	}
	return off1, off2
}
