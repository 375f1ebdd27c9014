package pdb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
)

// Container layout (little-endian throughout, per DESIGN.md's recorded
// choice): magic, version, N, group count, then per group a label count
// and its labels, then entry width, then per group a table length and
// its raw bytes — self-describing enough that Load can validate before
// touching any table body (spec.md §6 "Readers must validate...").
var magic = [4]byte{'N', 'P', 'D', 'B'}

const formatVersion uint8 = 1
const entryWidth uint8 = 1 // one byte per table entry (max distance 254; 255 is unreached)

// Save writes t to path as a single binary container. It truncates or
// creates the file as needed.
func Save(path string, t *Tables) error {
	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(formatVersion)
	buf.WriteByte(uint8(t.n))
	buf.WriteByte(uint8(len(t.partition)))

	for _, group := range t.partition {
		buf.WriteByte(uint8(len(group)))
		for _, label := range group {
			buf.WriteByte(uint8(label))
		}
	}
	buf.WriteByte(entryWidth)

	for _, table := range t.tables {
		var lenBuf [8]byte
		binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(table)))
		buf.Write(lenBuf[:])
		buf.Write(table)
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Load reads a container previously written by Save. It validates the
// magic, version, and every length before touching the table bodies;
// any mismatch yields ErrCorruptPDB rather than a panic or a silently
// wrong heuristic.
func Load(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMissingPDB
		}
		return nil, ErrCorruptPDB
	}

	r := bytes.NewReader(raw)
	var gotMagic [4]byte
	if _, err := r.Read(gotMagic[:]); err != nil || gotMagic != magic {
		return nil, ErrCorruptPDB
	}

	version, err := r.ReadByte()
	if err != nil || version != formatVersion {
		return nil, ErrCorruptPDB
	}

	nByte, err := r.ReadByte()
	if err != nil || nByte < 2 || nByte > 5 {
		return nil, ErrCorruptPDB
	}
	n := int(nByte)
	n2 := n * n

	groupCount, err := r.ReadByte()
	if err != nil {
		return nil, ErrCorruptPDB
	}

	partition := make([][]int, groupCount)
	for gi := 0; gi < int(groupCount); gi++ {
		labelCount, err := r.ReadByte()
		if err != nil || labelCount == 0 {
			return nil, ErrCorruptPDB
		}
		group := make([]int, labelCount)
		for i := range group {
			lb, err := r.ReadByte()
			if err != nil || int(lb) <= 0 || int(lb) >= n2 {
				return nil, ErrCorruptPDB
			}
			group[i] = int(lb)
		}
		partition[gi] = group
	}

	width, err := r.ReadByte()
	if err != nil || width != entryWidth {
		return nil, ErrCorruptPDB
	}

	tables := make([][]uint8, groupCount)
	for gi := 0; gi < int(groupCount); gi++ {
		var lenBuf [8]byte
		if _, err := r.Read(lenBuf[:]); err != nil {
			return nil, ErrCorruptPDB
		}
		tableLen := binary.LittleEndian.Uint64(lenBuf[:])
		want := permCount(n2, len(partition[gi]))
		if tableLen != want {
			return nil, ErrCorruptPDB
		}
		table := make([]uint8, tableLen)
		if n, err := r.Read(table); err != nil || uint64(n) != tableLen {
			return nil, ErrCorruptPDB
		}
		tables[gi] = table
	}

	if r.Len() != 0 {
		return nil, ErrCorruptPDB
	}

	return &Tables{n: n, n2: n2, partition: partition, tables: tables}, nil
}
