// Package snapshot persists solved partitions as compact, self-describing
// binary blobs.
//
// A snapshot records the lambda a partition was solved for, its aggregates
// and the subset-name tuple of every block, so sweeps can be published,
// compared across runs and re-rendered without re-solving. The container
// stores its codec name and compression type in the header and checksums
// the payload, so files remain readable when defaults change.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/lamarche-perrin/mdc"
	"github.com/lamarche-perrin/mdc/codec"
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses zstd block compression (better ratio).
	CompressionZstd Compression = 2
)

var (
	magic = [4]byte{'M', 'D', 'C', 'S'}

	// ErrBadMagic is returned when the input is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrChecksum is returned when the payload fails CRC validation.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
)

const formatVersion = 1

// Result is the persisted form of a solved partition.
type Result struct {
	// Name is the multiset the partition was solved on.
	Name string `json:"name"`
	// Lambda is the trade-off parameter.
	Lambda float64 `json:"lambda"`
	// Size is the number of blocks.
	Size int `json:"size"`
	// Loss is the summed (normalized) information loss.
	Loss float64 `json:"loss"`
	// Cost is Size + Lambda*Loss.
	Cost float64 `json:"cost"`
	// Blocks holds one subset-name tuple per block, in partition order.
	Blocks [][]string `json:"blocks"`
}

// FromPartition captures a solved partition into a Result.
func FromPartition(name string, p *mdc.MultiPartition) *Result {
	res := &Result{
		Name:   name,
		Lambda: p.Lambda(),
		Size:   p.Size(),
		Loss:   p.Loss(),
		Cost:   p.Cost(),
		Blocks: make([][]string, 0, p.Size()),
	}
	for _, block := range p.Blocks() {
		names := make([]string, 0, len(block.Subsets()))
		for _, sub := range block.Subsets() {
			names = append(names, sub.Name())
		}
		res.Blocks = append(res.Blocks, names)
	}
	return res
}

// Write encodes res with c (codec.Default when nil), compresses the payload
// and writes the container to w.
func Write(w io.Writer, res *Result, c codec.Codec, comp Compression) error {
	if c == nil {
		c = codec.Default
	}

	payload, err := c.Marshal(res)
	if err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	raw := payload
	switch comp {
	case CompressionNone:
	case CompressionLZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, dst, nil)
		if err != nil {
			return fmt.Errorf("snapshot: lz4: %w", err)
		}
		if n == 0 || n >= len(payload) {
			// Incompressible; store raw.
			comp = CompressionNone
		} else {
			raw = dst[:n]
		}
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("snapshot: zstd: %w", err)
		}
		raw = enc.EncodeAll(payload, nil)
		_ = enc.Close()
	default:
		return fmt.Errorf("snapshot: unknown compression %d", comp)
	}

	name := c.Name()
	if len(name) > 255 {
		return fmt.Errorf("snapshot: codec name too long: %q", name)
	}

	header := make([]byte, 0, 7+len(name)+8)
	header = append(header, magic[:]...)
	header = append(header, formatVersion, byte(comp), byte(len(name)))
	header = append(header, name...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(payload)))
	header = binary.LittleEndian.AppendUint32(header, uint32(len(raw)))
	if _, err := w.Write(header); err != nil {
		return err
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}

	var crc [4]byte
	binary.LittleEndian.PutUint32(crc[:], crc32.ChecksumIEEE(raw))
	_, err = w.Write(crc[:])
	return err
}

// Read decodes a snapshot container from r.
func Read(r io.Reader) (*Result, error) {
	var head [7]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	if [4]byte(head[:4]) != magic {
		return nil, ErrBadMagic
	}
	if head[4] != formatVersion {
		return nil, fmt.Errorf("snapshot: unsupported version %d", head[4])
	}
	comp := Compression(head[5])

	name := make([]byte, head[6])
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, err
	}
	c, ok := codec.ByName(string(name))
	if !ok {
		return nil, fmt.Errorf("snapshot: unknown codec %q", name)
	}

	var lens [8]byte
	if _, err := io.ReadFull(r, lens[:]); err != nil {
		return nil, err
	}
	payloadLen := binary.LittleEndian.Uint32(lens[:4])
	rawLen := binary.LittleEndian.Uint32(lens[4:])

	raw := make([]byte, rawLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	var crc [4]byte
	if _, err := io.ReadFull(r, crc[:]); err != nil {
		return nil, err
	}
	if binary.LittleEndian.Uint32(crc[:]) != crc32.ChecksumIEEE(raw) {
		return nil, ErrChecksum
	}

	payload := raw
	switch comp {
	case CompressionNone:
	case CompressionLZ4:
		payload = make([]byte, payloadLen)
		n, err := lz4.UncompressBlock(raw, payload)
		if err != nil {
			return nil, fmt.Errorf("snapshot: lz4: %w", err)
		}
		payload = payload[:n]
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd: %w", err)
		}
		payload, err = dec.DecodeAll(raw, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd: %w", err)
		}
	default:
		return nil, fmt.Errorf("snapshot: unknown compression %d", comp)
	}

	var res Result
	if err := c.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	return &res, nil
}
