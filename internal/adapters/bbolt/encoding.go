// Binary encoding for feature entry blobs.
//
// Format v1 stores each feature's country table as a compact record list.
// It avoids JSON's per-record key names, which dominate the size of small
// rank/value pairs.
//
// Record list format (little-endian):
//
//	recordCount: uint32
//	per record (sorted by country):
//	  countryLen: uint16
//	  country:    [countryLen]byte
//	  flags:      uint8 (bit 0 = partial)
//	  rankLen:    uint16
//	  rank:       [rankLen]byte
//	  valueLen:   uint16
//	  value:      [valueLen]byte
package bbolt

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/corey/rankbot/internal/ports"
)

const (
	formatVersion = 1
	flagPartial   = 1 << 0
	maxField      = 65535

	// Three empty u16-prefixed strings plus the flags byte.
	minRecordSize = 2 + 1 + 2 + 2
)

// encodeEntries encodes a country table to the v1 record list format.
// Countries are sorted for deterministic output and the buffer is sized
// up front to avoid repeated growth.
func encodeEntries(entries map[string]ports.Record) ([]byte, error) {
	countries := make([]string, 0, len(entries))
	totalSize := 4
	for country, rec := range entries {
		for _, field := range []string{country, rec.Rank, rec.Value} {
			if len(field) > maxField {
				return nil, fmt.Errorf("field too long in %q: %d bytes", country, len(field))
			}
		}
		countries = append(countries, country)
		totalSize += 2 + len(country) + 1 + 2 + len(rec.Rank) + 2 + len(rec.Value)
	}
	sort.Strings(countries)

	buf := make([]byte, totalSize)
	offset := 0

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(countries)))
	offset += 4

	putString := func(s string) {
		binary.LittleEndian.PutUint16(buf[offset:], uint16(len(s)))
		offset += 2
		copy(buf[offset:], s)
		offset += len(s)
	}

	for _, country := range countries {
		rec := entries[country]
		putString(country)
		var flags byte
		if rec.Partial {
			flags |= flagPartial
		}
		buf[offset] = flags
		offset++
		putString(rec.Rank)
		putString(rec.Value)
	}

	return buf, nil
}

// decodeEntries decodes a v1 record list. Every read is bounds-checked to
// avoid panics on corrupt data.
func decodeEntries(data []byte) (map[string]ports.Record, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("record list too short: %d bytes", len(data))
	}

	offset := 0
	count := binary.LittleEndian.Uint32(data[offset:])
	offset += 4
	if uint64(count)*minRecordSize > uint64(len(data)-offset) {
		return nil, fmt.Errorf("record count %d does not fit in %d bytes", count, len(data)-offset)
	}

	readString := func(i uint32, what string) (string, error) {
		if offset+2 > len(data) {
			return "", fmt.Errorf("truncated at record %d %s length (offset %d)", i, what, offset)
		}
		n := int(binary.LittleEndian.Uint16(data[offset:]))
		offset += 2
		if offset+n > len(data) {
			return "", fmt.Errorf("truncated at record %d %s (offset %d, need %d)", i, what, offset, n)
		}
		s := string(data[offset : offset+n])
		offset += n
		return s, nil
	}

	entries := make(map[string]ports.Record, count)
	for i := uint32(0); i < count; i++ {
		country, err := readString(i, "country")
		if err != nil {
			return nil, err
		}
		if offset+1 > len(data) {
			return nil, fmt.Errorf("truncated at record %d flags (offset %d)", i, offset)
		}
		flags := data[offset]
		offset++
		rank, err := readString(i, "rank")
		if err != nil {
			return nil, err
		}
		value, err := readString(i, "value")
		if err != nil {
			return nil, err
		}
		entries[country] = ports.Record{Rank: rank, Value: value, Partial: flags&flagPartial != 0}
	}

	if offset != len(data) {
		return nil, fmt.Errorf("trailing bytes after %d records: %d", count, len(data)-offset)
	}
	return entries, nil
}
