// Package rle implements the DICOM RLE Lossless codec (PS3.5 Annex G):
// PackBits runs, fragment and segment headers, and the basic offset table.
package rle

import (
	"bytes"
	"errors"
	"fmt"
)

// maxRun is the longest literal or replicate run one command byte can carry
const maxRun = 128

// Encode compresses data into PackBits runs. Runs longer than 128 bytes are
// split across several commands.
func Encode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}

	var buf bytes.Buffer
	i := 0
	for i < len(data) {
		runLen := 1
		for i+runLen < len(data) && runLen < maxRun && data[i+runLen] == data[i] {
			runLen++
		}

		if runLen > 1 {
			buf.WriteByte(byte(257 - runLen))
			buf.WriteByte(data[i])
			i += runLen
			continue
		}

		// literal until three equal bytes start a run
		litLen := 1
		for i+litLen < len(data) && litLen < maxRun {
			if i+litLen+2 < len(data) &&
				data[i+litLen] == data[i+litLen+1] &&
				data[i+litLen] == data[i+litLen+2] {
				break
			}
			litLen++
		}
		buf.WriteByte(byte(litLen - 1))
		buf.Write(data[i : i+litLen])
		i += litLen
	}
	return buf.Bytes()
}

// Decode expands a complete PackBits buffer. Decoding stops once
// expectedLen bytes are produced when expectedLen is positive.
func Decode(data []byte, expectedLen int) ([]byte, error) {
	var buf bytes.Buffer
	if expectedLen > 0 {
		buf.Grow(expectedLen)
	}

	i := 0
	for i < len(data) {
		if expectedLen > 0 && buf.Len() >= expectedLen {
			break
		}

		n := data[i]
		i++

		switch {
		case n == 128:
			// no-op
		case n < 128:
			count := int(n) + 1
			if i+count > len(data) {
				return nil, fmt.Errorf("rle: compressed data truncated in literal run (i=%d, count=%d, len=%d)", i, count, len(data))
			}
			buf.Write(data[i : i+count])
			i += count
		default:
			count := 257 - int(n)
			if i >= len(data) {
				return nil, errors.New("rle: compressed data truncated in replicate run")
			}
			buf.Write(bytes.Repeat(data[i:i+1], count))
			i++
		}
	}
	return buf.Bytes(), nil
}
