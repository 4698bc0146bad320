package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const rowSize = 16

// Dump formats data as a multi-line hex dump. Each line shows the address
// of its first byte as 8 lowercase hex digits, up to 16 space-separated
// hex byte values, and an ASCII gutter with '.' substituted for bytes
// outside 0x20-0x7e. Missing slots in a short final row are space-filled
// so the gutter stays aligned. Lines are newline-separated with no
// trailing newline; empty input produces an empty string.
//
// Row addresses are computed as addr + 16*row and wrap modulo 2^32; the
// address column is always 8 digits.
func Dump(addr uint32, data []byte) string {
	var output strings.Builder
	for i := 0; i < len(data); i += rowSize {
		end := i + rowSize
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]

		if i > 0 {
			output.WriteString("\n")
		}
		output.WriteString(fmt.Sprintf("%08x ", addr+uint32(i)))
		for j := 0; j < rowSize; j++ {
			output.WriteString(" ")
			if j < len(row) {
				output.WriteString(fmt.Sprintf("%02x", row[j]))
			} else {
				output.WriteString("  ")
			}
		}
		output.WriteString("  ")
		for _, b := range row {
			if b < 0x20 || b > 0x7e {
				output.WriteString(".")
			} else {
				output.WriteByte(b)
			}
		}
	}
	return output.String()
}

// BareDump formats data as hex digit pairs separated by single spaces on
// one line, with no address column or ASCII gutter.
func BareDump(data []byte) string {
	var output strings.Builder
	for i, b := range data {
		if i > 0 {
			output.WriteString(" ")
		}
		output.WriteString(fmt.Sprintf("%02x", b))
	}
	return output.String()
}

// WriteDump writes the output of Dump to w.
func WriteDump(w io.Writer, addr uint32, data []byte) error {
	_, err := io.WriteString(w, Dump(addr, data))
	if err != nil {
		return fmt.Errorf("failed writing dump: %v", err)
	}
	return nil
}

// WriteBareDump writes the output of BareDump to w.
func WriteBareDump(w io.Writer, data []byte) error {
	_, err := io.WriteString(w, BareDump(data))
	if err != nil {
		return fmt.Errorf("failed writing dump: %v", err)
	}
	return nil
}
