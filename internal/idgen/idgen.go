// Package idgen generates recipe identifiers.
//
// Catalog entries get short content-hash ids ("r-x7k2q"); spreadsheet
// imports get ids derived from the import timestamp and row index so a
// whole batch is unique without coordination.
package idgen

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// base36Alphabet is the character set for base36 encoding (0-9, a-z).
const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// IDLength is the number of base36 characters after the "r-" prefix.
const IDLength = 5

// encodeBase36 converts a byte slice to a base36 string of the given length.
func encodeBase36(data []byte, length int) string {
	num := new(big.Int).SetBytes(data)

	base := big.NewInt(36)
	zero := big.NewInt(0)
	mod := new(big.Int)

	chars := make([]byte, 0, length)
	for num.Cmp(zero) > 0 {
		num.DivMod(num, base, mod)
		chars = append(chars, base36Alphabet[mod.Int64()])
	}

	var result strings.Builder
	for i := len(chars) - 1; i >= 0; i-- {
		result.WriteByte(chars[i])
	}

	str := result.String()
	if len(str) < length {
		str = strings.Repeat("0", length-len(str)) + str
	}
	if len(str) > length {
		str = str[len(str)-length:]
	}
	return str
}

// NewID creates a hash-based id for a recipe committed through the form.
// The nonce handles the (unlikely) collision case: callers bump it and
// retry until the id is free.
func NewID(name string, timestamp time.Time, nonce int) string {
	content := fmt.Sprintf("%s|%d|%d", name, timestamp.UnixNano(), nonce)
	hash := sha256.Sum256([]byte(content))
	return "r-" + encodeBase36(hash[:4], IDLength)
}

// ImportID creates a synthetic id for one spreadsheet row: the import
// timestamp in milliseconds joined with the row index. This matches the
// id shape older catalogs produced for spreadsheet imports.
func ImportID(timestamp time.Time, row int) string {
	return fmt.Sprintf("%d_%d", timestamp.UnixMilli(), row)
}
