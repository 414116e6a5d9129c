// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

const sboxSize = 256

// Encrypt returns the hex-encoded RC4 cipher text of plaintext keyed by key.
//
// Both arguments are interpreted as sequences of UTF-16 code units. Each
// output unit is formatted with at least two lowercase hex digits and the
// results are concatenated without separators.
//
// An empty plaintext or key yields an empty string. Encrypt keeps no state
// between calls and is safe for concurrent use.
func Encrypt(plaintext, key string) string {
	if plaintext == "" || key == "" {
		return ""
	}

	src := utf16.Encode([]rune(plaintext))
	k := utf16.Encode([]rune(key))

	sbox := schedule(k)

	var b strings.Builder
	b.Grow(len(src) * 2)

	i, j := 0, 0
	for _, unit := range src {
		i = (i + 1) % sboxSize
		j = (j + sbox[i]) % sboxSize
		sbox[i], sbox[j] = sbox[j], sbox[i]
		c := (sbox[i] + sbox[j]) % sboxSize

		writeHex(&b, int(unit)^sbox[c])
	}

	return b.String()
}

// schedule runs the RC4 key-scheduling pass over an identity permutation.
func schedule(key []uint16) [sboxSize]int {
	var sbox [sboxSize]int
	for i := range sbox {
		sbox[i] = i
	}

	j := 0
	for i := 0; i < sboxSize; i++ {
		j = (j + sbox[i] + int(key[i%len(key)])) % sboxSize
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}

	return sbox
}

func writeHex(b *strings.Builder, v int) {
	if v < 0x10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(int64(v), 16))
}
