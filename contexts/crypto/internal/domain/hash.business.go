// Package domain contains the hashing, id and token tools.
package domain

import (
	"crypto/hmac"
	"crypto/md5"  //nolint:gosec // offered as checksum, not for security
	"crypto/sha1" //nolint:gosec // offered as checksum, not for security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
	"strings"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrUnknownEncoding  = errors.New("unknown encoding")
)

type Algorithm string

const (
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_512   Algorithm = "sha3-512"
	Blake2b256 Algorithm = "blake2b-256"
	Blake2b512 Algorithm = "blake2b-512"
	Blake3     Algorithm = "blake3"
	Murmur3_32 Algorithm = "murmur3-32"
	Murmur128  Algorithm = "murmur3-128"
	CRC32      Algorithm = "crc32"
)

// Algorithms returns every supported hash algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA3_256, SHA3_512,
		Blake2b256, Blake2b512, Blake3, Murmur3_32, Murmur128, CRC32,
	}
}

// HMACAlgorithms returns the algorithms usable with HMAC.
func HMACAlgorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA3_256, SHA3_512}
}

//nolint:gochecknoglobals // constructors are looked up read-only
var constructors = map[Algorithm]func() hash.Hash{
	MD5:        md5.New,
	SHA1:       sha1.New,
	SHA224:     sha256.New224,
	SHA256:     sha256simd.New,
	SHA384:     sha512.New384,
	SHA512:     sha512.New,
	SHA3_256:   sha3.New256,
	SHA3_512:   sha3.New512,
	Blake2b256: func() hash.Hash { h, _ := blake2b.New256(nil); return h }, //nolint:nlreturn // without key it never fails
	Blake2b512: func() hash.Hash { h, _ := blake2b.New512(nil); return h }, //nolint:nlreturn // without key it never fails
	Blake3:     func() hash.Hash { return blake3.New(32, nil) },             //nolint:mnd // 256 bit digest
	Murmur3_32: func() hash.Hash { return murmur3.New32() },
	Murmur128:  func() hash.Hash { return murmur3.New128() },
	CRC32:      func() hash.Hash { return crc32.NewIEEE() },
}

// Sum hashes data with the given algorithm.
func Sum(data []byte, alg Algorithm) ([]byte, error) {
	newHash, ok := constructors[normaliseAlgorithm(alg)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	h := newHash()
	_, _ = h.Write(data) // hash.Hash never returns an error

	return h.Sum(nil), nil
}

// HMAC returns the keyed hash of data.
func HMAC(data []byte, key []byte, alg Algorithm) ([]byte, error) {
	alg = normaliseAlgorithm(alg)

	newHash, ok := constructors[alg]
	if !ok || !isHMACAlgorithm(alg) {
		return nil, fmt.Errorf("%w: %q can not be used for hmac", ErrUnknownAlgorithm, alg)
	}

	mac := hmac.New(newHash, key)
	_, _ = mac.Write(data)

	return mac.Sum(nil), nil
}

type Encoding string

const (
	EncodingHex      Encoding = "hex"
	EncodingHexUpper Encoding = "HEX"
	EncodingBase64   Encoding = "base64"
)

// Encode renders a digest. An empty encoding defaults to lower case hex.
func Encode(sum []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingHex, "":
		return hex.EncodeToString(sum), nil
	case EncodingHexUpper:
		return strings.ToUpper(hex.EncodeToString(sum)), nil
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(sum), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, enc)
}

func isHMACAlgorithm(alg Algorithm) bool {
	for _, a := range HMACAlgorithms() {
		if a == alg {
			return true
		}
	}

	return false
}

func normaliseAlgorithm(alg Algorithm) Algorithm {
	return Algorithm(strings.ToLower(strings.TrimSpace(string(alg))))
}
