package service

import (
	"crypto/md5" //nolint:gosec // the platform's handshake protocol is MD5-based
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"unicode/utf16"

	"mt5-gateway/pkg/apperror"
)

// digestTag is appended to the first-round digest before the second round.
const digestTag = "WebAPI"

// CredentialHasher derives the reusable password digest and the two handshake
// proof values. Pure functions: no state, no I/O.
type CredentialHasher struct{}

// NewCredentialHasher creates a CredentialHasher.
func NewCredentialHasher() *CredentialHasher {
	return &CredentialHasher{}
}

// DeriveSecretDigest turns the manager secret into the 16-byte digest used by
// both handshake proofs: MD5 over the UTF-16LE encoding of the secret, then
// MD5 over that digest concatenated with the "WebAPI" tag. One-way; the
// secret itself is never transmitted.
func (h *CredentialHasher) DeriveSecretDigest(secret string) []byte {
	first := md5.Sum(utf16leBytes(secret)) //nolint:gosec
	second := md5.Sum(append(first[:], digestTag...))
	return second[:]
}

// ComputeServerProof answers the server's hex challenge: MD5 of the secret
// digest concatenated with the decoded challenge bytes, hex encoded.
func (h *CredentialHasher) ComputeServerProof(secretDigest []byte, serverChallengeHex string) (string, error) {
	challenge, err := hex.DecodeString(serverChallengeHex)
	if err != nil {
		return "", apperror.ErrMalformedChallenge(err)
	}
	sum := md5.Sum(concat(secretDigest, challenge)) //nolint:gosec
	return hex.EncodeToString(sum[:]), nil
}

// ComputeExpectedClientProof computes the counter-proof the server must
// return for our local challenge.
func (h *CredentialHasher) ComputeExpectedClientProof(secretDigest, clientChallenge []byte) []byte {
	sum := md5.Sum(concat(secretDigest, clientChallenge)) //nolint:gosec
	return sum[:]
}

// VerifyClientProof checks the server's hex counter-proof against the
// expected digest in constant time. A short-circuiting comparison would leak
// proof-prefix length on an authentication primitive.
func (h *CredentialHasher) VerifyClientProof(expected []byte, counterProofHex string) bool {
	expectedHex := hex.EncodeToString(expected)
	provided := strings.ToLower(counterProofHex)
	return subtle.ConstantTimeCompare([]byte(expectedHex), []byte(provided)) == 1
}

func utf16leBytes(s string) []byte {
	codes := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(codes))
	for i, c := range codes {
		binary.LittleEndian.PutUint16(buf[2*i:], c)
	}
	return buf
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
