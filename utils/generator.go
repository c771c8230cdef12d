package utils

import (
	"math/rand"
	"time"
)

const idempotencyKeyLength = 32
const keyBytes = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateIdempotencyKey returns a random key for a transfer intent.
// The key is persisted with the intent before the processor is called,
// so the processor can de-duplicate any retried delivery of that call.
func GenerateIdempotencyKey() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	b := make([]byte, idempotencyKeyLength)
	for i := range b {
		b[i] = keyBytes[seededRand.Intn(len(keyBytes))]
	}
	return string(b)
}
