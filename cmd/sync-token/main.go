// Command sync-token generates a fresh credential for the POS feed endpoints.
// The credential is printed once for the POS operator; the server only gets
// the SHA-256 digest via the SYNC_TOKEN_SHA256 environment variable.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log"
)

func main() {
	raw := make([]byte, 48)
	if _, err := rand.Read(raw); err != nil {
		log.Fatal("Failed to generate credential:", err)
	}

	token := base64.RawURLEncoding.EncodeToString(raw)
	digest := sha256.Sum256([]byte(token))

	fmt.Println("Sync credential (give to the POS, shown only once):")
	fmt.Println("  " + token)
	fmt.Println()
	fmt.Println("Server configuration:")
	fmt.Println("  SYNC_TOKEN_SHA256=" + hex.EncodeToString(digest[:]))
}
