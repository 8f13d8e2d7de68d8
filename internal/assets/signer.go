// Package assets signs upload requests for the external image host.
// The storefront never stores image bytes, only the public URL the
// host returns; this package only produces the signature a client
// needs to upload directly.
package assets

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"
)

// Signer produces signed-upload parameters for the asset host.
type Signer struct {
	cloudName string
	apiKey    string
	apiSecret string
}

// NewSigner creates a signer. Returns nil when the secret is missing,
// so callers can disable the upload endpoint cleanly.
func NewSigner(cloudName, apiKey, apiSecret string) *Signer {
	if apiSecret == "" {
		return nil
	}
	return &Signer{cloudName: cloudName, apiKey: apiKey, apiSecret: apiSecret}
}

// UploadSignature is what a client needs to perform a signed upload.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	CloudName string `json:"cloud_name"`
	APIKey    string `json:"api_key"`
}

// SignUpload signs the current timestamp. The host expects the hex
// SHA-1 of the serialized parameters with the secret appended; only
// the timestamp parameter is signed here.
func (s *Signer) SignUpload(now time.Time) UploadSignature {
	ts := now.Unix()
	payload := fmt.Sprintf("timestamp=%d%s", ts, s.apiSecret)
	sum := sha1.Sum([]byte(payload))
	return UploadSignature{
		Signature: hex.EncodeToString(sum[:]),
		Timestamp: ts,
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
	}
}
