package phonepe

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// The X-VERIFY signature scheme is a fixed contract with PhonePe and must be
// reproduced byte for byte: sha256 over the concatenated inputs, hex encoded,
// followed by "###" and the salt index.

// SignPayRequest computes the X-VERIFY value for the initiate-pay call. The
// signed message is the base64 payload followed by the endpoint path and the
// salt key.
func SignPayRequest(base64Payload, endpointPath, saltKey string, saltIndex int) string {
	return sign(base64Payload+endpointPath+saltKey, saltIndex)
}

// SignStatusRequest computes the X-VERIFY value for the status check. The
// status call is a GET with no body, so only the endpoint path and salt key
// are signed.
func SignStatusRequest(endpointPath, saltKey string, saltIndex int) string {
	return sign(endpointPath+saltKey, saltIndex)
}

func sign(message string, saltIndex int) string {
	sum := sha256.Sum256([]byte(message))
	return hex.EncodeToString(sum[:]) + "###" + strconv.Itoa(saltIndex)
}
