package webex

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DecodeUUID extracts the UUID from a base64 encoded Webex identifier.
// Identifiers decode to a URI like "ciscospark://us/AUTO_ATTENDANT/<uuid>";
// the provisioning API addresses entities by the trailing UUID instead of
// the opaque identifier.
func DecodeUUID(id string) (string, error) {
	raw, err := decodeBase64(id)
	if err != nil {
		return "", fmt.Errorf("decode id %q: %w", id, err)
	}
	decoded := string(raw)
	if i := strings.LastIndex(decoded, "/"); i >= 0 {
		decoded = decoded[i+1:]
	}
	u, err := uuid.Parse(decoded)
	if err != nil {
		return "", fmt.Errorf("id %q does not contain a UUID: %w", id, err)
	}
	return u.String(), nil
}

// decodeBase64 decodes standard or URL-safe base64 with or without padding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimRight(s, "=")
	raw, err := base64.RawStdEncoding.DecodeString(s)
	if err == nil {
		return raw, nil
	}
	return base64.RawURLEncoding.DecodeString(s)
}
