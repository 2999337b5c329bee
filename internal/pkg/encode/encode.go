// Package encode implements the reversible identity encoding embedded in
// bearer tokens and reset links. Base64 is applied twice on encode and
// twice on decode; the double pass is a fixed wire contract, not a
// security boundary.
package encode

import (
	"encoding/base64"
	"encoding/json"
)

// Obfuscate marshals v to JSON and base64-encodes the result twice.
func Obfuscate(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return ObfuscateString(string(data)), nil
}

// Deobfuscate reverses Obfuscate, unmarshalling the decoded JSON into v.
func Deobfuscate(s string, v interface{}) error {
	data, err := DeobfuscateString(s)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), v)
}

// ObfuscateString base64-encodes a raw string twice.
func ObfuscateString(s string) string {
	once := base64.StdEncoding.EncodeToString([]byte(s))
	return base64.StdEncoding.EncodeToString([]byte(once))
}

// DeobfuscateString reverses ObfuscateString.
func DeobfuscateString(s string) (string, error) {
	once, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(string(once))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
