package http

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The backend is inconsistent about list envelopes: the same endpoint may
// answer with a bare array, {"data": [...]} or {"flat": [...]}. decodeList
// normalizes all three at the boundary so nothing else branches on shape.
func decodeList(body []byte, out any) error {
	raw, err := normalizeList(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func normalizeList(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("[]"), nil
	}
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
		Flat json.RawMessage `json:"flat"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected list response shape: %w", err)
	}
	if len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		return envelope.Data, nil
	}
	if len(envelope.Flat) > 0 && !bytes.Equal(envelope.Flat, []byte("null")) {
		return envelope.Flat, nil
	}
	return json.RawMessage("[]"), nil
}

// decodeObject accepts either a bare object or {"data": {...}}.
func decodeObject(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil &&
		len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
		return json.Unmarshal(envelope.Data, out)
	}
	return json.Unmarshal(trimmed, out)
}
