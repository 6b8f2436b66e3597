package domain

import "encoding/json"

// RawBody is embedded by proxy request types that must forward the
// inbound JSON body byte-for-byte instead of re-serializing a parsed
// struct.
type RawBody struct {
	Body json.RawMessage `json:"-"`
}

func (r *RawBody) SetRawBody(body []byte) {
	r.Body = append(json.RawMessage(nil), body...)
}
