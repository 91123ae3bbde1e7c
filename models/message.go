package models

// Message is the wire envelope: one JSON object per line. Header names a
// command on the way in and a result tag or fault kind on the way out.
// Every payload entry is an independently encoded object, order matters
// and is command-specific.
type Message struct {
	Header      string   `json:"header"`
	ObjectsJSON []string `json:"objectsJson"`
}
