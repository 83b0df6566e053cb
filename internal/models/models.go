package models

// Chunk is a bounded substring of the uploaded document, the unit of
// retrieval. Seq is its position in the original chunking order.
type Chunk struct {
	Text string
	Seq  int
}

// Answer is the result of a query against the assistant.
type Answer struct {
	Query   string
	Content string
	Sources []Chunk
}
