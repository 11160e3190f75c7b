package entity

import "go.mongodb.org/mongo-driver/bson"

// Document is a schemaless record exactly as the client supplied it.
// Request bodies are stored verbatim, so handlers and stores move
// documents around without forcing a shape onto them.
type Document = bson.M
