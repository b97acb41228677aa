package logging

// Field names used across the command and parser log output. Keeping them
// here stops the same concept drifting across call sites ("file" in one
// command, "file_path" in the next).
const (
	FieldFile       = "file"
	FieldOutput     = "output"
	FieldAccount    = "account"
	FieldQuery      = "query"
	FieldCount      = "count"
	FieldBytes      = "bytes"
	FieldTrades     = "trades"
	FieldStatements = "statements"
	FieldDelimiter  = "delimiter"
)
