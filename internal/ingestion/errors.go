package ingestion

import "fmt"

// DocumentFormatError is returned for uploads whose format has no text extractor.
type DocumentFormatError struct {
	Filename string
	Format   string
	Reason   string
}

func (e *DocumentFormatError) Error() string {
	msg := fmt.Sprintf("unsupported document format %q", e.Format)
	if e.Filename != "" {
		msg += fmt.Sprintf(" for %s", e.Filename)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}
