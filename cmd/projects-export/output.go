package main

import (
	"io"

	"github.com/pkg/errors"
)

// writeDocument hands the finished document to w in a single Write.
func writeDocument(w io.Writer, doc []byte) error {
	if _, err := w.Write(doc); err != nil {
		return fail(statusOutput, errors.Wrap(err, "write output"))
	}
	return nil
}
