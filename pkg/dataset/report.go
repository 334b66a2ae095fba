package dataset

import (
	"bufio"
	"idmatch/pkg/domain"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// ReportWriter streams verification results as JSON Lines, one object per
// result. It buffers writes; call Flush when the report is complete.
type ReportWriter struct {
	w *bufio.Writer
	e jx.Encoder
}

// NewReportWriter wraps w in a buffered report writer.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: bufio.NewWriter(w)}
}

// Write appends one verification result to the report.
func (rw *ReportWriter) Write(result domain.VerificationResult) error {
	rw.e.Reset()
	encodeVerificationResult(&rw.e, result)
	if _, err := rw.w.Write(rw.e.Bytes()); err != nil {
		return errors.Wrap(err, "could not write result")
	}
	if err := rw.w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "could not write result")
	}

	return nil
}

// Flush forces buffered results down to the underlying writer.
func (rw *ReportWriter) Flush() error {
	if err := rw.w.Flush(); err != nil {
		return errors.Wrap(err, "could not flush report")
	}

	return nil
}

// EncodeMatchResult renders a single match result as JSON. The CLI uses it
// to print ad hoc evaluations in the same shape reports carry.
func EncodeMatchResult(result domain.MatchResult) []byte {
	var e jx.Encoder
	encodeMatchResult(&e, result)

	return e.Bytes()
}

func encodeVerificationResult(e *jx.Encoder, result domain.VerificationResult) {
	e.ObjStart()
	e.FieldStart("batchId")
	e.Str(result.BatchID.String())
	e.FieldStart("identity")
	e.ObjStart()
	e.FieldStart("name")
	e.Str(result.Identity.Name)
	e.FieldStart("identifier")
	e.Str(result.Identity.Identifier)
	e.FieldStart("address")
	e.Str(result.Identity.Address)
	e.ObjEnd()
	e.FieldStart("result")
	encodeMatchResult(e, result.Result)
	e.ObjEnd()
}

func encodeMatchResult(e *jx.Encoder, result domain.MatchResult) {
	e.ObjStart()
	e.FieldStart("resolverHit")
	e.Bool(result.ResolverHit)
	e.FieldStart("nameMatched")
	e.Bool(result.NameMatched)
	if result.MatchedRule != "" {
		e.FieldStart("matchedRule")
		e.Str(string(result.MatchedRule))
	}
	e.FieldStart("addressMatched")
	e.Bool(result.AddressMatched)
	e.FieldStart("score")
	e.Float64(result.Score)
	e.ObjEnd()
}
