package dataset

import (
	"bufio"
	"bytes"
	"idmatch/pkg/domain"
	"idmatch/pkg/serrors"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// maxIdentityLine caps the scanner buffer for a single JSON line.
const maxIdentityLine = 1 << 20

// ReadExtractedIdentities reads identities from JSON Lines: one object per
// line with "name", "identifier" (or "uid") and "address" string fields.
// Unknown fields are skipped, blank lines are allowed and input order is
// preserved. Missing fields stay empty; the matching engine decides what an
// empty field means.
func ReadExtractedIdentities(r io.Reader) ([]domain.ExtractedIdentity, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxIdentityLine)

	var identities []domain.ExtractedIdentity
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}

		identity, err := decodeIdentity(raw)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedDataset, err, "identity at line %d", line)
		}
		identities = append(identities, identity)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read identities")
	}

	return identities, nil
}

func decodeIdentity(raw []byte) (domain.ExtractedIdentity, error) {
	var identity domain.ExtractedIdentity
	d := jx.DecodeBytes(raw)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			identity.Name, err = d.Str()
		case "identifier", "uid":
			identity.Identifier, err = d.Str()
		case "address":
			identity.Address, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	}); err != nil {
		return domain.ExtractedIdentity{}, err
	}

	return identity, nil
}
