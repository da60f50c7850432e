package misc

import (
	"github.com/cockroachdb/errors"
	"github.com/gabstv/go-bsdiff/pkg/bsdiff"
	"github.com/gabstv/go-bsdiff/pkg/bspatch"
)

// Diff turns one byte slice into another. It is either a bsdiff patch or,
// when the patch would not be smaller, the target bytes themselves.
type Diff []byte

const (
	diffRaw   = 0
	diffPatch = 1
)

func GenerateDiff(a, b []byte) (Diff, error) {
	patch, err := bsdiff.Bytes(a, b)
	if err != nil {
		return Diff{}, errors.Wrap(err, "can not generate diff")
	}

	if len(patch) >= len(b) {
		return append([]byte{diffRaw}, b...), nil
	}

	return append([]byte{diffPatch}, patch...), nil
}

func ApplyDiff(a []byte, diffData Diff) ([]byte, error) {
	if len(diffData) == 0 {
		return a, nil
	}

	switch diffData[0] {
	case diffRaw:
		return CopyBytes(diffData[1:]), nil
	case diffPatch:
		newfile, err := bspatch.Bytes(a, diffData[1:])
		if err != nil {
			return nil, errors.Wrap(err, "can not apply diff")
		}
		return newfile, nil
	default:
		return nil, errors.Errorf("invalid diff format %d", diffData[0])
	}
}
