package misc

import (
	"bytes"
	"encoding/gob"

	"github.com/cockroachdb/errors"
)

// NoCopy may be embedded in structs that must not be copied after first use.
// go vet's copylocks check reports copies of any struct holding one.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}

func EncodeToBytes(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	err := enc.Encode(data)
	if err != nil {
		return nil, errors.Wrap(err, "can not encode")
	}
	return buf.Bytes(), nil
}

func DecodeFromBytes(data []byte, a any) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(a); err != nil {
		return errors.Wrap(err, "can not decode")
	}
	return nil
}

func CopyBytes(a []byte) []byte {
	b := make([]byte, len(a))
	copy(b, a)
	return b
}
