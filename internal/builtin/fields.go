package builtin

import (
	"encoding/json"

	"github.com/blackwell-systems/guidectl/internal/codec"
	"github.com/blackwell-systems/guidectl/internal/guide"
	"github.com/blackwell-systems/guidectl/internal/guideerr"
)

func encodeObjectField(c *codec.Codec, ref guide.ObjectRef, field string) (json.RawMessage, error) {
	obj, err := c.EncodeObject(ref)
	if err != nil {
		return nil, guideerr.At(err, field)
	}
	return codec.Marshal(obj)
}

func decodeObjectField(c *codec.Codec, raw json.RawMessage, field string) (guide.ObjectRef, error) {
	ref, err := c.DecodeObject(raw)
	if err != nil {
		return guide.ObjectRef{}, guideerr.At(err, field)
	}
	return ref, nil
}
