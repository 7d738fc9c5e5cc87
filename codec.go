package jsonrpc

import (
	"encoding/json"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Codec encodes and decodes wire values. All codecs reproduce the same
// field layout; only the encoding differs.
type Codec interface {
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default wire codec.
var JSONCodec Codec = jsonCodec{}

// CBORCodec encodes the wire types as CBOR for binary transports.
var CBORCodec Codec = cborCodec{}

type jsonCodec struct{}

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type cborCodec struct{}

// cborDecMode decodes untyped maps as map[string]any so generic payloads
// come out the same shape under both codecs.
var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

func (cborCodec) ContentType() string { return "application/cbor" }

func (cborCodec) Marshal(v any) ([]byte, error) { return cbor.Marshal(v) }

func (cborCodec) Unmarshal(data []byte, v any) error { return cborDecMode.Unmarshal(data, v) }
