package runtime

import (
	"encoding/binary"
	"math"

	"github.com/vineetp6/serving/internal/apis"
)

// Tensor is the runtime's in-memory tensor representation. Exactly one value
// slice is populated, matching DType.
type Tensor struct {
	DType   apis.DataType
	Shape   []int64
	Floats  []float32
	Doubles []float64
	Ints    []int32
	Int64s  []int64
	Strings [][]byte
}

// AsProtoField copies the tensor into the structured value fields of proto.
func (t *Tensor) AsProtoField(proto *apis.TensorProto) {
	proto.DType = t.DType
	proto.Shape = append([]int64(nil), t.Shape...)

	switch t.DType {
	case apis.DTFloat:
		proto.FloatVal = append([]float32(nil), t.Floats...)
	case apis.DTDouble:
		proto.DoubleVal = append([]float64(nil), t.Doubles...)
	case apis.DTInt32:
		proto.IntVal = append([]int32(nil), t.Ints...)
	case apis.DTInt64:
		proto.Int64Val = append([]int64(nil), t.Int64s...)
	case apis.DTString:
		proto.StringVal = make([][]byte, len(t.Strings))
		for i, s := range t.Strings {
			proto.StringVal[i] = append([]byte(nil), s...)
		}
	}
}

// AsProtoContent encodes the tensor into the opaque TensorContent blob of
// proto: fixed-width values little-endian, strings length-prefixed.
func (t *Tensor) AsProtoContent(proto *apis.TensorProto) {
	proto.DType = t.DType
	proto.Shape = append([]int64(nil), t.Shape...)

	switch t.DType {
	case apis.DTFloat:
		buf := make([]byte, 0, 4*len(t.Floats))
		for _, v := range t.Floats {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
		proto.TensorContent = buf
	case apis.DTDouble:
		buf := make([]byte, 0, 8*len(t.Doubles))
		for _, v := range t.Doubles {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
		proto.TensorContent = buf
	case apis.DTInt32:
		buf := make([]byte, 0, 4*len(t.Ints))
		for _, v := range t.Ints {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
		}
		proto.TensorContent = buf
	case apis.DTInt64:
		buf := make([]byte, 0, 8*len(t.Int64s))
		for _, v := range t.Int64s {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
		}
		proto.TensorContent = buf
	case apis.DTString:
		var buf []byte
		for _, s := range t.Strings {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(len(s)))
			buf = append(buf, s...)
		}
		proto.TensorContent = buf
	}
}
