package runtime

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vineetp6/serving/internal/apis"
)

func TestTensor_AsProtoField(t *testing.T) {
	tensor := &Tensor{DType: apis.DTFloat, Shape: []int64{2}, Floats: []float32{1.5, -2}}

	var proto apis.TensorProto
	tensor.AsProtoField(&proto)

	assert.Equal(t, apis.DTFloat, proto.DType)
	assert.Equal(t, []int64{2}, proto.Shape)
	assert.Equal(t, []float32{1.5, -2}, proto.FloatVal)
	assert.Empty(t, proto.TensorContent)
}

func TestTensor_AsProtoContent(t *testing.T) {
	tensor := &Tensor{DType: apis.DTFloat, Shape: []int64{2}, Floats: []float32{1.5, -2}}

	var proto apis.TensorProto
	tensor.AsProtoContent(&proto)

	assert.Equal(t, apis.DTFloat, proto.DType)
	assert.Equal(t, []int64{2}, proto.Shape)
	assert.Empty(t, proto.FloatVal)

	want := binary.LittleEndian.AppendUint32(nil, math.Float32bits(1.5))
	want = binary.LittleEndian.AppendUint32(want, math.Float32bits(-2))
	assert.Equal(t, want, proto.TensorContent)
}

func TestTensor_AsProtoContentStringsAreLengthPrefixed(t *testing.T) {
	tensor := &Tensor{DType: apis.DTString, Shape: []int64{2}, Strings: [][]byte{[]byte("ab"), []byte("c")}}

	var proto apis.TensorProto
	tensor.AsProtoContent(&proto)

	want := binary.LittleEndian.AppendUint64(nil, 2)
	want = append(want, 'a', 'b')
	want = binary.LittleEndian.AppendUint64(want, 1)
	want = append(want, 'c')
	assert.Equal(t, want, proto.TensorContent)
}

func TestTensor_FieldEncodingCopiesValues(t *testing.T) {
	tensor := &Tensor{DType: apis.DTInt64, Shape: []int64{1}, Int64s: []int64{42}}

	var proto apis.TensorProto
	tensor.AsProtoField(&proto)

	tensor.Int64s[0] = 7
	assert.Equal(t, []int64{42}, proto.Int64Val)
}
