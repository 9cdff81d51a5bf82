package apis

// DataType is the element type of a tensor.
type DataType string

const (
	DTFloat  DataType = "float"
	DTDouble DataType = "double"
	DTInt32  DataType = "int32"
	DTInt64  DataType = "int64"
	DTString DataType = "string"
)

// TensorProto is the wire form of a tensor. Exactly one representation is
// populated: the typed value slice matching DType, or TensorContent when the
// producer chose the opaque content encoding.
type TensorProto struct {
	DType         DataType  `json:"dtype"`
	Shape         []int64   `json:"shape"`
	FloatVal      []float32 `json:"float_val,omitempty"`
	DoubleVal     []float64 `json:"double_val,omitempty"`
	IntVal        []int32   `json:"int_val,omitempty"`
	Int64Val      []int64   `json:"int64_val,omitempty"`
	StringVal     [][]byte  `json:"string_val,omitempty"`
	TensorContent []byte    `json:"tensor_content,omitempty"`
}

// TensorInfo describes one named input or output of a signature.
type TensorInfo struct {
	Name  string   `json:"name"`
	DType DataType `json:"dtype"`
	Shape []int64  `json:"shape"`
}

// SignatureDef is a named input/output contract exposed by a model.
type SignatureDef struct {
	MethodName string                 `json:"method_name"`
	Inputs     map[string]*TensorInfo `json:"inputs,omitempty"`
	Outputs    map[string]*TensorInfo `json:"outputs,omitempty"`
}

// Example is one row of feature tensors for classification and regression.
type Example struct {
	Features map[string]*TensorProto `json:"features"`
}
