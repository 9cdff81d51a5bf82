package apis

// PredictRequest runs one signature over a set of named input tensors.
type PredictRequest struct {
	ModelSpec    ModelSpec               `json:"model_spec"`
	Inputs       map[string]*TensorProto `json:"inputs"`
	OutputFilter []string                `json:"output_filter,omitempty"`
}

// PredictResponse carries the named output tensors of one prediction.
type PredictResponse struct {
	ModelSpec ModelSpec               `json:"model_spec"`
	Outputs   map[string]*TensorProto `json:"outputs"`
}
