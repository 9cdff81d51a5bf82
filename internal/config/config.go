package config

// Serialization option values accepted by servable configuration. Anything
// else, including an absent value, resolves to the field encoding.
const (
	SerializationAsProtoField   = "as_proto_field"
	SerializationAsProtoContent = "as_proto_content"
)

// Config holds the main configuration for the serving binary.
type Config struct {
	Version     string                    `json:"version"                yaml:"version"`
	Logging     LoggingConfig             `json:"logging,omitempty"      yaml:"logging,omitempty"`
	ThreadPools ThreadPoolsConfig         `json:"thread_pools,omitempty" yaml:"thread_pools,omitempty"`
	Servables   map[string]ServableConfig `json:"servables"              yaml:"servables"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	ToFile bool   `json:"to_file,omitempty" yaml:"to_file,omitempty"`
	File   string `json:"file,omitempty"    yaml:"file,omitempty"`
}

// ThreadPoolsConfig sizes the inter-op and intra-op pools handed to runtime
// calls. A size of zero leaves that pool to the runtime's defaults.
type ThreadPoolsConfig struct {
	InterOpParallelism int `json:"inter_op_parallelism,omitempty" yaml:"inter_op_parallelism,omitempty"`
	IntraOpParallelism int `json:"intra_op_parallelism,omitempty" yaml:"intra_op_parallelism,omitempty"`
}

// ServableConfig holds the construction-time configuration of one servable.
type ServableConfig struct {
	Version  int64  `json:"version"  yaml:"version"`
	Provider string `json:"provider" yaml:"provider"`
	Path     string `json:"path"     yaml:"path"`

	PredictResponseTensorSerializationOption string `json:"predict_response_tensor_serialization_option,omitempty" yaml:"predict_response_tensor_serialization_option,omitempty"`

	ValidateInputSpecs       bool `json:"validate_input_specs,omitempty"         yaml:"validate_input_specs,omitempty"`
	ValidateInputSpecsDryRun bool `json:"validate_input_specs_dry_run,omitempty" yaml:"validate_input_specs_dry_run,omitempty"`
}
