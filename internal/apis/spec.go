package apis

const (
	// DefaultServingSignatureDefKey is the signature used when a request
	// does not name one explicitly.
	DefaultServingSignatureDefKey = "serving_default"

	// SignatureDefFieldName is the only metadata field kind GetModelMetadata
	// currently supports.
	SignatureDefFieldName = "signature_def"
)

// Method name constants carried by signature definitions.
const (
	ClassifyMethodName = "tensorflow/serving/classify"
	RegressMethodName  = "tensorflow/serving/regress"
	PredictMethodName  = "tensorflow/serving/predict"
)

// ModelSpec identifies the servable a request targets. Version and
// SignatureName are optional on requests; responses always carry the
// servable's own name and version.
type ModelSpec struct {
	Name          string `json:"name"`
	Version       *int64 `json:"version,omitempty"`
	SignatureName string `json:"signature_name,omitempty"`
}

// VersionValue returns a pointer suitable for stamping a response spec.
func VersionValue(v int64) *int64 {
	return &v
}
