package runtime

import (
	"context"
	"time"

	"github.com/vineetp6/serving/internal/apis"
)

// SerializationOption selects how a runtime places output tensors into a
// PredictResponse: as structured value fields or as an opaque content blob.
type SerializationOption int

const (
	AsProtoField SerializationOption = iota
	AsProtoContent
)

// RunOptions is the execution-control structure understood by a SavedModel.
// A nil Deadline means the call runs without one.
type RunOptions struct {
	Deadline                 *time.Time
	ValidateInputSpecs       bool
	ValidateInputSpecsDryRun bool

	// StreamedOutputCallback, when set, is invoked by the runtime each time
	// a batch of named output tensors becomes available during a Predict
	// call. It may fire zero or more times before the call returns, on
	// whatever goroutine the runtime produces outputs from.
	StreamedOutputCallback func(outputs map[string]*Tensor)
}

// SavedModel is a loaded, executable model. Implementations must be safe
// for concurrent calls; every method blocks until the runtime finishes.
type SavedModel interface {
	// Classify runs the classification method of the requested signature.
	Classify(ctx context.Context, opts RunOptions, version int64, req *apis.ClassificationRequest, resp *apis.ClassificationResponse) error

	// Regress runs the regression method of the requested signature.
	Regress(ctx context.Context, opts RunOptions, version int64, req *apis.RegressionRequest, resp *apis.RegressionResponse) error

	// Predict runs the requested signature over named input tensors and
	// serializes outputs according to the given option. Zero-value pools
	// leave thread selection to the runtime.
	Predict(ctx context.Context, opts RunOptions, version int64, serialization SerializationOption, req *apis.PredictRequest, resp *apis.PredictResponse, pools ThreadPoolOptions) error

	// MultiInference runs several signatures over one shared input batch.
	MultiInference(ctx context.Context, opts RunOptions, version int64, req *apis.MultiInferenceRequest, resp *apis.MultiInferenceResponse) error

	// Signatures returns the model's static signature map.
	Signatures() map[string]*apis.SignatureDef
}
