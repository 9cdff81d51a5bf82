package servable

import (
	"context"
	"time"

	"github.com/vineetp6/serving/internal/apis"
	"github.com/vineetp6/serving/internal/config"
	"github.com/vineetp6/serving/internal/runtime"
)

// RunOptions are the generic per-call execution options supplied by callers.
// A zero Deadline means the call runs without one. The validate fields are
// carried for protocol completeness only: input-spec validation is a
// model-instance policy and is always taken from the servable's
// configuration, never from here.
type RunOptions struct {
	Deadline                 time.Time
	ValidateInputSpecs       bool
	ValidateInputSpecsDryRun bool
}

// Servable binds one loaded, versioned model to the inference protocol. It
// translates generic execution options into runtime-native ones, dispatches
// requests to the model, and normalizes outputs into protocol responses.
// All fields are fixed at construction; a Servable is safe for concurrent use.
type Servable struct {
	name              string
	version           int64
	config            config.ServableConfig
	model             runtime.SavedModel
	threadPoolFactory runtime.ThreadPoolFactory
	serialization     runtime.SerializationOption
}

// New creates a servable for a loaded model. threadPoolFactory may be nil,
// in which case runtime calls use the runtime's default pools.
func New(name string, version int64, cfg config.ServableConfig, model runtime.SavedModel, threadPoolFactory runtime.ThreadPoolFactory) *Servable {
	s := &Servable{
		name:              name,
		version:           version,
		config:            cfg,
		model:             model,
		threadPoolFactory: threadPoolFactory,
	}

	switch cfg.PredictResponseTensorSerializationOption {
	case config.SerializationAsProtoContent:
		s.serialization = runtime.AsProtoContent
	default:
		s.serialization = runtime.AsProtoField
	}

	return s
}

// Name returns the servable's name.
func (s *Servable) Name() string {
	return s.name
}

// Version returns the servable's version.
func (s *Servable) Version() int64 {
	return s.version
}

// runOptions translates generic options into runtime-native ones. The
// deadline is omitted when unset; the validate flags always come from the
// servable's configuration.
func (s *Servable) runOptions(opts RunOptions) runtime.RunOptions {
	native := runtime.RunOptions{
		ValidateInputSpecs:       s.config.ValidateInputSpecs,
		ValidateInputSpecsDryRun: s.config.ValidateInputSpecsDryRun,
	}
	if !opts.Deadline.IsZero() {
		deadline := opts.Deadline
		native.Deadline = &deadline
	}
	return native
}

// threadPools returns the pools for one call. The factory is queried every
// time since its pool set may change over the servable's lifetime.
func (s *Servable) threadPools() runtime.ThreadPoolOptions {
	if s.threadPoolFactory == nil {
		return runtime.ThreadPoolOptions{}
	}
	return s.threadPoolFactory.GetThreadPools()
}

// Classify runs classification over the request's examples.
func (s *Servable) Classify(ctx context.Context, opts RunOptions, req *apis.ClassificationRequest, resp *apis.ClassificationResponse) error {
	return s.model.Classify(ctx, s.runOptions(opts), s.version, req, resp)
}

// Regress runs regression over the request's examples.
func (s *Servable) Regress(ctx context.Context, opts RunOptions, req *apis.RegressionRequest, resp *apis.RegressionResponse) error {
	return s.model.Regress(ctx, s.runOptions(opts), s.version, req, resp)
}

// Predict runs one signature over the request's input tensors. Output
// tensors are serialized per the option chosen at construction.
func (s *Servable) Predict(ctx context.Context, opts RunOptions, req *apis.PredictRequest, resp *apis.PredictResponse) error {
	return s.model.Predict(ctx, s.runOptions(opts), s.version, s.serialization, req, resp, s.threadPools())
}

// MultiInference runs several classify/regress tasks over one input batch.
func (s *Servable) MultiInference(ctx context.Context, opts RunOptions, req *apis.MultiInferenceRequest, resp *apis.MultiInferenceResponse) error {
	return s.model.MultiInference(ctx, s.runOptions(opts), s.version, req, resp)
}
