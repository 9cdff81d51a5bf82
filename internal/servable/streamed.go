package servable

import (
	"context"
	"sync"
	"sync/atomic"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vineetp6/serving/internal/apis"
	"github.com/vineetp6/serving/internal/runtime"
)

// PredictStreamedContext mediates between one blocking multi-output runtime
// call and an externally observed sequence of delivered responses. It is
// created by PredictStreamed and driven by a single Submit call: the runtime
// may push zero or more output batches through the delivery callback before
// Submit returns its terminal status. Delivered responses stand even if the
// call subsequently fails.
type PredictStreamedContext struct {
	servable  *Servable
	opts      RunOptions
	callback  func(*apis.PredictResponse)
	submitted atomic.Bool

	// mu serializes delivery callback invocations; the runtime may produce
	// outputs from more than one goroutine.
	mu sync.Mutex
}

// PredictStreamed creates a streaming prediction session. Each delivered
// response is passed to responseCallback, which may be invoked from a
// runtime-internal goroutine while Submit blocks.
func (s *Servable) PredictStreamed(opts RunOptions, responseCallback func(*apis.PredictResponse)) *PredictStreamedContext {
	return &PredictStreamedContext{
		servable: s,
		opts:     opts,
		callback: responseCallback,
	}
}

// Submit issues the single underlying runtime call for this context. It
// blocks until the runtime returns; deliveries happen from within that call.
// A context can be submitted only once.
func (c *PredictStreamedContext) Submit(ctx context.Context, req *apis.PredictRequest) error {
	if !c.submitted.CompareAndSwap(false, true) {
		return status.Error(codes.FailedPrecondition, "streamed predict context accepts exactly one request")
	}

	s := c.servable
	native := s.runOptions(c.opts)

	signatureName := req.ModelSpec.SignatureName
	if signatureName == "" {
		signatureName = apis.DefaultServingSignatureDefKey
	}

	spec := req.ModelSpec
	spec.SignatureName = signatureName
	spec.Version = apis.VersionValue(s.version)

	native.StreamedOutputCallback = func(outputs map[string]*runtime.Tensor) {
		resp := &apis.PredictResponse{
			ModelSpec: spec,
			Outputs:   make(map[string]*apis.TensorProto, len(outputs)),
		}

		for key, tensor := range outputs {
			proto := &apis.TensorProto{}
			// TODO: encode per the configured serialization option; streamed
			// outputs only support the field encoding today.
			tensor.AsProtoField(proto)
			resp.Outputs[key] = proto
		}

		c.mu.Lock()
		c.callback(resp)
		c.mu.Unlock()
	}

	// Streamed graphs deliver everything through the output callback; the
	// direct response stays empty.
	var resp apis.PredictResponse

	return s.model.Predict(ctx, native, s.version, s.serialization, req, &resp, s.threadPools())
}
