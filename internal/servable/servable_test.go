package servable

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vineetp6/serving/internal/apis"
	"github.com/vineetp6/serving/internal/config"
	"github.com/vineetp6/serving/internal/runtime"
)

// --- Mock types ---

type mockSavedModel struct {
	mock.Mock
}

func (m *mockSavedModel) Classify(ctx context.Context, opts runtime.RunOptions, version int64, req *apis.ClassificationRequest, resp *apis.ClassificationResponse) error {
	args := m.Called(ctx, opts, version, req, resp)
	return args.Error(0)
}

func (m *mockSavedModel) Regress(ctx context.Context, opts runtime.RunOptions, version int64, req *apis.RegressionRequest, resp *apis.RegressionResponse) error {
	args := m.Called(ctx, opts, version, req, resp)
	return args.Error(0)
}

func (m *mockSavedModel) Predict(ctx context.Context, opts runtime.RunOptions, version int64, serialization runtime.SerializationOption, req *apis.PredictRequest, resp *apis.PredictResponse, pools runtime.ThreadPoolOptions) error {
	args := m.Called(ctx, opts, version, serialization, req, resp, pools)
	return args.Error(0)
}

func (m *mockSavedModel) MultiInference(ctx context.Context, opts runtime.RunOptions, version int64, req *apis.MultiInferenceRequest, resp *apis.MultiInferenceResponse) error {
	args := m.Called(ctx, opts, version, req, resp)
	return args.Error(0)
}

func (m *mockSavedModel) Signatures() map[string]*apis.SignatureDef {
	args := m.Called()
	if sigs, ok := args.Get(0).(map[string]*apis.SignatureDef); ok {
		return sigs
	}
	return nil
}

// swappableFactory returns whatever pool set it currently holds.
type swappableFactory struct {
	current runtime.ThreadPoolOptions
}

func (f *swappableFactory) GetThreadPools() runtime.ThreadPoolOptions {
	return f.current
}

type fakePool struct {
	threads int
}

func (p *fakePool) Schedule(fn func()) { fn() }
func (p *fakePool) NumThreads() int    { return p.threads }

func anyPredictArgs() []any {
	return []any{mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything}
}

// --- Tests ---

func TestServable_SerializationOptionSelection(t *testing.T) {
	cases := []struct {
		name       string
		configured string
		want       runtime.SerializationOption
	}{
		{"as_proto_field", config.SerializationAsProtoField, runtime.AsProtoField},
		{"as_proto_content", config.SerializationAsProtoContent, runtime.AsProtoContent},
		{"unset defaults to field", "", runtime.AsProtoField},
		{"unrecognized defaults to field", "as_base64_blob", runtime.AsProtoField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := new(mockSavedModel)
			s := New("m", 1, config.ServableConfig{PredictResponseTensorSerializationOption: tc.configured}, model, nil)

			var captured runtime.SerializationOption
			model.On("Predict", anyPredictArgs()...).Run(func(args mock.Arguments) {
				captured = args.Get(3).(runtime.SerializationOption)
			}).Return(nil)

			err := s.Predict(context.Background(), RunOptions{}, &apis.PredictRequest{}, &apis.PredictResponse{})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, captured)

			model.AssertExpectations(t)
		})
	}
}

func TestServable_RunOptionsTranslation(t *testing.T) {
	model := new(mockSavedModel)
	cfg := config.ServableConfig{
		ValidateInputSpecs:       true,
		ValidateInputSpecsDryRun: true,
	}
	s := New("m", 1, cfg, model, nil)

	var captured runtime.RunOptions
	model.On("Classify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(runtime.RunOptions)
	}).Return(nil)

	// No deadline: the native deadline stays unset.
	err := s.Classify(context.Background(), RunOptions{}, &apis.ClassificationRequest{}, &apis.ClassificationResponse{})
	assert.NoError(t, err)
	assert.Nil(t, captured.Deadline)
	assert.True(t, captured.ValidateInputSpecs)
	assert.True(t, captured.ValidateInputSpecsDryRun)

	// A concrete deadline passes through losslessly.
	deadline := time.Now().Add(50 * time.Millisecond)
	err = s.Classify(context.Background(), RunOptions{Deadline: deadline}, &apis.ClassificationRequest{}, &apis.ClassificationResponse{})
	assert.NoError(t, err)
	if assert.NotNil(t, captured.Deadline) {
		assert.True(t, captured.Deadline.Equal(deadline))
	}

	model.AssertExpectations(t)
}

func TestServable_ValidationFlagsComeFromConfigNotCaller(t *testing.T) {
	model := new(mockSavedModel)
	s := New("m", 1, config.ServableConfig{}, model, nil)

	var captured runtime.RunOptions
	model.On("Regress", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(runtime.RunOptions)
	}).Return(nil)

	opts := RunOptions{ValidateInputSpecs: true, ValidateInputSpecsDryRun: true}
	err := s.Regress(context.Background(), opts, &apis.RegressionRequest{}, &apis.RegressionResponse{})
	assert.NoError(t, err)
	assert.False(t, captured.ValidateInputSpecs)
	assert.False(t, captured.ValidateInputSpecsDryRun)

	model.AssertExpectations(t)
}

func TestServable_PastDeadlineIsTranslatedNotOmitted(t *testing.T) {
	model := new(mockSavedModel)
	s := New("m", 1, config.ServableConfig{}, model, nil)

	var captured runtime.RunOptions
	deadlineErr := status.Error(codes.DeadlineExceeded, "deadline exceeded before op completed")
	model.On("Predict", anyPredictArgs()...).Run(func(args mock.Arguments) {
		captured = args.Get(1).(runtime.RunOptions)
	}).Return(deadlineErr)

	past := time.Now().Add(-time.Second)
	err := s.Predict(context.Background(), RunOptions{Deadline: past}, &apis.PredictRequest{}, &apis.PredictResponse{})

	if assert.NotNil(t, captured.Deadline) {
		assert.True(t, captured.Deadline.Before(time.Now()))
	}
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
	assert.Equal(t, deadlineErr, err)

	model.AssertExpectations(t)
}

func TestServable_ThreadPoolSelection(t *testing.T) {
	t.Run("no factory passes empty options", func(t *testing.T) {
		model := new(mockSavedModel)
		s := New("m", 1, config.ServableConfig{}, model, nil)

		var captured runtime.ThreadPoolOptions
		model.On("Predict", anyPredictArgs()...).Run(func(args mock.Arguments) {
			captured = args.Get(6).(runtime.ThreadPoolOptions)
		}).Return(nil)

		err := s.Predict(context.Background(), RunOptions{}, &apis.PredictRequest{}, &apis.PredictResponse{})
		assert.NoError(t, err)
		assert.Equal(t, runtime.ThreadPoolOptions{}, captured)

		model.AssertExpectations(t)
	})

	t.Run("factory is queried on every call", func(t *testing.T) {
		model := new(mockSavedModel)
		factory := &swappableFactory{current: runtime.ThreadPoolOptions{InterOp: &fakePool{threads: 2}}}
		s := New("m", 1, config.ServableConfig{}, model, factory)

		var captured runtime.ThreadPoolOptions
		model.On("Predict", anyPredictArgs()...).Run(func(args mock.Arguments) {
			captured = args.Get(6).(runtime.ThreadPoolOptions)
		}).Return(nil)

		err := s.Predict(context.Background(), RunOptions{}, &apis.PredictRequest{}, &apis.PredictResponse{})
		assert.NoError(t, err)
		assert.Equal(t, factory.current, captured)

		// Swap the factory's pools; the next call must see the new set.
		factory.current = runtime.ThreadPoolOptions{InterOp: &fakePool{threads: 8}, IntraOp: &fakePool{threads: 4}}

		err = s.Predict(context.Background(), RunOptions{}, &apis.PredictRequest{}, &apis.PredictResponse{})
		assert.NoError(t, err)
		assert.Equal(t, factory.current, captured)

		model.AssertExpectations(t)
	})
}

func TestServable_ResponseStampedWithOwnVersion(t *testing.T) {
	model := new(mockSavedModel)
	s := New("m", 3, config.ServableConfig{}, model, nil)

	// The runtime stamps responses with the version the adapter hands it;
	// the caller-supplied version must never reach it.
	model.On("Classify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		version := args.Get(2).(int64)
		resp := args.Get(4).(*apis.ClassificationResponse)
		req := args.Get(3).(*apis.ClassificationRequest)
		resp.ModelSpec = apis.ModelSpec{Name: req.ModelSpec.Name, Version: apis.VersionValue(version)}
	}).Return(nil)

	req := &apis.ClassificationRequest{ModelSpec: apis.ModelSpec{Name: "m", Version: apis.VersionValue(999)}}
	var resp apis.ClassificationResponse

	err := s.Classify(context.Background(), RunOptions{}, req, &resp)
	assert.NoError(t, err)
	if assert.NotNil(t, resp.ModelSpec.Version) {
		assert.Equal(t, int64(3), *resp.ModelSpec.Version)
	}

	model.AssertExpectations(t)
}

func TestServable_RuntimeErrorsSurfacedVerbatim(t *testing.T) {
	model := new(mockSavedModel)
	s := New("m", 1, config.ServableConfig{}, model, nil)

	want := status.Error(codes.Internal, "graph execution failed")
	model.On("MultiInference", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(want)

	err := s.MultiInference(context.Background(), RunOptions{}, &apis.MultiInferenceRequest{}, &apis.MultiInferenceResponse{})
	assert.Equal(t, want, err)

	model.AssertExpectations(t)
}
