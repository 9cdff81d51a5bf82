package apis

// Class is one candidate label with its score.
type Class struct {
	Label string  `json:"label"`
	Score float32 `json:"score"`
}

// Classifications is the class list produced for one input example.
type Classifications struct {
	Classes []Class `json:"classes"`
}

// ClassificationResult holds one Classifications entry per input example.
type ClassificationResult struct {
	Classifications []Classifications `json:"classifications"`
}

// Regression is the regressed value for one input example.
type Regression struct {
	Value float32 `json:"value"`
}

// RegressionResult holds one Regression entry per input example.
type RegressionResult struct {
	Regressions []Regression `json:"regressions"`
}

// ClassificationRequest classifies a batch of examples.
type ClassificationRequest struct {
	ModelSpec ModelSpec  `json:"model_spec"`
	Examples  []*Example `json:"examples"`
}

// ClassificationResponse is the result of a ClassificationRequest.
type ClassificationResponse struct {
	ModelSpec ModelSpec            `json:"model_spec"`
	Result    ClassificationResult `json:"result"`
}

// RegressionRequest regresses a batch of examples.
type RegressionRequest struct {
	ModelSpec ModelSpec  `json:"model_spec"`
	Examples  []*Example `json:"examples"`
}

// RegressionResponse is the result of a RegressionRequest.
type RegressionResponse struct {
	ModelSpec ModelSpec        `json:"model_spec"`
	Result    RegressionResult `json:"result"`
}

// InferenceTask names one signature to run and the method to run it with.
type InferenceTask struct {
	ModelSpec  ModelSpec `json:"model_spec"`
	MethodName string    `json:"method_name"`
}

// InferenceResult is the outcome of one task; exactly one of the result
// fields is set, matching the task's method name.
type InferenceResult struct {
	ModelSpec            ModelSpec             `json:"model_spec"`
	ClassificationResult *ClassificationResult `json:"classification_result,omitempty"`
	RegressionResult     *RegressionResult     `json:"regression_result,omitempty"`
}

// MultiInferenceRequest runs several tasks over one shared input batch.
type MultiInferenceRequest struct {
	Tasks []*InferenceTask `json:"tasks"`
	Input []*Example       `json:"input"`
}

// MultiInferenceResponse holds one result per requested task, in order.
type MultiInferenceResponse struct {
	Results []*InferenceResult `json:"results"`
}
