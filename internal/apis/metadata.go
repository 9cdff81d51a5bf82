package apis

import (
	"fmt"

	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vineetp6/serving/mapsafe"
)

// GetModelMetadataRequest asks for specific metadata fields of a servable.
type GetModelMetadataRequest struct {
	ModelSpec     ModelSpec `json:"model_spec"`
	MetadataField []string  `json:"metadata_field"`
}

// GetModelMetadataResponse carries the requested metadata, keyed by field name.
type GetModelMetadataResponse struct {
	ModelSpec ModelSpec             `json:"model_spec"`
	Metadata  map[string]*anypb.Any `json:"metadata"`
}

// PackSignatureDefMap packs a signature-def map into an Any for the
// metadata slot of a GetModelMetadataResponse.
func PackSignatureDefMap(defs map[string]*SignatureDef) (*anypb.Any, error) {
	m := make(map[string]any, len(defs))
	for name, def := range defs {
		m[name] = signatureDefValue(def)
	}

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("apis: failed to build signature def struct: %w", err)
	}

	return anypb.New(s)
}

// UnpackSignatureDefMap reverses PackSignatureDefMap.
func UnpackSignatureDefMap(a *anypb.Any) (map[string]*SignatureDef, error) {
	var s structpb.Struct
	if err := a.UnmarshalTo(&s); err != nil {
		return nil, fmt.Errorf("apis: failed to unpack signature def map: %w", err)
	}

	raw := s.AsMap()
	defs := make(map[string]*SignatureDef, len(raw))
	for name, value := range raw {
		dm, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("apis: signature %q is not a signature def", name)
		}
		defs[name] = signatureDefFromValue(dm)
	}

	return defs, nil
}

func signatureDefValue(def *SignatureDef) map[string]any {
	return map[string]any{
		"method_name": def.MethodName,
		"inputs":      tensorInfoValues(def.Inputs),
		"outputs":     tensorInfoValues(def.Outputs),
	}
}

func tensorInfoValues(infos map[string]*TensorInfo) map[string]any {
	m := make(map[string]any, len(infos))
	for key, info := range infos {
		shape := make([]any, len(info.Shape))
		for i, dim := range info.Shape {
			shape[i] = float64(dim)
		}
		m[key] = map[string]any{
			"name":  info.Name,
			"dtype": string(info.DType),
			"shape": shape,
		}
	}
	return m
}

func signatureDefFromValue(m map[string]any) *SignatureDef {
	return &SignatureDef{
		MethodName: mapsafe.Get(m, "method_name", ""),
		Inputs:     tensorInfosFromValue(mapsafe.Get(m, "inputs", map[string]any(nil))),
		Outputs:    tensorInfosFromValue(mapsafe.Get(m, "outputs", map[string]any(nil))),
	}
}

func tensorInfosFromValue(m map[string]any) map[string]*TensorInfo {
	if len(m) == 0 {
		return nil
	}

	infos := make(map[string]*TensorInfo, len(m))
	for key, value := range m {
		im, ok := value.(map[string]any)
		if !ok {
			continue
		}

		info := &TensorInfo{
			Name:  mapsafe.Get(im, "name", ""),
			DType: DataType(mapsafe.Get(im, "dtype", "")),
		}
		if shape, ok := im["shape"].([]any); ok {
			info.Shape = make([]int64, 0, len(shape))
			for _, dim := range shape {
				if f, ok := dim.(float64); ok {
					info.Shape = append(info.Shape, int64(f))
				}
			}
		}
		infos[key] = info
	}

	return infos
}
