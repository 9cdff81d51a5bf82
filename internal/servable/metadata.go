package servable

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/vineetp6/serving/internal/apis"
)

// validateGetModelMetadataRequest rejects any unsupported metadata field
// before the response is touched, so a bad request never yields a partial
// response.
func validateGetModelMetadataRequest(req *apis.GetModelMetadataRequest) error {
	for _, field := range req.MetadataField {
		if field != apis.SignatureDefFieldName {
			return status.Errorf(codes.InvalidArgument, "metadata field %s is not supported", field)
		}
	}
	return nil
}

// GetModelMetadata answers a metadata introspection request. The only
// supported field kind is the signature-def map; the response model spec is
// stamped with the servable's own name and version regardless of what the
// request carried.
func (s *Servable) GetModelMetadata(req *apis.GetModelMetadataRequest, resp *apis.GetModelMetadataResponse) error {
	if err := validateGetModelMetadataRequest(req); err != nil {
		return err
	}

	for _, field := range req.MetadataField {
		if field != apis.SignatureDefFieldName {
			return status.Errorf(codes.InvalidArgument, "metadata field %s is not supported", field)
		}

		packed, err := apis.PackSignatureDefMap(s.model.Signatures())
		if err != nil {
			return status.Errorf(codes.Internal, "failed to pack signature defs: %v", err)
		}

		resp.ModelSpec = apis.ModelSpec{
			Name:    s.name,
			Version: apis.VersionValue(s.version),
		}
		if resp.Metadata == nil {
			resp.Metadata = make(map[string]*anypb.Any)
		}
		resp.Metadata[field] = packed
	}

	return nil
}
