/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/enumb/errors"
	"github.com/suparena/enumb/registry"
)

// MarshalText encodes v as the name it is registered under.
func MarshalText[V comparable](r *registry.Registry[V], v V) ([]byte, error) {
	name, ok := r.Descriptor(v)
	if !ok {
		return nil, errors.NewNotFoundError(r.TypeName(), fmt.Sprint(v))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a name, matched case-insensitively, into its value.
func UnmarshalText[V comparable](r *registry.Registry[V], data []byte) (V, error) {
	v, ok, err := r.Parse(string(data))
	if err != nil {
		return v, err
	}
	if !ok {
		return v, errors.NewNotFoundError(r.TypeName(), string(data))
	}
	return v, nil
}

// MarshalAttributeValue encodes v as a DynamoDB string attribute holding its name.
func MarshalAttributeValue[V comparable](r *registry.Registry[V], v V) (types.AttributeValue, error) {
	name, err := MarshalText(r, v)
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberS{Value: string(name)}, nil
}

// UnmarshalAttributeValue decodes a DynamoDB string attribute produced by
// MarshalAttributeValue.
func UnmarshalAttributeValue[V comparable](r *registry.Registry[V], av types.AttributeValue) (V, error) {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		var zero V
		return zero, errors.NewValidationError(r.TypeName(),
			fmt.Sprintf("expected a string attribute, got %T", av))
	}
	return UnmarshalText(r, []byte(s.Value))
}
