/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/enumb"
)

// Named wraps an enumerator of T so that it is encoded by name instead of by
// value. The name is resolved through enumb.For[T]().
//
//	type Account struct {
//	    ID     string
//	    Access codec.Named[Access]
//	}
//
//	item, err := attributevalue.MarshalMap(Account{ID: "1", Access: codec.Of(AccessAnys())})
//	// item["Access"] is {S: "Anys"}
type Named[T comparable] struct {
	Value T
}

// Of wraps v.
func Of[T comparable](v T) Named[T] {
	return Named[T]{Value: v}
}

func (n Named[T]) String() string {
	if name, ok := enumb.Descriptor(n.Value); ok {
		return name
	}
	return ""
}

func (n Named[T]) MarshalText() ([]byte, error) {
	return MarshalText(enumb.For[T](), n.Value)
}

func (n *Named[T]) UnmarshalText(data []byte) error {
	v, err := UnmarshalText(enumb.For[T](), data)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}

func (n Named[T]) MarshalJSON() ([]byte, error) {
	name, err := n.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(name))
}

func (n *Named[T]) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(name))
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (n Named[T]) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return MarshalAttributeValue(enumb.For[T](), n.Value)
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (n *Named[T]) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	v, err := UnmarshalAttributeValue(enumb.For[T](), av)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}
