package defaults

import (
	"go/types"
	"reflect"
	"strings"
)

// FieldInfo describes one top-level field of a defaults struct.
type FieldInfo struct {
	// Key is the field key on the wire, resolved from the struct tag.
	Key string
	// FieldName is the Go field name.
	FieldName string
}

// TypeAnalysis holds the enumerable fields of one struct type.
type TypeAnalysis struct {
	TypeName string
	Fields   []FieldInfo
}

// analyzeStruct collects the exported, non-skipped top-level fields of a
// struct type. Only direct fields matter; filling is shallow, so nested
// shapes never influence the enumeration.
func analyzeStruct(typeName string, structType *types.Struct, tagName string) (*TypeAnalysis, error) {
	analysis := &TypeAnalysis{
		TypeName: typeName,
		Fields:   make([]FieldInfo, 0, structType.NumFields()),
	}

	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)
		if !field.Exported() {
			continue
		}

		key := getFieldKey(field.Name(), structType.Tag(i), tagName)
		if key == "-" {
			continue
		}

		analysis.Fields = append(analysis.Fields, FieldInfo{
			Key:       key,
			FieldName: field.Name(),
		})
	}

	return analysis, nil
}

// getFieldKey returns the field key from the tag or field name.
func getFieldKey(fieldName, tag, tagName string) string {
	structTag := reflect.StructTag(tag)
	tagValue := structTag.Get(tagName)
	if tagValue == "" {
		return fieldName
	}

	// Same convention as encoding/json: split by comma, use first part.
	if idx := strings.Index(tagValue, ","); idx >= 0 {
		tagValue = tagValue[:idx]
	}

	if tagValue == "" {
		return fieldName
	}

	return tagValue
}
