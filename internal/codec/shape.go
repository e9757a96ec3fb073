package codec

// shapeKind is the emission strategy chosen for a given array, per the
// decision table in SPEC_FULL.md §4.3.
type shapeKind int

const (
	shapeEmpty shapeKind = iota
	shapeInline
	shapeListOfInlineArrays
	shapeTabular
	shapeList
)

// classifyArray inspects values and returns the emission strategy plus,
// for shapeTabular, the ordered field list extracted from the first
// element.
func classifyArray(values []Value) (shapeKind, []string) {
	if len(values) == 0 {
		return shapeEmpty, nil
	}
	if isPrimitiveArray(values) {
		return shapeInline, nil
	}
	if fields, ok := detectTabular(values); ok {
		return shapeTabular, fields
	}
	if isArrayOfPrimitiveArrays(values) {
		return shapeListOfInlineArrays, nil
	}
	return shapeList, nil
}

func isPrimitive(v Value) bool {
	return v.IsPrimitive()
}

func isPrimitiveArray(values []Value) bool {
	for _, v := range values {
		if !isPrimitive(v) {
			return false
		}
	}
	return true
}

func isArrayOfPrimitiveArrays(values []Value) bool {
	for _, v := range values {
		if v.Kind != KindArray {
			return false
		}
		if !isPrimitiveArray(v.ArrayValue()) {
			return false
		}
	}
	return true
}

// detectTabular implements the uniformity test of SPEC_FULL.md §4.3: every
// element must be an object, share the same key sequence (same count,
// same set) as the first element, and hold only primitive values. Missing
// keys or nested objects/arrays disqualify the array.
func detectTabular(values []Value) ([]string, bool) {
	if len(values) == 0 {
		return nil, false
	}
	first := values[0]
	if first.Kind != KindObject || first.ObjectValue().Len() == 0 {
		return nil, false
	}
	firstFields := first.ObjectValue().Fields
	fields := make([]string, len(firstFields))
	fieldSet := make(map[string]struct{}, len(firstFields))
	for i, f := range firstFields {
		if !isPrimitive(f.Value) {
			return nil, false
		}
		fields[i] = f.Key
		fieldSet[f.Key] = struct{}{}
	}

	for _, v := range values[1:] {
		if v.Kind != KindObject {
			return nil, false
		}
		obj := v.ObjectValue()
		if obj.Len() != len(fields) {
			return nil, false
		}
		seen := make(map[string]struct{}, len(fields))
		for _, f := range obj.Fields {
			if _, ok := fieldSet[f.Key]; !ok || !isPrimitive(f.Value) {
				return nil, false
			}
			seen[f.Key] = struct{}{}
		}
		if len(seen) != len(fields) {
			return nil, false
		}
	}
	return fields, true
}

// fieldValue returns the value stored under key in obj, or Null if the
// uniformity check admitted the array but a particular row is missing the
// key (not reachable under the standard tabular policy, but kept defensive
// per SPEC_FULL.md §4.3).
func fieldValue(obj Object, key string) Value {
	if v, ok := obj.Get(key); ok {
		return v
	}
	return Null()
}
