package ir

// ToAny converts a tree to plain Go values: map[string]any for Objects,
// []any for Lists, and string/int64/float64/bool/nil for leaves. Duplicate
// object keys keep the first occurrence, matching Get.
func ToAny(y *Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case IntType:
		return y.Int64
	case FloatType:
		return y.Float64
	case StringType:
		return y.String
	case ListType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToAny(yv)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Values))
		for _, yv := range y.Values {
			if _, ok := res[yv.Key]; ok {
				continue
			}
			res[yv.Key] = ToAny(yv)
		}
		return res
	default:
		return nil
	}
}
