package analyze

// MapType is a view of a type known to be a map.
type MapType struct {
	KeyType   *TypeInfo
	ValueType *TypeInfo
}

// AsMap returns a MapType view of t. Named map types are looked through.
// ok is false when t is not a map.
func AsMap(t *TypeInfo) (MapType, bool) {
	t = underlyingOf(t)
	if t == nil || t.Kind != TypeKindMap {
		return MapType{}, false
	}

	return MapType{KeyType: t.KeyType, ValueType: t.ElemType}, true
}

// UnwrappedValueType returns the map's value type with one level of the
// wrapper class stripped: for map[K]di.Provider[V] and the Provider class it
// returns V. Values that are not wrapped in class are returned as-is.
func (m MapType) UnwrappedValueType(class TypeID) *TypeInfo {
	v := m.ValueType
	if v != nil && v.ID == class && len(v.TypeArgs) == 1 {
		return v.TypeArgs[0]
	}

	return v
}

// SetType is a view of a type used as a set.
type SetType struct {
	elem *TypeInfo
}

// AsSet returns a SetType view of t. Recognized set shapes are
// map[T]struct{}, []T, and a named generic with a single type argument
// (e.g. sets.Set[T]). ok is false for anything else.
func AsSet(t *TypeInfo) (SetType, bool) {
	if t == nil {
		return SetType{}, false
	}

	if t.IsParameterized() && len(t.TypeArgs) == 1 {
		return SetType{elem: t.TypeArgs[0]}, true
	}

	u := underlyingOf(t)
	if u == nil {
		return SetType{}, false
	}

	switch u.Kind {
	case TypeKindSlice:
		return SetType{elem: u.ElemType}, true

	case TypeKindMap:
		if isEmptyStruct(u.ElemType) {
			return SetType{elem: u.KeyType}, true
		}
	}

	return SetType{}, false
}

// ElementType returns the set's element type.
func (s SetType) ElementType() *TypeInfo {
	return s.elem
}

// underlyingOf follows named types to their underlying type when known.
func underlyingOf(t *TypeInfo) *TypeInfo {
	for t != nil && t.IsNamed() && t.Underlying != nil {
		t = t.Underlying
	}

	return t
}

func isEmptyStruct(t *TypeInfo) bool {
	return t != nil && !t.IsNamed() && t.Kind == TypeKindStruct && len(t.Fields) == 0
}
