package gqlschema

// dealias peels a single TypeRef indirection, leaving every other Type
// untouched. Named-type accessors throughout this file call dealias (via
// Dealias) before inspecting a node's concrete kind.
func dealias(t Type) Type { return Dealias(t) }

// Equivalent implements `a =:= b`: physical identity, or dealiased
// structural equality. TypeRef is transparent on both sides.
func Equivalent(a, b Type) bool {
	a, b = dealias(a), dealias(b)
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *Nullable:
		y, ok := b.(*Nullable)
		return ok && Equivalent(x.Of, y.Of)
	case *List:
		y, ok := b.(*List)
		return ok && Equivalent(x.Of, y.Of)
	case NamedType:
		y, ok := b.(NamedType)
		return ok && x.TypeName() == y.TypeName()
	}
	return false
}

// NominalEquivalent is the relation used by specific resolver contexts:
// equality, or both sides named with an equal name, ignoring any
// enclosing-modifier differences.
func NominalEquivalent(a, b Type) bool {
	if Equivalent(a, b) {
		return true
	}
	na, oka := dealias(peelAllModifiers(a)).(NamedType)
	nb, okb := dealias(peelAllModifiers(b)).(NamedType)
	return oka && okb && na.TypeName() == nb.TypeName()
}

func peelAllModifiers(t Type) Type {
	for {
		switch v := dealias(t).(type) {
		case *Nullable:
			t = v.Of
		case *List:
			t = v.Of
		default:
			return t
		}
	}
}

// Subtype implements `a <:< b` per the seven ordered rules: physical/
// dealiased equality, union membership, interface implementation,
// matching modifiers, non-null-is-subtype-of-nullable, and list
// covariance. Rule order matters — the first matching clause decides.
func Subtype(a, b Type) bool {
	a, b = dealias(a), dealias(b)

	// 1. a == b
	if Equivalent(a, b) {
		return true
	}

	// 2. b = Union(members)
	if u, ok := b.(*Union); ok {
		for _, m := range u.Members {
			if Subtype(a, m) {
				return true
			}
		}
	}

	// 3. a = Object|Interface with implemented interfaces
	switch v := a.(type) {
	case *Object:
		for _, i := range v.Interfaces {
			if Subtype(i, b) {
				return true
			}
		}
	case *Interface:
		for _, i := range v.Interfaces {
			if Subtype(i, b) {
				return true
			}
		}
	}

	// 4/5. Nullable handling.
	an, aNullable := a.(*Nullable)
	bn, bNullable := b.(*Nullable)
	switch {
	case aNullable && bNullable:
		return Subtype(an.Of, bn.Of)
	case !aNullable && bNullable:
		return Subtype(a, bn.Of)
	case aNullable && !bNullable:
		return false
	}

	// 6. List covariance.
	if al, ok := a.(*List); ok {
		if bl, ok := b.(*List); ok {
			return Subtype(al.Of, bl.Of)
		}
	}

	// 7. Otherwise false.
	return false
}

// NullableOf wraps t in Nullable; idempotent — calling it on an
// already-nullable type is a no-op.
func NullableOf(t Type) Type {
	if _, ok := dealias(t).(*Nullable); ok {
		return t
	}
	return &Nullable{Of: t}
}

// NonNullOf strips an outer Nullable wrapper, if present.
func NonNullOf(t Type) Type {
	if n, ok := dealias(t).(*Nullable); ok {
		return n.Of
	}
	return t
}

// ListOf wraps t in the List modifier.
func ListOf(t Type) Type { return &List{Of: t} }

// ItemOf unwraps a single List modifier, nil if t is not a list.
func ItemOf(t Type) Type {
	if l, ok := dealias(t).(*List); ok {
		return l.Of
	}
	return nil
}

// IsListType reports whether t, after dealiasing, is a List.
func IsListType(t Type) bool {
	_, ok := dealias(t).(*List)
	return ok
}

// IsNullableType reports whether t, after dealiasing, is Nullable.
func IsNullableType(t Type) bool {
	_, ok := dealias(t).(*Nullable)
	return ok
}

// WithModifiersOf wraps this in the same List/Nullable envelope tpl
// carries, replacing tpl's innermost named type with this.
func WithModifiersOf(this Type, tpl Type) Type {
	switch v := dealias(tpl).(type) {
	case *Nullable:
		return NullableOf(WithModifiersOf(this, v.Of))
	case *List:
		return ListOf(WithModifiersOf(this, v.Of))
	default:
		return this
	}
}

// IsLeaf reports whether t, after peeling Nullable and TypeRef, is a
// Scalar or Enum.
func IsLeaf(t Type) bool {
	return isLeafNamed(peelNullable(t))
}

func isLeafNamed(t Type) bool {
	switch t.(type) {
	case *Scalar, *Enum:
		return true
	default:
		return false
	}
}

// AsLeaf returns t peeled down to its leaf NamedType, nil if it is not a
// leaf.
func AsLeaf(t Type) NamedType {
	peeled := peelNullable(t)
	if isLeafNamed(peeled) {
		return peeled.(NamedType)
	}
	return nil
}

// IsUnderlyingLeaf reports whether t, after stripping List/Nullable/
// TypeRef entirely, is a leaf.
func IsUnderlyingLeaf(t Type) bool {
	return isLeafNamed(peelAll(t))
}

// UnderlyingLeaf strips List/Nullable/TypeRef and returns the leaf
// NamedType, nil if the result is not a leaf.
func UnderlyingLeaf(t Type) NamedType {
	peeled := peelAll(t)
	if isLeafNamed(peeled) {
		return peeled.(NamedType)
	}
	return nil
}

// peelNullable repeatedly dealiases and strips Nullable wrappers, leaving
// List untouched. Used by FieldType and IsLeaf.
func peelNullable(t Type) Type {
	for {
		d := dealias(t)
		if n, ok := d.(*Nullable); ok {
			t = n.Of
			continue
		}
		return d
	}
}

// peelAll repeatedly dealiases and strips both Nullable and List
// wrappers. Used by UnderlyingObject, UnderlyingField and UnderlyingLeaf.
func peelAll(t Type) Type {
	for {
		d := dealias(t)
		switch v := d.(type) {
		case *Nullable:
			t = v.Of
		case *List:
			t = v.Of
		default:
			return d
		}
	}
}

// FieldType peels Nullable and TypeRef and, for an Object or Interface,
// returns the named field's type. Any other underlying kind yields nil.
func FieldType(t Type, name string) Type {
	switch v := peelNullable(t).(type) {
	case *Object:
		if f := v.Field(name); f != nil {
			return f.Type
		}
	case *Interface:
		if f := v.Field(name); f != nil {
			return f.Type
		}
	}
	return nil
}

// Path walks a sequence of field names, peeling List and Nullable between
// steps; an empty path yields t itself.
func Path(t Type, names []string) Type {
	cur := t
	for _, name := range names {
		ft := FieldType(peelAll(cur), name)
		if ft == nil {
			return nil
		}
		cur = ft
	}
	return cur
}

// PathIsList reports whether some intermediate step along names is, or
// ends at, a List. An empty path inspects t directly.
func PathIsList(t Type, names []string) bool {
	if len(names) == 0 {
		return IsListType(t)
	}
	cur := t
	for _, name := range names {
		if IsListType(dealias(cur)) {
			return true
		}
		ft := FieldType(peelAll(cur), name)
		if ft == nil {
			return false
		}
		cur = ft
	}
	return IsListType(dealias(cur))
}

// PathIsNullable reports whether some intermediate step along names is
// Nullable. An empty path always returns false (deliberately asymmetric
// with PathIsList; see the design notes on this pair).
func PathIsNullable(t Type, names []string) bool {
	if len(names) == 0 {
		return false
	}
	cur := t
	for _, name := range names {
		if IsNullableType(dealias(cur)) {
			return true
		}
		ft := FieldType(peelAll(cur), name)
		if ft == nil {
			return false
		}
		cur = ft
	}
	return IsNullableType(dealias(cur))
}

// UnderlyingObject strips List/Nullable/TypeRef and yields an Object,
// Interface or Union; nil for any other underlying kind.
func UnderlyingObject(t Type) NamedType {
	switch v := peelAll(t).(type) {
	case *Object:
		return v
	case *Interface:
		return v
	case *Union:
		return v
	default:
		return nil
	}
}

// UnderlyingField strips List/Nullable/TypeRef then looks up name on the
// resulting object or interface.
func UnderlyingField(t Type, name string) Type {
	switch v := peelAll(t).(type) {
	case *Object:
		if f := v.Field(name); f != nil {
			return f.Type
		}
	case *Interface:
		if f := v.Field(name); f != nil {
			return f.Type
		}
	}
	return nil
}

// VariantField reports whether t is an object type having field f where
// at least one implemented interface lacks f — informing concrete-type
// dispatch in query planning.
func VariantField(t Type, f string) bool {
	o, ok := dealias(t).(*Object)
	if !ok || o.Field(f) == nil {
		return false
	}
	for _, i := range o.Interfaces {
		if i.Field(f) == nil {
			return true
		}
	}
	return false
}

// Exhaustive reports whether every Object subtype of tpe is covered by
// some branch, used for interface/union fragment coverage checks. For an
// Object or Union this needs no schema context; covering every object
// implementing an Interface requires scanning the schema's type list, so
// that case is handled by Schema.Exhaustive instead.
func Exhaustive(tpe Type, branches []Type) bool {
	var members []*Object
	switch v := dealias(tpe).(type) {
	case *Object:
		members = []*Object{v}
	case *Union:
		members = v.Members
	default:
		return false
	}
	if len(members) == 0 {
		return false
	}
	for _, m := range members {
		covered := false
		for _, b := range branches {
			if Subtype(m, b) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}
