package jsonval

// Kind discriminates the variants of a JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Member is one key/value pair of a JSON object. Objects keep their
// members in document order; that order is significant downstream.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable, untyped JSON tree. Only the payload field
// matching Kind is meaningful.
type Value struct {
	Kind    Kind
	Bool    bool
	Str     string // string payload, or the raw decimal text of a number
	Items   []Value
	Members []Member
}

func Null() Value             { return Value{Kind: KindNull} }
func Boolean(b bool) Value    { return Value{Kind: KindBool, Bool: b} }
func Number(raw string) Value { return Value{Kind: KindNumber, Str: raw} }
func String(s string) Value   { return Value{Kind: KindString, Str: s} }

func Array(items ...Value) Value {
	return Value{Kind: KindArray, Items: items}
}

func Object(members ...Member) Value {
	return Value{Kind: KindObject, Members: members}
}
