package order

// Type categorizes an order and selects its classification path.
//
// Export orders are batched into a CSV export, lookup orders consult the
// external lookup service, flag orders derive their status from the boolean
// flag, and anything unrecognized is TypeUnknown. Unlike Status, TypeUnknown
// is a legitimate value: orders with an unrecognized type still flow through
// the pipeline and end up in the unknown_type status.
type Type int

const (
	// TypeUnknown marks an order whose category is not recognized.
	TypeUnknown Type = iota

	// TypeExport marks orders batched into the CSV export.
	TypeExport

	// TypeLookup marks orders classified via the external lookup service.
	TypeLookup

	// TypeFlag marks orders classified by their boolean flag.
	TypeFlag
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "unknown",
		TypeExport:  "export",
		TypeLookup:  "lookup",
		TypeFlag:    "flag",
	}
}

// String returns the persisted name of the type, "unknown" for
// unrecognized values.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// ParseType maps a stored type name to its Type value. Unrecognized names
// map to TypeUnknown rather than failing: an unknown category is a valid
// business outcome, not a data error.
func ParseType(s string) Type {
	for t, str := range getTypeStrings() {
		if str == s {
			return t
		}
	}
	return TypeUnknown
}
