package layout

// catalogAlias resolves a Call name to the catalog entry that implements
// it. The parser's operator lowering produces the generic names "add" and
// "subtract" (spec.md §8's testable property), but the catalog only
// carries typed variants (add_numbers, add_vectors, ...); numeric addition
// and subtraction are by far the common case, so the generic names resolve
// to the numeric entries. Names the catalog defines directly are returned
// unchanged.
func catalogAlias(name string) string {
	switch name {
	case "add":
		return "add_numbers"
	case "subtract":
		return "subtract_numbers"
	default:
		return name
	}
}
