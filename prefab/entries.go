package prefab

// footprint arranges ids row-major into dz rows of width dx, dy always 1.
// Every entry in this catalog happens to be 1 or 2 cells wide.
func footprint(dx int, ids ...uint16) [][][]uint16 {
	dz := len(ids) / dx
	out := make([][][]uint16, dz)
	for z := 0; z < dz; z++ {
		row := append([]uint16(nil), ids[z*dx:(z+1)*dx]...)
		out[z] = [][]uint16{row}
	}
	return out
}

func rawPort(name string, k RawKind) ValuePort { return ValuePort{Name: name, Kind: raw(k)} }
func refPort(name string, k RawKind) ValuePort { return ValuePort{Name: name, Kind: reference(k)} }
func opt(name string, k OptKind) OptField      { return OptField{Name: name, Kind: k} }

// terrainBlock is the common shape of the 1-cell terrain primitives: a
// single part ID, no inputs, one raw Object output.
func terrainBlock(name string, id uint16) Prefab {
	return Prefab{Name: name, Parts: footprint(1, id), Outputs: []ValuePort{rawPort("object", Object)}}
}

// Entries is the full prefab catalog, transcribed in part-ID order from
// the source compiler's script table. Four name collisions are kept
// verbatim rather than merged or renamed — see DESIGN.md: `rotation`
// (second copy outputs Rotation instead of Vector), `inspect_object` and
// `ceiling` (byte-identical copies), and `add_constraint` (two entirely
// different overloads). subtract_numbers' id range also has the source's
// own off-by-one (0x64, 0x65, 0x65, 0x67 — 0x65 repeated in place of
// 0x66); kept as transcribed rather than silently corrected.
var Entries = []Prefab{
	terrainBlock("stone_block", 0x01),
	terrainBlock("bricks", 0x02),
	terrainBlock("grass", 0x03),
	terrainBlock("spotted_grass", 0x04),
	terrainBlock("dirt", 0x05),
	terrainBlock("wood_x", 0x06),
	terrainBlock("wood_z", 0x07),
	terrainBlock("wood_y", 0x08),

	{Name: "comment", Parts: footprint(1, 0x0F), Options: []OptField{opt("value", Name)}},

	{Name: "inspect_number", Parts: footprint(2, 0x10, 0x11, 0x12, 0x13),
		Inputs: []ValuePort{rawPort("number", Number)}, Callable: true},
	{Name: "inspect_vector", Parts: footprint(2, 0x14, 0x15, 0x16, 0x17),
		Inputs: []ValuePort{rawPort("vector", Vector)}, Callable: true},
	{Name: "inspect_rotation", Parts: footprint(2, 0x18, 0x19, 0x1A, 0x1B),
		Inputs: []ValuePort{rawPort("rotation", Rotation)}, Callable: true},
	{Name: "inspect_truth", Parts: footprint(2, 0x1C, 0x1D, 0x1E, 0x1F),
		Inputs: []ValuePort{rawPort("truth", Truth)}, Callable: true},
	{Name: "inspect_object", Parts: footprint(2, 0x20, 0x21, 0x22, 0x23),
		Inputs: []ValuePort{rawPort("truth", Object)}, Callable: true},
	{Name: "inspect_object", Parts: footprint(2, 0x20, 0x21, 0x22, 0x23),
		Inputs: []ValuePort{rawPort("truth", Object)}, Callable: true},

	{Name: "number", Parts: footprint(2, 0x24, 0x25),
		Options: []OptField{opt("value", Float32)}, Outputs: []ValuePort{rawPort("number", Number)}},
	{Name: "vector", Parts: footprint(2, 0x26, 0x27, 0x28, 0x29),
		Options: []OptField{opt("value", Vec)}, Outputs: []ValuePort{rawPort("vector", Vector)}},
	{Name: "rotation", Parts: footprint(2, 0x2A, 0x2B, 0x2C, 0x2D),
		Options: []OptField{opt("value", Vec)}, Outputs: []ValuePort{rawPort("vector", Vector)}},
	{Name: "rotation", Parts: footprint(2, 0x2A, 0x2B, 0x2C, 0x2D),
		Options: []OptField{opt("value", Vec)}, Outputs: []ValuePort{rawPort("vector", Rotation)}},

	{Name: "get_number", Parts: footprint(2, 0x2E, 0x2F),
		Options: []OptField{opt("name", Name)}, Outputs: []ValuePort{refPort("number", Number)}},
	{Name: "get_vector", Parts: footprint(2, 0x30, 0x31),
		Options: []OptField{opt("name", Name)}, Outputs: []ValuePort{refPort("vector", Vector)}},
	{Name: "get_rotation", Parts: footprint(2, 0x32, 0x33),
		Options: []OptField{opt("name", Name)}, Outputs: []ValuePort{refPort("rotation", Rotation)}},
	{Name: "get_truth", Parts: footprint(2, 0x34, 0x35),
		Options: []OptField{opt("name", Name)}, Outputs: []ValuePort{refPort("truth", Truth)}},
	{Name: "get_object", Parts: footprint(2, 0x36, 0x37),
		Options: []OptField{opt("name", Name)}, Outputs: []ValuePort{refPort("object", Object)}},
	{Name: "get_constraint", Parts: footprint(2, 0x38, 0x39),
		Options: []OptField{opt("name", Name)}, Outputs: []ValuePort{refPort("constraint", Constraint)}},

	{Name: "set_number_list", Parts: footprint(2, 0x3A, 0x3B, 0x3C, 0x3D), Callable: true,
		Inputs: []ValuePort{refPort("variable", Number), rawPort("value", Number)}},
	{Name: "set_vector_list", Parts: footprint(2, 0x3E, 0x3F, 0x40, 0x41), Callable: true,
		Inputs: []ValuePort{refPort("variable", Vector), rawPort("value", Vector)}},
	{Name: "set_rotation_list", Parts: footprint(2, 0x42, 0x43, 0x44, 0x45), Callable: true,
		Inputs: []ValuePort{refPort("variable", Rotation), rawPort("value", Rotation)}},
	{Name: "set_truth_list", Parts: footprint(2, 0x46, 0x47, 0x48, 0x49), Callable: true,
		Inputs: []ValuePort{refPort("variable", Truth), rawPort("value", Truth)}},
	{Name: "set_object_list", Parts: footprint(2, 0x4A, 0x4B, 0x4C, 0x4D), Callable: true,
		Inputs: []ValuePort{refPort("variable", Object), rawPort("value", Object)}},
	{Name: "set_constraint_list", Parts: footprint(2, 0x4E, 0x4F, 0x50, 0x51), Callable: true,
		Inputs: []ValuePort{refPort("variable", Constraint), rawPort("value", Constraint)}},

	{Name: "list_number", Parts: footprint(2, 0x52, 0x53, 0x54, 0x55),
		Inputs:  []ValuePort{refPort("variable", Number), rawPort("index", Number)},
		Outputs: []ValuePort{refPort("element", Number)}},
	{Name: "list_object", Parts: footprint(2, 0x56, 0x57, 0x58, 0x59),
		Inputs:  []ValuePort{refPort("variable", Object), rawPort("index", Number)},
		Outputs: []ValuePort{refPort("element", Object)}},

	{Name: "negate", Parts: footprint(2, 0x5A, 0x5B),
		Inputs: []ValuePort{rawPort("num", Number)}, Outputs: []ValuePort{rawPort("negative", Number)}},
	{Name: "add_numbers", Parts: footprint(2, 0x5C, 0x5D, 0x5E, 0x5F),
		Inputs: []ValuePort{rawPort("num1", Number), rawPort("num2", Number)}, Outputs: []ValuePort{rawPort("sum", Number)}},
	{Name: "add_vectors", Parts: footprint(2, 0x60, 0x61, 0x62, 0x63),
		Inputs: []ValuePort{rawPort("vec1", Vector), rawPort("vec2", Vector)}, Outputs: []ValuePort{rawPort("sum", Vector)}},
	{Name: "subtract_numbers", Parts: footprint(2, 0x64, 0x65, 0x65, 0x67),
		Inputs: []ValuePort{rawPort("num1", Number), rawPort("num2", Number)}, Outputs: []ValuePort{rawPort("difference", Number)}},
	{Name: "subtract_vectors", Parts: footprint(2, 0x68, 0x69, 0x6A, 0x6B),
		Inputs: []ValuePort{rawPort("vec1", Vector), rawPort("vec2", Vector)}, Outputs: []ValuePort{rawPort("difference", Vector)}},
	{Name: "multiply", Parts: footprint(2, 0x6C, 0x6D, 0x6E, 0x6F),
		Inputs: []ValuePort{rawPort("num1", Number), rawPort("num2", Number)}, Outputs: []ValuePort{rawPort("product", Number)}},
	{Name: "scale", Parts: footprint(2, 0x70, 0x71, 0x72, 0x73),
		Inputs: []ValuePort{rawPort("vec", Vector), rawPort("factor", Number)}, Outputs: []ValuePort{rawPort("scaled", Vector)}},
	{Name: "rotate", Parts: footprint(2, 0x74, 0x75, 0x76, 0x77),
		Inputs: []ValuePort{rawPort("vec", Vector), rawPort("rot", Rotation)}, Outputs: []ValuePort{rawPort("rotated", Vector)}},
	{Name: "combine", Parts: footprint(2, 0x78, 0x79, 0x7A, 0x7B),
		Inputs: []ValuePort{rawPort("rot1", Rotation), rawPort("rot2", Rotation)}, Outputs: []ValuePort{rawPort("combination", Rotation)}},
	{Name: "divide", Parts: footprint(2, 0x7C, 0x7D, 0x7E, 0x7F),
		Inputs: []ValuePort{rawPort("num1", Number), rawPort("num2", Number)}, Outputs: []ValuePort{rawPort("quotient", Number)}},

	{Name: "less_than", Parts: footprint(2, 0x80, 0x81, 0x82, 0x83),
		Inputs: []ValuePort{rawPort("num1", Number), rawPort("num2", Number)}, Outputs: []ValuePort{rawPort("result", Truth)}},
	{Name: "equal_numbers", Parts: footprint(2, 0x84, 0x85, 0x86, 0x87),
		Inputs: []ValuePort{rawPort("num1", Number), rawPort("num2", Number)}, Outputs: []ValuePort{rawPort("result", Truth)}},
	{Name: "equal_vectors", Parts: footprint(2, 0x88, 0x89, 0x8A, 0x8B),
		Inputs: []ValuePort{rawPort("vec1", Vector), rawPort("vec2", Vector)}, Outputs: []ValuePort{rawPort("result", Truth)}},
	{Name: "equal_objects", Parts: footprint(2, 0x8C, 0x8D, 0x8E, 0x8F),
		Inputs: []ValuePort{rawPort("obj1", Object), rawPort("obj2", Object)}, Outputs: []ValuePort{rawPort("result", Truth)}},

	{Name: "not", Parts: footprint(2, 0x90, 0x91),
		Inputs: []ValuePort{rawPort("tru", Truth)}, Outputs: []ValuePort{rawPort("opposite", Truth)}},
	{Name: "and", Parts: footprint(2, 0x92, 0x93, 0x94, 0x95),
		Inputs: []ValuePort{rawPort("tru1", Truth), rawPort("tru2", Truth)}, Outputs: []ValuePort{rawPort("conjunction", Truth)}},

	{Name: "make_vector", Parts: footprint(2, 0x96, 0x97, 0x98, 0x99, 0x9A, 0x9B),
		Inputs:  []ValuePort{rawPort("x", Number), rawPort("y", Number), rawPort("z", Number)},
		Outputs: []ValuePort{rawPort("vector", Vector)}},
	{Name: "break_vector", Parts: footprint(2, 0x9C, 0x9D, 0x9E, 0x9F, 0xA0, 0xA1),
		Inputs:  []ValuePort{rawPort("vector", Vector)},
		Outputs: []ValuePort{rawPort("x", Number), rawPort("y", Number), rawPort("z", Number)}},
	{Name: "make_rotation", Parts: footprint(2, 0xA2, 0xA3, 0xA4, 0xA5, 0xA6, 0xA7),
		Inputs:  []ValuePort{rawPort("x", Number), rawPort("y", Number), rawPort("z", Number)},
		Outputs: []ValuePort{rawPort("rotation", Rotation)}},

	{Name: "random", Parts: footprint(2, 0xA8, 0xA9, 0xAA, 0xAB),
		Inputs: []ValuePort{rawPort("min", Number), rawPort("max", Number)}, Outputs: []ValuePort{rawPort("random", Number)}},
	{Name: "modulo", Parts: footprint(2, 0xAC, 0xAD, 0xAE, 0xAF),
		Inputs: []ValuePort{rawPort("a", Number), rawPort("b", Number)}, Outputs: []ValuePort{rawPort("remainder", Number)}},
	{Name: "min", Parts: footprint(2, 0xB0, 0xB1, 0xB2, 0xB3),
		Inputs: []ValuePort{rawPort("a", Number), rawPort("b", Number)}, Outputs: []ValuePort{rawPort("min", Number)}},
	{Name: "max", Parts: footprint(2, 0xB4, 0xB5, 0xB6, 0xB7),
		Inputs: []ValuePort{rawPort("a", Number), rawPort("b", Number)}, Outputs: []ValuePort{rawPort("max", Number)}},
	{Name: "round", Parts: footprint(2, 0xB8, 0xB9),
		Inputs: []ValuePort{rawPort("number", Number)}, Outputs: []ValuePort{rawPort("rounded", Number)}},
	{Name: "floor", Parts: footprint(2, 0xBA, 0xBB),
		Inputs: []ValuePort{rawPort("number", Number)}, Outputs: []ValuePort{rawPort("rounded", Number)}},
	{Name: "ceiling", Parts: footprint(2, 0xBC, 0xBD),
		Inputs: []ValuePort{rawPort("number", Number)}, Outputs: []ValuePort{rawPort("rounded", Number)}},
	{Name: "ceiling", Parts: footprint(2, 0xBC, 0xBD),
		Inputs: []ValuePort{rawPort("number", Number)}, Outputs: []ValuePort{rawPort("rounded", Number)}},

	{Name: "distance", Parts: footprint(2, 0xBE, 0xBF, 0xC0, 0xC1),
		Inputs: []ValuePort{rawPort("vec1", Vector), rawPort("vec2", Vector)}, Outputs: []ValuePort{rawPort("distance", Number)}},
	{Name: "lerp", Parts: footprint(2, 0xC2, 0xC3, 0xC4, 0xC5, 0xC6, 0xC7),
		Inputs:  []ValuePort{rawPort("from", Rotation), rawPort("to", Rotation), rawPort("amount", Number)},
		Outputs: []ValuePort{rawPort("rotation", Rotation)}},
	{Name: "axis_angle", Parts: footprint(2, 0xC8, 0xC9, 0xCA, 0xCB),
		Inputs: []ValuePort{rawPort("axis", Vector), rawPort("angle", Number)}, Outputs: []ValuePort{rawPort("rotation", Rotation)}},
	{Name: "look_rotation", Parts: footprint(2, 0xCC, 0xCD, 0xCE, 0xCF),
		Inputs: []ValuePort{rawPort("direction", Vector), rawPort("up", Vector)}, Outputs: []ValuePort{rawPort("rotation", Rotation)}},
	{Name: "line_vs_plane", Parts: footprint(2, 0xD0, 0xD1, 0xD2, 0xD3, 0xD4, 0xD5, 0xD6, 0xD7),
		Inputs: []ValuePort{
			rawPort("line_from", Vector), rawPort("line_to", Vector),
			rawPort("plane_point", Vector), rawPort("plane_normal", Vector),
		},
		Outputs: []ValuePort{rawPort("intersection", Vector)}},
	{Name: "screen_to_world", Parts: footprint(2, 0xD8, 0xD9, 0xDA, 0xDB),
		Inputs:  []ValuePort{rawPort("screen_x", Number), rawPort("screen_y", Number)},
		Outputs: []ValuePort{rawPort("world_near", Vector), rawPort("world_far", Vector)}},
	{Name: "screen_size", Parts: footprint(2, 0xDC, 0xDD, 0xDE, 0xDF),
		Outputs: []ValuePort{rawPort("width", Number), rawPort("height", Number)}},
	{Name: "accelerometer", Parts: footprint(2, 0xE0, 0xE1, 0xE2, 0xE3),
		Outputs: []ValuePort{rawPort("direction", Vector)}},
	{Name: "raycast", Parts: footprint(2, 0xE4, 0xE5, 0xE6, 0xE7, 0xE8, 0xE9),
		Inputs:  []ValuePort{rawPort("from", Vector), rawPort("to", Vector)},
		Outputs: []ValuePort{rawPort("hit", Truth), rawPort("pos", Vector), rawPort("obj", Object)}},

	{Name: "if", Parts: footprint(2, 0xEA, 0xEB, 0xEC, 0xED), Callable: true,
		Inputs: []ValuePort{rawPort("condition", Truth)}, Callbacks: []string{"true", "false"}},
	{Name: "play_sensor", Parts: footprint(2, 0xEE, 0xEF, 0xF0, 0xF1), Callable: true,
		Callbacks: []string{"on_play"}},
	{Name: "touch_sensor", Parts: footprint(2, 0xF2, 0xF3, 0xF4, 0xF5, 0xF6, 0xF7), Callable: true,
		Outputs:   []ValuePort{rawPort("screen_x", Number), rawPort("screen_y", Number)},
		Options:   []OptField{opt("state", Int8), opt("index", Int8)},
		Callbacks: []string{"touched"}},
	{Name: "swipe_sensor", Parts: footprint(2, 0xF8, 0xF9, 0xFA, 0xFB), Callable: true,
		Outputs: []ValuePort{rawPort("direction", Vector)}, Callbacks: []string{"swiped"}},

	{Name: "win", Parts: footprint(2, 0xFC, 0xFD, 0xFE, 0xFF), Callable: true,
		Options: []OptField{opt("delay", Int8)}},
	{Name: "lose", Parts: footprint(2, 0x100, 0x101, 0x102, 0x103), Callable: true,
		Options: []OptField{opt("delay", Int8)}},
	{Name: "set_score", Parts: footprint(2, 0x104, 0x105, 0x106, 0x107), Callable: true,
		Inputs: []ValuePort{rawPort("score", Number), rawPort("coins", Number)}, Options: []OptField{opt("order", Int8)}},
	{Name: "play_sound", Parts: footprint(2, 0x108, 0x109, 0x10A, 0x10B), Callable: true,
		Inputs:  []ValuePort{rawPort("volume", Number), rawPort("pitch", Number)},
		Outputs: []ValuePort{rawPort("channel", Number)},
		Options: []OptField{opt("loop", Int8), opt("sound", Int8)}},
	{Name: "set_camera", Parts: footprint(2, 0x10C, 0x10D, 0x10E, 0x10F, 0x110, 0x111), Callable: true,
		Inputs:  []ValuePort{rawPort("position", Vector), rawPort("rotation", Rotation), rawPort("range", Number)},
		Options: []OptField{opt("perspective", Int8)}},
	{Name: "set_light", Parts: footprint(2, 0x112, 0x113, 0x114, 0x115), Callable: true,
		Inputs: []ValuePort{rawPort("position", Vector), rawPort("rotation", Rotation)}},
	{Name: "get_position", Parts: footprint(2, 0x116, 0x117, 0x118, 0x119),
		Inputs:  []ValuePort{rawPort("object", Object)},
		Outputs: []ValuePort{rawPort("position", Vector), rawPort("rotation", Rotation)}},
	{Name: "set_position", Parts: footprint(2, 0x11A, 0x11B, 0x11C, 0x11D, 0x11E, 0x11F), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object), rawPort("position", Vector), rawPort("rotation", Rotation)}},
	{Name: "get_velocity", Parts: footprint(2, 0x120, 0x121, 0x122, 0x123),
		Inputs:  []ValuePort{rawPort("object", Object)},
		Outputs: []ValuePort{rawPort("velocity", Vector), rawPort("spin", Vector)}},
	{Name: "set_velocity", Parts: footprint(2, 0x124, 0x125, 0x126, 0x127, 0x128, 0x129), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object), rawPort("velocity", Vector), rawPort("spin", Vector)}},
	{Name: "add_force", Parts: footprint(2, 0x12A, 0x12B, 0x12C, 0x12D, 0x12E, 0x12F, 0x130, 0x131), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object), rawPort("force", Vector), rawPort("apply_at", Vector), rawPort("torque", Vector)}},
	{Name: "set_visible", Parts: footprint(2, 0x132, 0x133, 0x134, 0x135), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object), rawPort("visible", Truth)}},
	{Name: "set_locked", Parts: footprint(2, 0x136, 0x137, 0x138, 0x139, 0x13A, 0x13B), Callable: true,
		// "rotation" is the source's own name for this input; its kind is
		// Vector, not Rotation.
		Inputs: []ValuePort{rawPort("object", Object), rawPort("position", Vector), rawPort("rotation", Vector)}},
	{Name: "create_object", Parts: footprint(2, 0x13C, 0x13D, 0x13E, 0x13F), Callable: true,
		Inputs: []ValuePort{rawPort("original", Object)}, Outputs: []ValuePort{rawPort("copy", Object)}},
	{Name: "destroy_object", Parts: footprint(2, 0x140, 0x141, 0x142, 0x143), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object)}},
	{Name: "set_gravity", Parts: footprint(2, 0x144, 0x145, 0x146, 0x147), Callable: true,
		Inputs: []ValuePort{rawPort("gravity", Vector)}},
	{Name: "set_mass", Parts: footprint(2, 0x148, 0x149, 0x14A, 0x14B), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object), rawPort("mass", Number)}},
	{Name: "set_friction", Parts: footprint(2, 0x14C, 0x14D, 0x14E, 0x14F), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object), rawPort("friction", Number)}},
	{Name: "set_bounciness", Parts: footprint(2, 0x150, 0x151, 0x152, 0x153), Callable: true,
		Inputs: []ValuePort{rawPort("object", Object), rawPort("bounciness", Number)}},
	{Name: "add_constraint", Parts: footprint(2, 0x154, 0x155, 0x156, 0x157, 0x158, 0x159), Callable: true,
		Inputs: []ValuePort{rawPort("base", Object), rawPort("part", Object), rawPort("pivot", Vector)}},
	{Name: "add_constraint", Parts: footprint(2, 0x15A, 0x15B, 0x15C, 0x15D, 0x15E, 0x15F), Callable: true,
		Inputs: []ValuePort{rawPort("constraint", Constraint), rawPort("lower", Vector), rawPort("upper", Vector)}},

	// The remaining entries are transcribed from the sibling, wider
	// prefabs.rs table (part IDs 0x160+), which carries the boolean
	// literal constructors and the flow primitives named but not
	// tabulated by scripts.rs: "true"/"false" (targets of the Boolean
	// literal lowering in spec.md §4.4), "collision" and "loop" (named
	// directly as example flow primitives in spec.md §4.3).
	{Name: "collision", Parts: footprint(2, 0x191, 0x192, 0x193, 0x194, 0x195, 0x196, 0x197, 0x198), Callable: true,
		Inputs:    []ValuePort{rawPort("object", Object)},
		Outputs:   []ValuePort{rawPort("object", Object), rawPort("impulse", Number), rawPort("normal", Vector)},
		Callbacks: []string{"collided"}},
	{Name: "true", Parts: footprint(2, 0x1C1, 0x1C2), Outputs: []ValuePort{rawPort("true", Truth)}},
	{Name: "false", Parts: footprint(2, 0x1C3, 0x1C4), Outputs: []ValuePort{rawPort("false", Truth)}},
	{Name: "increase_number", Parts: footprint(2, 0x22C, 0x22D), Callable: true,
		Inputs: []ValuePort{refPort("variable", Number)}},
	{Name: "decrease_number", Parts: footprint(2, 0x22E, 0x22F), Callable: true,
		Inputs: []ValuePort{refPort("variable", Number)}},
	{Name: "loop", Parts: footprint(2, 0x230, 0x231, 0x232, 0x233), Callable: true,
		Inputs:    []ValuePort{rawPort("start", Number), rawPort("stop", Number)},
		Outputs:   []ValuePort{rawPort("counter", Number)},
		Callbacks: []string{"do"}},
	{Name: "current_frame", Parts: footprint(2, 0x234, 0x235), Outputs: []ValuePort{rawPort("counter", Number)}},
	{Name: "dot_product", Parts: footprint(2, 0x23A, 0x23B, 0x23C, 0x23D),
		Inputs: []ValuePort{rawPort("vec1", Vector), rawPort("vec2", Vector)}, Outputs: []ValuePort{rawPort("dot_product", Number)}},
	{Name: "cross_product", Parts: footprint(2, 0x23E, 0x23F, 0x240, 0x241),
		Inputs: []ValuePort{rawPort("vec1", Vector), rawPort("vec2", Vector)}, Outputs: []ValuePort{rawPort("cross_product", Vector)}},
	{Name: "normalize", Parts: footprint(2, 0x242, 0x243),
		Inputs: []ValuePort{rawPort("vector", Vector)}, Outputs: []ValuePort{rawPort("normalized", Vector)}},

	// "or" and "power" are the lowering targets named in spec.md §4.2's
	// precedence table for `or` and `**`; "greater_than" completes the
	// ordering comparisons alongside the already-transcribed "less_than".
	// The source catalog has no entries for `!=`, `<=`, or `>=` under any
	// name (only equal_numbers/equal_vectors/equal_objects/equal_truths,
	// less_than, and greater_than exist) — see DESIGN.md.
	{Name: "or", Parts: footprint(2, 0x1A1, 0x1A2, 0x1A3, 0x1A4),
		Inputs: []ValuePort{rawPort("tru1", Truth), rawPort("tru2", Truth)}, Outputs: []ValuePort{rawPort("disjunction", Truth)}},
	{Name: "power", Parts: footprint(2, 0x1C9, 0x1CA, 0x1CB, 0x1CC),
		Inputs: []ValuePort{rawPort("base", Number), rawPort("exponent", Number)}, Outputs: []ValuePort{rawPort("power", Number)}},
	{Name: "greater_than", Parts: footprint(2, 0x1E1, 0x1E2, 0x1E3, 0x1E4),
		Inputs: []ValuePort{rawPort("num1", Number), rawPort("num2", Number)}, Outputs: []ValuePort{refPort("greater_than", Number)}},
}
