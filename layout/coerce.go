package layout

import (
	"fmt"

	"github.com/mna/voxc/game"
	"github.com/mna/voxc/lang/ast"
	"github.com/mna/voxc/prefab"
)

// coerce converts an expression into the OptData shape a prefab's option
// field declares, per the coercion table in spec.md §4.4. A Skip
// expression is handled by the caller (it emits no opt at all).
func coerce(kind prefab.OptKind, e ast.Expr) (game.OptData, error) {
	switch kind {
	case prefab.Int8:
		switch v := e.(type) {
		case *ast.IntegerExpr:
			if v.Value < 0 || v.Value > 255 {
				return nil, &OutOfRangeOpt{Kind: kind, Value: fmt.Sprint(v.Value)}
			}
			return game.Int8Data(uint8(v.Value)), nil
		case *ast.BooleanExpr:
			if v.Value {
				return game.Int8Data(1), nil
			}
			return game.Int8Data(0), nil
		default:
			return nil, &Unimplemented{Reason: fmt.Sprintf("Int8 option from %T", e)}
		}

	case prefab.Int16:
		v, ok := e.(*ast.IntegerExpr)
		if !ok {
			return nil, &Unimplemented{Reason: fmt.Sprintf("Int16 option from %T", e)}
		}
		if v.Value < 0 || v.Value > 0xFFFF {
			return nil, &OutOfRangeOpt{Kind: kind, Value: fmt.Sprint(v.Value)}
		}
		return game.Int16Data(uint16(v.Value)), nil

	case prefab.Float32:
		switch v := e.(type) {
		case *ast.IntegerExpr:
			return game.Float32Data(float32(v.Value)), nil
		case *ast.FloatExpr:
			return game.Float32Data(float32(v.Value)), nil
		default:
			return nil, &Unimplemented{Reason: fmt.Sprintf("Float32 option from %T", e)}
		}

	case prefab.Vec:
		return nil, &Unimplemented{Reason: "Vec option coercion"}

	case prefab.Name, prefab.Execute, prefab.Input, prefab.This, prefab.Pointer, prefab.ObjectOpt, prefab.Output:
		sv, ok := e.(*ast.StringExpr)
		if !ok {
			return nil, &Unimplemented{Reason: fmt.Sprintf("string option from %T", e)}
		}
		return stringOptData(kind, sv.Value), nil

	default:
		return nil, &Unimplemented{Reason: fmt.Sprintf("unknown option kind %v", kind)}
	}
}

func stringOptData(kind prefab.OptKind, s string) game.OptData {
	switch kind {
	case prefab.Name:
		return game.NameData(s)
	case prefab.Execute:
		return game.ExecuteData(s)
	case prefab.Input:
		return game.InputData(s)
	case prefab.This:
		return game.ThisData(s)
	case prefab.Pointer:
		return game.PointerData(s)
	case prefab.ObjectOpt:
		return game.ObjectData(s)
	case prefab.Output:
		return game.OutputData(s)
	default:
		return game.NameData(s)
	}
}
