package builtins

import (
	"strings"
	"testing"

	"github.com/solidkit/simplex/internal/env"
	"github.com/solidkit/simplex/internal/evaluator"
	"github.com/solidkit/simplex/internal/parser"
	"github.com/solidkit/simplex/internal/semantic"
	"github.com/solidkit/simplex/internal/types"
)

// bind runs the full install/validate/bind pipeline over a source
// program, preloaded with the standard library, and returns its root
// environment.
func bind(t *testing.T, src string) *env.Environment {
	t.Helper()
	p := parser.New(src)
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, e := range p.Errors() {
			t.Error(e)
		}
		t.FailNow()
	}
	rootEnv := env.NewRoot(types.NewRegistry())
	if l := Install(rootEnv); !l.Empty() {
		t.Fatalf("Install: %v", l.Errs)
	}
	if l := semantic.InstallDataDefs(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallDataDefs: %v", l.Errs)
	}
	if l := evaluator.InstallMethods(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallMethods: %v", l.Errs)
	}
	if l := semantic.InstallStaticDefs(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallStaticDefs: %v", l.Errs)
	}
	if l := semantic.Validate(prog, rootEnv); !l.Empty() {
		t.Fatalf("Validate: %v", l.Errs)
	}
	if l := evaluator.InstallValues(prog.Definitions, rootEnv); !l.Empty() {
		t.Fatalf("InstallValues: %v", l.Errs)
	}
	return rootEnv
}

func callFun(t *testing.T, rootEnv *env.Environment, name string, args ...types.Value) types.Value {
	t.Helper()
	v, ok := rootEnv.LookupValue(name)
	if !ok {
		t.Fatalf("no bound value for %s", name)
	}
	closure, ok := v.(*types.ClosureValue)
	if !ok {
		t.Fatalf("%s is not a function, got %T", name, v)
	}
	result, err := closure.Call(args)
	if err != nil {
		t.Fatalf("calling %s: %v", name, err)
	}
	return result
}

func TestCuboidMoveProducesASolid(t *testing.T) {
	rootEnv := bind(t, `fun box():Solid { cuboid(2.0, 3.0, 4.0)->move(1.0, 0.0, 0.0) }`)
	result := callFun(t, rootEnv, "box")
	sv, ok := result.(*types.SolidValue)
	if !ok {
		t.Fatalf("expected a Solid, got %T", result)
	}
	if len(sv.Solid.Triangles) == 0 {
		t.Fatal("expected a non-empty mesh")
	}
}

func TestSolidUnionCombinesFacets(t *testing.T) {
	rootEnv := bind(t, `fun combined():Solid { union(cuboid(1.0, 1.0, 1.0), sphere(1.0)) }`)
	result := callFun(t, rootEnv, "combined")
	sv := result.(*types.SolidValue)
	cube := 12 // a cuboid tessellates to 12 triangles
	if len(sv.Solid.Triangles) <= cube {
		t.Fatalf("expected the union to carry both meshes' facets, got %d", len(sv.Solid.Triangles))
	}
}

func TestBoundsReturnsMinMaxPoints(t *testing.T) {
	rootEnv := bind(t, `fun b():[Point] { cuboid(2.0, 3.0, 4.0)->bounds() }`)
	result := callFun(t, rootEnv, "b")
	vec, ok := result.(*types.VectorValue)
	if !ok || len(vec.Elems) != 2 {
		t.Fatalf("expected a 2-element point vector, got %v", result)
	}
	min := vec.Elems[0].(types.PointValue)
	max := vec.Elems[1].(types.PointValue)
	if min.X != 0 || min.Y != 0 || min.Z != 0 {
		t.Fatalf("expected min at origin, got %v", min)
	}
	if max.X != 2 || max.Y != 3 || max.Z != 4 {
		t.Fatalf("expected max at (2,3,4), got %v", max)
	}
}

func TestToStlRendersAsciiStl(t *testing.T) {
	rootEnv := bind(t, `fun s():String { cuboid(1.0, 1.0, 1.0)->toStl() }`)
	result := callFun(t, rootEnv, "s")
	str := result.(types.StringValue).Val
	if !strings.HasPrefix(str, "solid solid\n") {
		t.Fatalf("expected the STL header, got: %q", str[:40])
	}
	if !strings.Contains(str, "endsolid solid") {
		t.Fatal("expected the STL trailer")
	}
}

func TestStringCompareIsCollationAware(t *testing.T) {
	rootEnv := bind(t, `fun c():Int { "apple" -> compare("Banana") }`)
	result := callFun(t, rootEnv, "c")
	if result.(types.IntValue).Val >= 0 {
		t.Fatalf("expected apple to collate before Banana, got %v", result)
	}
}

func TestStringEqNormalizesComposedAndDecomposedForms(t *testing.T) {
	composed := "café"   // é as a single NFC codepoint
	decomposed := "café" // e + combining acute accent (NFD)
	src := `fun eq():Boolean { "` + composed + `" == "` + decomposed + `" }`
	rootEnv := bind(t, src)
	result := callFun(t, rootEnv, "eq")
	if !result.(types.BoolValue).Val {
		t.Fatal("expected NFC/NFD forms of the same text to compare equal")
	}
}

func TestStringSameTextIgnoresCase(t *testing.T) {
	rootEnv := bind(t, `fun eq():Boolean { "Hello" -> sameText("HELLO") }`)
	result := callFun(t, rootEnv, "eq")
	if !result.(types.BoolValue).Val {
		t.Fatal("expected case-insensitive equality")
	}
}

func TestUUIDProducesDistinctIdentifiers(t *testing.T) {
	rootEnv := bind(t, `fun id():String { uuid() }`)
	a := callFun(t, rootEnv, "id").(types.StringValue).Val
	b := callFun(t, rootEnv, "id").(types.StringValue).Val
	if a == b {
		t.Fatal("expected two distinct UUIDs")
	}
	if len(a) != 36 {
		t.Fatalf("expected a canonical 36-character UUID, got %q", a)
	}
}
