package model

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/solidkit/simplex/internal/types"
)

// TestFixtures runs every testdata/fixtures/*.simplex program through
// Bind, evaluates its `result` function (if any) or executes its
// products, and snapshots the outcome. A fixture whose name ends in
// "_fail" is expected to fail Bind; its diagnostic kinds are snapshot
// instead.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/fixtures/*.simplex")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		t.Skip("no fixtures found")
	}

	for _, file := range files {
		file := file
		name := strings.TrimSuffix(filepath.Base(file), ".simplex")
		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("read %s: %v", file, err)
			}

			m, list := Bind(string(content))
			if !list.Empty() {
				var diags []string
				for _, e := range list.Errs {
					diags = append(diags, e.Kind.String()+": "+e.Message)
				}
				snaps.MatchSnapshot(t, strings.Join(diags, "\n"))
				if !strings.HasSuffix(name, "_fail") {
					t.Fatalf("unexpected diagnostics: %v", diags)
				}
				return
			}
			if strings.HasSuffix(name, "_fail") {
				t.Fatal("expected Bind to fail, it succeeded")
			}

			var out strings.Builder
			if v, ok := m.RootEnv.LookupValue("result"); ok {
				closure, ok := v.(*types.ClosureValue)
				if !ok {
					t.Fatalf("result is not a function, got %T", v)
				}
				res, err := closure.Call(nil)
				if err != nil {
					fmt.Fprintf(&out, "error: %v\n", err)
				} else {
					fmt.Fprintf(&out, "%s\n", res.String())
				}
			}
			if len(m.Program.Products) > 0 {
				artifacts, list := m.Execute()
				if !list.Empty() {
					for _, e := range list.Errs {
						fmt.Fprintf(&out, "error: %s\n", e.Message)
					}
				} else {
					for _, a := range artifacts {
						fmt.Fprintf(&out, "product %s: solid=%v lines=%v\n", a.Product, a.Solid != nil, a.Lines)
					}
				}
			}
			snaps.MatchSnapshot(t, out.String())
		})
	}
}
