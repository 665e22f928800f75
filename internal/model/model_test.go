package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBindRejectsUndefinedName(t *testing.T) {
	_, list := Bind(`fun f():Int { y }`)
	if list.Empty() {
		t.Fatal("expected an Undefined diagnostic")
	}
}

func TestProductEmitsASolidAndWritesOneFile(t *testing.T) {
	m, list := Bind(`product "box" { cuboid(1.0,1.0,1.0)->move(0.0,0.0,0.0) }`)
	if !list.Empty() {
		t.Fatalf("Bind: %v", list.Errs)
	}
	artifacts, list := m.Execute()
	if !list.Empty() {
		t.Fatalf("Execute: %v", list.Errs)
	}
	if len(artifacts) != 1 || artifacts[0].Solid == nil {
		t.Fatalf("expected one artifact carrying a solid, got %+v", artifacts)
	}

	dir := t.TempDir()
	if err := WriteArtifacts(dir, "out", artifacts); err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out-box.stl" {
		t.Fatalf("expected exactly out-box.stl, got %v", entries)
	}
	content, err := os.ReadFile(filepath.Join(dir, "out-box.stl"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("expected non-empty STL content")
	}
}

func TestEmptyProductWritesNoFiles(t *testing.T) {
	m, list := Bind(`product "empty" { }`)
	if !list.Empty() {
		t.Fatalf("Bind: %v", list.Errs)
	}
	artifacts, list := m.Execute()
	if !list.Empty() {
		t.Fatalf("Execute: %v", list.Errs)
	}
	dir := t.TempDir()
	if err := WriteArtifacts(dir, "out", artifacts); err != nil {
		t.Fatalf("WriteArtifacts: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files for an empty product, got %v", entries)
	}
}

func TestProductGroupsTextualResults(t *testing.T) {
	m, list := Bind(`product "report" { 1 + 1; "hello" }`)
	if !list.Empty() {
		t.Fatalf("Bind: %v", list.Errs)
	}
	artifacts, list := m.Execute()
	if !list.Empty() {
		t.Fatalf("Execute: %v", list.Errs)
	}
	if len(artifacts) != 1 {
		t.Fatalf("expected one artifact, got %d", len(artifacts))
	}
	art := artifacts[0]
	if art.Solid != nil {
		t.Fatal("expected no solid result")
	}
	want := []string{"2", "hello"}
	if len(art.Lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, art.Lines)
	}
	for i, w := range want {
		if art.Lines[i] != w {
			t.Fatalf("line %d: expected %q, got %q", i, w, art.Lines[i])
		}
	}
}

func TestExecuteFiltersByRequestedProductNames(t *testing.T) {
	m, list := Bind(`product "a" { 1 } product "b" { 2 }`)
	if !list.Empty() {
		t.Fatalf("Bind: %v", list.Errs)
	}
	artifacts, list := m.Execute("b")
	if !list.Empty() {
		t.Fatalf("Execute: %v", list.Errs)
	}
	if len(artifacts) != 1 || artifacts[0].Product != "b" {
		t.Fatalf("expected only product b, got %+v", artifacts)
	}
}
