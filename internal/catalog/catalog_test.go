package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "providers.json")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEachProvider_ScansLineByLine(t *testing.T) {
	path := writeRegistry(t, `{"provider_name": "east_nova", "enabled": true}
{"provider_name": "east_cinder"}

{"provider_name": "west_nova"}
`)

	var names []string
	err := EachProvider(path,
		func(p Provider) { names = append(names, p.Name) },
		func(line int, err error) { t.Fatalf("unexpected bad line %d: %v", line, err) })
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"east_nova", "east_cinder", "west_nova"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order not preserved: got %v, want %v", names, want)
		}
	}
}

func TestEachProvider_ReportsBadLinesAndContinues(t *testing.T) {
	path := writeRegistry(t, `{"provider_name": "east_nova"}
not json at all
{"enabled": true}
{"provider_name": "west_cinder"}
`)

	var names []string
	var badLines []int
	err := EachProvider(path,
		func(p Provider) { names = append(names, p.Name) },
		func(line int, err error) { badLines = append(badLines, line) })
	if err != nil {
		t.Fatal(err)
	}

	if len(names) != 2 {
		t.Fatalf("expected 2 good providers, got %v", names)
	}
	if len(badLines) != 2 || badLines[0] != 2 || badLines[1] != 3 {
		t.Fatalf("expected bad lines [2 3], got %v", badLines)
	}
}

func TestEachProvider_MissingFileIsFatal(t *testing.T) {
	err := EachProvider(filepath.Join(t.TempDir(), "absent.json"),
		func(Provider) {}, func(int, error) {})
	if !errors.Is(err, ErrRegistryUnreadable) {
		t.Fatalf("expected ErrRegistryUnreadable, got %v", err)
	}
}

func TestEachProvider_Restartable(t *testing.T) {
	path := writeRegistry(t, `{"provider_name": "east_nova"}`)

	for pass := 0; pass < 2; pass++ {
		count := 0
		if err := EachProvider(path, func(Provider) { count++ }, func(int, error) {}); err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Fatalf("pass %d: expected 1 provider, got %d", pass, count)
		}
	}
}

func TestClassify_IsTotal(t *testing.T) {
	cases := []struct {
		name       string
		process    Process
		exempt     bool
		processDir string
	}{
		{"dallas_nova", ProcessNova, false, "nova_compute"},
		{"dallas_cinder", ProcessCinder, false, "cinder_volume"},
		{"dallas_VMWARE_cinder", ProcessUnrecognized, true, ""},
		{"VMWARE_dallas_cinder", ProcessUnrecognized, true, ""},
		{"dallas_swift", ProcessUnrecognized, false, ""},
		{"", ProcessUnrecognized, false, ""},
		// VMWARE in a nova name is not exempt; only cinder lacks VMware support.
		{"dallas_VMWARE_nova", ProcessNova, false, "nova_compute"},
	}
	for _, tc := range cases {
		process, exempt := Classify(tc.name)
		if process != tc.process || exempt != tc.exempt {
			t.Fatalf("Classify(%q) = (%v, %v), want (%v, %v)", tc.name, process, exempt, tc.process, tc.exempt)
		}
		if process.Dir() != tc.processDir {
			t.Fatalf("Classify(%q).Dir() = %q, want %q", tc.name, process.Dir(), tc.processDir)
		}
	}
}
