package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadEndToEnd(t *testing.T) *Fixture {
	t.Helper()
	f, err := LoadFixture(filepath.Join("testdata", "end_to_end.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	return f
}

func TestReplayEndToEndFixture(t *testing.T) {
	f := loadEndToEnd(t)
	results := Replay(f)

	if len(results) != len(f.Cases) {
		t.Fatalf("expected %d results, got %d", len(f.Cases), len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("case %s failed: %s", r.Name, r.Reason)
		}
	}

	s := Summarize(results)
	if s.Total != 5 || s.Passed != 5 || s.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestReplayErrorCasesHaveNoResult(t *testing.T) {
	for _, r := range Replay(loadEndToEnd(t)) {
		if r.Name == "zero_merit" && (r.Result != nil || r.Err == nil) {
			t.Fatalf("zero_merit: expected error and no result, got %+v", r)
		}
	}
}

func TestPartialScenarioKeepsDefaults(t *testing.T) {
	fc := FixtureCase{Name: "partial", Scenario: []byte(`{"merit": 300}`)}
	s, err := fc.ToScenario()
	if err != nil {
		t.Fatalf("ToScenario: %v", err)
	}
	if s.Merit != 300 || s.MassKg != 70 || s.SpaceM2 != 100 {
		t.Fatalf("unexpected scenario: %+v", s)
	}
}

func TestReplayDetectsMismatch(t *testing.T) {
	want := 999.0
	f := &Fixture{Cases: []FixtureCase{{Name: "wrong", Expect: FixtureExpect{Quality: &want}}}}

	results := Replay(f)
	if results[0].Passed {
		t.Fatal("expected mismatch")
	}
	if len(results[0].Mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %v", results[0].Mismatches)
	}
}

func TestReplayRejectsWrongRealScale(t *testing.T) {
	f := loadEndToEnd(t)
	fc := f.Cases[0]
	wrong := 1e-11
	fc.Expect.Real = &wrong

	r := replayCase(&fc)
	if r.Passed {
		t.Fatalf("REAL 1e-11 must not match 7.2086e-9: %s", r.Reason)
	}
	if len(r.Mismatches) != 1 || !strings.HasPrefix(r.Mismatches[0], "real_score") {
		t.Fatalf("expected a single real_score mismatch, got %v", r.Mismatches)
	}
}

func TestReplayRejectsNonZeroCipher(t *testing.T) {
	want := 1e-3
	f := &Fixture{Cases: []FixtureCase{{Name: "cipher", Expect: FixtureExpect{CipherMod216: &want}}}}
	if Replay(f)[0].Passed {
		t.Fatal("cipher residue near zero must not match 1e-3")
	}
}

func TestToleranceAllows(t *testing.T) {
	tol := Tolerance{}.withDefaults()
	cases := []struct {
		got, want float64
		ok        bool
	}{
		{63.48297, 63.48, true},
		{7.20864e-9, 7.2086e-9, true},
		{7.20864e-9, 1e-11, false},
		{9.19e-16, 0, true},
		{5052.098, 5060, false},
	}
	for _, c := range cases {
		if got := tol.Allows(c.got, c.want); got != c.ok {
			t.Errorf("Allows(%g, %g) = %v, want %v", c.got, c.want, got, c.ok)
		}
	}
}

func TestReplayWrongErrorKind(t *testing.T) {
	f := &Fixture{Cases: []FixtureCase{
		{Name: "expects_range", Scenario: []byte(`{"merit": 0}`), ExpectError: "invalid_range"},
		{Name: "expects_failure", ExpectError: "division_by_zero"},
	}}
	for _, r := range Replay(f) {
		if r.Passed {
			t.Errorf("case %s should fail: %s", r.Name, r.Reason)
		}
	}
}

func TestLoadFixtureErrors(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected read error")
	}
	bad := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0644)
	if _, err := LoadFixture(bad); err == nil {
		t.Fatal("expected parse error")
	}
}
