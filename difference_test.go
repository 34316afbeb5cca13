package jsondiff

import (
	"encoding/json"
	"testing"
)

func TestDifferenceStringInclusive(t *testing.T) {
	diffs := Diff(mustParse(`{"a": 1}`), mustParse(`{"a": 2}`), NewConfig(Inclusive))
	if len(diffs) != 1 {
		t.Fatalf("want 1 diff, got %d", len(diffs))
	}

	want := `json atoms at path ".a" are not equal:
    expected:
        2
    actual:
        1`
	if got := diffs[0].String(); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestDifferenceStringInclusiveMissing(t *testing.T) {
	diffs := Diff(mustParse(`{"a": 1}`), mustParse(`{"b": 1}`), NewConfig(Inclusive))
	if len(diffs) != 1 {
		t.Fatalf("want 1 diff, got %d", len(diffs))
	}

	want := `json atom at path ".b" is missing from actual`
	if got := diffs[0].String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestDifferenceStringStrict(t *testing.T) {
	diffs := Diff(mustParse(`{"a": {"b": 1}}`), mustParse(`{"a": [1, 2]}`), NewConfig(Strict))
	if len(diffs) != 1 {
		t.Fatalf("want 1 diff, got %d", len(diffs))
	}

	want := `json atoms at path ".a" are not equal:
    lhs:
        {
          "b": 1
        }
    rhs:
        [
          1,
          2
        ]`
	if got := diffs[0].String(); got != want {
		t.Errorf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestDifferenceStringStrictMissing(t *testing.T) {
	cfg := NewConfig(Strict)

	diffs := Diff(mustParse(`{}`), mustParse(`{"a": 1}`), cfg)
	if len(diffs) != 1 {
		t.Fatalf("want 1 diff, got %d", len(diffs))
	}
	if got, want := diffs[0].String(), `json atom at path ".a" is missing from lhs`; got != want {
		t.Errorf("want %q, got %q", want, got)
	}

	diffs = Diff(mustParse(`{"a": 1}`), mustParse(`{}`), cfg)
	if len(diffs) != 1 {
		t.Fatalf("want 1 diff, got %d", len(diffs))
	}
	if got, want := diffs[0].String(), `json atom at path ".a" is missing from rhs`; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestDifferenceNullIsPresent(t *testing.T) {
	diffs := Diff(mustParse(`{"a": null}`), mustParse(`{"a": 1}`), NewConfig(Inclusive))
	if len(diffs) != 1 {
		t.Fatalf("want 1 diff, got %d", len(diffs))
	}

	lhs, ok := diffs[0].Lhs()
	if !ok {
		t.Error("a null value should count as present")
	}
	if lhs != nil {
		t.Errorf("want nil value, got %v", lhs)
	}
	if k := diffs[0].Kind(); k != KindNotEqual {
		t.Errorf("want %s, got %s", KindNotEqual, k)
	}
}

func TestDifferenceMarshalJSON(t *testing.T) {
	diffs := Diff(mustParse(`{"a": 1}`), mustParse(`{"a": 2}`), NewConfig(Inclusive))
	data, err := json.Marshal(diffs[0])
	if err != nil {
		t.Fatal(err)
	}
	want := `{"kind":"not-equal","lhs":1,"path":".a","rhs":2}`
	if string(data) != want {
		t.Errorf("want %s, got %s", want, data)
	}

	diffs = Diff(mustParse(`{}`), mustParse(`{"a": 1}`), NewConfig(Strict))
	data, err = json.Marshal(diffs[0])
	if err != nil {
		t.Fatal(err)
	}
	// the absent side is omitted, not encoded as null
	want = `{"kind":"missing-lhs","path":".a","rhs":1}`
	if string(data) != want {
		t.Errorf("want %s, got %s", want, data)
	}
}
