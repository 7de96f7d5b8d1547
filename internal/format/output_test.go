package format

import (
	"bytes"
	"testing"
)

type monthRow struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{}, "xml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": []int{2024, 2023}}, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got, want := buf.String(), "{\"data\":[2024,2023]}\n"; got != want {
		t.Fatalf("json:\n got: %q\nwant: %q", got, want)
	}
}

func TestWriteEDN(t *testing.T) {
	t.Parallel()

	v := map[string]any{
		"data": map[string]any{
			"updatedAt": "2024-06-10",
			"months":    []monthRow{{1, "January"}},
			"value":     nil,
			"disabled":  true,
			"ratio":     1.5,
		},
	}

	var buf bytes.Buffer
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := `{:data {:disabled true :months [{:label "January" :value 1}] :ratio 1.5 :updated-at "2024-06-10" :value nil}}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("edn:\n got: %s\nwant: %s", got, want)
	}

	buf.Reset()
	if err := WriteEDN(&buf, []int{1, 2}, true); err != nil {
		t.Fatalf("WriteEDN pretty: %v", err)
	}
	if got, want := buf.String(), "[\n  1\n  2\n]\n"; got != want {
		t.Fatalf("edn pretty:\n got: %q\nwant: %q", got, want)
	}

	buf.Reset()
	if err := WriteEDN(&buf, []int{}, true); err != nil {
		t.Fatalf("WriteEDN empty: %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("edn empty: got %q", got)
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "int list", in: map[string]any{"data": []int{3, 13, 23}}, want: "3\n13\n23\n"},
		{name: "object list", in: map[string]any{"data": []monthRow{{1, "Jan"}, {2, "Feb"}}}, want: "Jan\t1\nFeb\t2\n"},
		{name: "object", in: map[string]any{"data": map[string]any{"value": "2024-06-10", "valid": true}}, want: "valid: true\nvalue: 2024-06-10\n"},
		{name: "null scalar", in: map[string]any{"data": nil}, want: "\n"},
		{name: "empty list", in: map[string]any{"data": []int{}}, want: ""},
		{name: "meta dropped", in: map[string]any{"data": []int{1}, "meta": map[string]any{"disabled": true}}, want: "1\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, tt.in, "text", false); err != nil {
			t.Fatalf("%s: Write: %v", tt.name, err)
		}
		if got := buf.String(); got != tt.want {
			t.Fatalf("%s:\n got: %q\nwant: %q", tt.name, got, tt.want)
		}
	}
}
