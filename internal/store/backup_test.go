package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValuesJSONL_ExportImport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := Store{Dir: t.TempDir()}
	for k, v := range map[string]string{"dob": "1990-04-12", "start": "2020-02-29"} {
		if _, err := src.Put(ctx, k, v); err != nil {
			t.Fatalf("Put(%s): %v", k, err)
		}
	}
	vs, err := src.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	path := filepath.Join(t.TempDir(), "values.jsonl")
	if err := WriteValuesJSONL(path, vs); err != nil {
		t.Fatalf("WriteValuesJSONL: %v", err)
	}
	read, err := ReadValuesJSONL(path)
	if err != nil {
		t.Fatalf("ReadValuesJSONL: %v", err)
	}
	if len(read) != 2 || read[0].Key != "dob" || read[1].Value != "2020-02-29" {
		t.Fatalf("unexpected values: %#v", read)
	}

	dst := Store{Dir: t.TempDir()}
	if _, err := dst.Put(ctx, "dob", "2000-01-01"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	n, err := dst.Import(ctx, read)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported, got %d", n)
	}
	got, ok, err := dst.Get(ctx, "dob")
	if err != nil || !ok || got.Value != "1990-04-12" {
		t.Fatalf("imported value not stored: %#v ok=%v err=%v", got, ok, err)
	}
	hist, err := dst.History(ctx, "dob", 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected import to be recorded in history, got %#v", hist)
	}
}

func TestReadValuesJSONL_RejectsBadRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad json", body: "{\"key\":\"a\",\"value\":\"2020-01-01\"}\n{nope\n", want: "line 2"},
		{name: "bad value", body: "\n{\"key\":\"a\",\"value\":\"01/02/2020\"}\n", want: "line 2"},
		{name: "empty key", body: "{\"key\":\" \",\"value\":\"2020-01-01\"}\n", want: "line 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "values.jsonl")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := ReadValuesJSONL(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
