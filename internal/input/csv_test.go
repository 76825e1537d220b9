package input

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		name   string
		sample string
		want   rune
	}{
		{name: "semicolon", sample: "a;b;c\n1;2;3\n", want: ';'},
		{name: "comma", sample: "a,b,c\n1,2,3\n", want: ','},
		{name: "tab", sample: "a\tb\tc\n", want: '\t'},
		{name: "pipe", sample: "a|b|c\n", want: '|'},
		{name: "no delimiter falls back to comma", sample: "abc\n", want: ','},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SniffDelimiter([]byte(tc.sample)); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	content := "Item;Total\nOak Log;10\n\nTorch;3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := ReadCSV(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Headers) != 2 || table.Headers[0] != "Item" {
		t.Fatalf("headers=%v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows=%d", len(table.Rows))
	}
	if table.Rows[1]["Item"] != "Torch" || table.Rows[1]["Total"] != "3" {
		t.Fatalf("row=%v", table.Rows[1])
	}
}

func TestDedupeHeaders(t *testing.T) {
	got := dedupeHeaders([]string{"Total", "Total", "Total"})
	want := []string{"Total", "Total_2", "Total_3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
