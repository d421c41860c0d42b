package db

import (
	"net/url"
	"strings"
	"testing"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{
			name: "plain_path",
			in:   "data/pagecraft.db",
			want: map[string]string{"_fk": "1", "_journal_mode": "WAL", "_busy_timeout": "5000"},
		},
		{
			name: "caller_options_win",
			in:   "data/pagecraft.db?_fk=0&cache=shared",
			want: map[string]string{"_fk": "0", "cache": "shared", "_journal_mode": "WAL"},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := sqliteDSN(test.in)
			path, query, ok := strings.Cut(got, "?")
			if !ok || path != "data/pagecraft.db" {
				t.Fatalf("sqliteDSN(%q) = %q", test.in, got)
			}
			params, err := url.ParseQuery(query)
			if err != nil {
				t.Fatalf("parse %q: %v", query, err)
			}
			for key, want := range test.want {
				if params.Get(key) != want {
					t.Fatalf("%s = %q, want %q (dsn %q)", key, params.Get(key), want, got)
				}
			}
		})
	}
}
