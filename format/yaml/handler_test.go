package yaml

import (
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/figcon/format"
)

func TestHandler_Parse(t *testing.T) {
	h := New()

	tests := []struct {
		name     string
		input    string
		wantKeys []string
		wantErr  bool
	}{
		{
			name:     "flat document",
			input:    "title: figcon\nport: 8080\n",
			wantKeys: []string{"title", "port"},
		},
		{
			name:     "key order preserved",
			input:    "zebra: 1\napple: 2\nmango: 3\n",
			wantKeys: []string{"zebra", "apple", "mango"},
		},
		{
			name:     "nested mapping",
			input:    "server:\n  port: 8080\n",
			wantKeys: []string{"server"},
		},
		{
			name:     "empty document",
			input:    "",
			wantKeys: nil,
		},
		{
			name:    "sequence top level",
			input:   "- a\n- b\n",
			wantErr: true,
		},
		{
			name:    "scalar top level",
			input:   "just a string\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Parse([]byte(tt.input), format.ParseOptions{})
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			gotKeys := got.Keys()
			if len(gotKeys) != len(tt.wantKeys) {
				t.Errorf("Parse() got keys %v, want %v", gotKeys, tt.wantKeys)
				return
			}
			for i, k := range gotKeys {
				if k != tt.wantKeys[i] {
					t.Errorf("Parse() key[%d] = %q, want %q", i, k, tt.wantKeys[i])
				}
			}
		})
	}
}

func TestHandler_ParseNestedMapping(t *testing.T) {
	h := New()

	doc, err := h.Parse([]byte("server:\n  host: localhost\n  port: 8080\n"), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	server, _ := doc.Get("server")
	serverMap, ok := server.(*orderedmap.OrderedMap)
	if !ok {
		t.Fatalf("nested mapping decoded as %T, want *orderedmap.OrderedMap", server)
	}
	host, _ := serverMap.Get("host")
	if host != "localhost" {
		t.Errorf("host = %v, want localhost", host)
	}
}

func TestHandler_SerializePreservesOrder(t *testing.T) {
	h := New()

	doc := orderedmap.New()
	doc.Set("zebra", "last")
	doc.Set("apple", "first")
	doc.Set("mango", "middle")

	data, err := h.Serialize(doc, format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	want := "zebra: last\napple: first\nmango: middle\n"
	if string(data) != want {
		t.Errorf("Serialize() = %q, want %q", string(data), want)
	}
}

func TestHandler_RoundTrip(t *testing.T) {
	h := New()

	input := "title: figcon\nserver:\n  port: 8080\n"

	doc, err := h.Parse([]byte(input), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data, err := h.Serialize(doc, format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	reparsed, err := h.Parse(data, format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() of serialized output error = %v", err)
	}
	title, _ := reparsed.Get("title")
	if title != "figcon" {
		t.Errorf("round-trip title = %v, want figcon", title)
	}
}
