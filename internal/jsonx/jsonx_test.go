package jsonx

import "testing"

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, c := range cases {
		if got := StripFences(c.in); got != c.want {
			t.Errorf("StripFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFirstObject(t *testing.T) {
	got, ok := FirstObject("Sure! Here is the graph:\n{\"nodes\":[{\"id\":\"a\"}]}\nHope that helps.")
	if !ok || got != "{\"nodes\":[{\"id\":\"a\"}]}" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestFirstObject_BracesInStrings(t *testing.T) {
	in := `{"label":"weird } value","n":{"x":1}}`
	got, ok := FirstObject("prefix " + in + " suffix")
	if !ok || got != in {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestFirstObject_Unbalanced(t *testing.T) {
	if _, ok := FirstObject(`{"a": [1,2`); ok {
		t.Fatal("want no object for unbalanced input")
	}
	if _, ok := FirstObject("no json here"); ok {
		t.Fatal("want no object for plain prose")
	}
}
