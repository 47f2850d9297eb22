package richtext

import (
	"reflect"
	"testing"
)

func TestProcessInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "plain text is a single span",
			input: "Fresh sourdough every Friday.",
			want:  []Span{Text("Fresh sourdough every Friday.")},
		},
		{
			name:  "bold run inside text",
			input: "Try our **honey cake** today",
			want:  []Span{Text("Try our "), Bold("honey cake"), Text(" today")},
		},
		{
			name:  "link only",
			input: "[Order now](/order)",
			want:  []Span{Link("Order now", "/order")},
		},
		{
			name:  "link between text",
			input: "See [menu](https://example.com/menu) for prices",
			want: []Span{
				Text("See "),
				Link("menu", "https://example.com/menu"),
				Text(" for prices"),
			},
		},
		{
			name:  "bold wrapped line overrides per token detection",
			input: "**hello [world](http://x) end**",
			want:  []Span{Bold("hello "), Link("world", "http://x"), Bold(" end")},
		},
		{
			name:  "bold wrapped line without links",
			input: "**Order before noon**",
			want:  []Span{Bold("Order before noon")},
		},
		{
			name:  "bold wrapped line keeps inner markers literal",
			input: "**Cakes** and **pies**",
			want:  []Span{Bold("Cakes** and **pies")},
		},
		{
			name:  "bold wrapped tip line",
			input: "**Tip:** use **honey**",
			want:  []Span{Bold("Tip:** use **honey")},
		},
		{
			name:  "unmatched bold markers stay literal",
			input: "2 ** 3 is not bold",
			want:  []Span{Text("2 ** 3 is not bold")},
		},
		{
			name:  "bold around asterisk is not matched",
			input: "**a*b** text",
			want:  []Span{Text("**a*b** text")},
		},
		{
			name:  "triple asterisk bolds inner run",
			input: "x ***a** y",
			want:  []Span{Text("x *"), Bold("a"), Text(" y")},
		},
		{
			name:  "unclosed link stays literal",
			input: "see [menu](/menu",
			want:  []Span{Text("see [menu](/menu")},
		},
		{
			name:  "empty label is not a link",
			input: "[](/x) tail",
			want:  []Span{Text("[](/x) tail")},
		},
		{
			name:  "label may contain an opening bracket",
			input: "[a [b](c)",
			want:  []Span{Link("a [b", "c")},
		},
		{
			name:  "link label is not bold processed",
			input: "[**bold** label](/x)",
			want:  []Span{Link("**bold** label", "/x")},
		},
		{
			name:  "adjacent links",
			input: "[a](/a)[b](/b)",
			want:  []Span{Link("a", "/a"), Link("b", "/b")},
		},
		{
			name:  "only markers yields nothing",
			input: "**",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProcessInline(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ProcessInline(%q)\n got: %#v\nwant: %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestProcessInlineEmpty(t *testing.T) {
	if spans := ProcessInline(""); spans != nil {
		t.Fatalf("expected nil spans, got %#v", spans)
	}
}

func TestProcessInlineTextConcatenation(t *testing.T) {
	inputs := map[string]string{
		"Our [cakes](/cakes) are **baked** daily": "Our cakes are baked daily",
		"**Free delivery** over $50":              "Free delivery over $50",
		"No markup at all":                        "No markup at all",
		"**wrapped [link](/l) line**":             "wrapped link line",
	}
	for input, want := range inputs {
		if got := SpansText(ProcessInline(input)); got != want {
			t.Fatalf("SpansText(ProcessInline(%q)) = %q, want %q", input, got, want)
		}
	}
}
