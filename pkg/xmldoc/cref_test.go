package xmldoc

import (
	"strings"
	"testing"
)

func TestParseCrossReference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		raw        string
		wantKind   RefKind
		wantID     string
		wantType   string
		wantMember string
	}{
		{
			name:     "type reference",
			raw:      "T:System.String",
			wantKind: RefKindType,
			wantID:   "System.String",
			wantType: "System.String",
		},
		{
			name:       "field reference",
			raw:        "F:Contracts.Examples.Order.SampleJson",
			wantKind:   RefKindField,
			wantID:     "Contracts.Examples.Order.SampleJson",
			wantType:   "Contracts.Examples.Order",
			wantMember: "SampleJson",
		},
		{
			name:       "property reference",
			raw:        "P:Contracts.Examples.Order.Status",
			wantKind:   RefKindProperty,
			wantID:     "Contracts.Examples.Order.Status",
			wantType:   "Contracts.Examples.Order",
			wantMember: "Status",
		},
		{
			name:     "surrounding whitespace",
			raw:      "  T:System.Int32  ",
			wantKind: RefKindType,
			wantID:   "System.Int32",
			wantType: "System.Int32",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ref, err := ParseCrossReference(tc.raw)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.raw, err)
			}
			if ref.Kind != tc.wantKind {
				t.Fatalf("kind = %q, want %q", ref.Kind, tc.wantKind)
			}
			if ref.ID != tc.wantID {
				t.Fatalf("id = %q, want %q", ref.ID, tc.wantID)
			}
			if got := ref.TypeName(); got != tc.wantType {
				t.Fatalf("type name = %q, want %q", got, tc.wantType)
			}
			if got := ref.MemberName(); got != tc.wantMember {
				t.Fatalf("member name = %q, want %q", got, tc.wantMember)
			}
		})
	}
}

func TestParseCrossReferenceRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "System.String", "X:System.String", "T:"} {
		if _, err := ParseCrossReference(raw); err == nil {
			t.Fatalf("parse %q: expected error", raw)
		}
	}
}

func TestCrossReferenceString(t *testing.T) {
	t.Parallel()

	ref := MustParseCrossReference("F:A.B.C")
	if got := ref.String(); got != "F:A.B.C" {
		t.Fatalf("string = %q, want F:A.B.C", got)
	}
	if (CrossReference{}).String() != "" {
		t.Fatalf("zero reference should render empty")
	}
}

func TestParseFragment(t *testing.T) {
	t.Parallel()

	frag, err := Parse(SourceInline("test"), []byte(`<parent><example/></parent>`))
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	if frag.Root() == nil || frag.Root().Tag != "parent" {
		t.Fatalf("expected parent root, got %v", frag.Root())
	}
	if frag.Location() != "test" {
		t.Fatalf("location = %q, want test", frag.Location())
	}
}

func TestParseFragmentRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := Parse(SourceInline(""), nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
	if _, err := Parse(nil, []byte("<a/>")); err == nil {
		t.Fatalf("expected error for nil source")
	}
	_, err := Parse(SourceInline(""), []byte("   "))
	if err == nil {
		t.Fatalf("expected error for whitespace-only payload")
	}
	if !strings.Contains(err.Error(), "xmldoc") {
		t.Fatalf("error = %q, want xmldoc prefix", err)
	}
}
