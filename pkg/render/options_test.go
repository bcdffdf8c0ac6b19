package render

import (
	"testing"

	"github.com/lbreuer/folium/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"print", FormatPrint, true},
		{"pdf", FormatPrint, true},
		{"markup", FormatMarkup, true},
		{"html", FormatMarkup, true},
		{"flow", FormatFlow, true},
		{"docx", FormatFlow, true},
		{"PDF", FormatPrint, true},
		{"dvi", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseFormat(%q): %v", tc.in, err)
			} else if got != tc.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("ParseFormat(%q) succeeded, want error", tc.in)
		} else if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %v", tc.in, errors.GetCode(err))
		}
	}
}

func TestFormatExtensionAndContentType(t *testing.T) {
	if FormatPrint.Extension() != ".pdf" || FormatMarkup.Extension() != ".html" || FormatFlow.Extension() != ".docx" {
		t.Error("unexpected extension mapping")
	}
	if FormatPrint.ContentType() != "application/pdf" {
		t.Errorf("print content type = %q", FormatPrint.ContentType())
	}
	if FormatMarkup.ContentType() != "text/html; charset=utf-8" {
		t.Errorf("markup content type = %q", FormatMarkup.ContentType())
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Errorf("default options should validate: %v", err)
	}

	opts.Format = "parchment"
	if err := opts.Validate(); err == nil {
		t.Error("unknown format should fail validation")
	} else if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("code = %v", errors.GetCode(err))
	}
}
