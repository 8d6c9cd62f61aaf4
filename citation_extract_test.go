package taxagent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taxagent/taxagent"
)

func TestExtractCitation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		heading string
		want    string
	}{
		{
			name:    "section with subsection and heading",
			heading: "## §63(c) Standard Deduction",
			want:    "26 USC §63(c) [Standard Deduction]",
		},
		{
			name:    "bare section number",
			heading: "# §1",
			want:    "26 USC §1",
		},
		{
			name:    "alphanumeric section",
			heading: "### §280A(g) Special rule",
			want:    "26 USC §280A(g) [Special rule]",
		},
		{
			name:    "deeply nested citation",
			heading: "###### §63(c)(7)(A) Inflation adjustment",
			want:    "26 USC §63(c)(7)(A) [Inflation adjustment]",
		},
		{
			name:    "no section number falls back",
			heading: "## Normal Taxes and Surtaxes",
			want:    "US Tax Code [Normal Taxes and Surtaxes]",
		},
		{
			name:    "heading without markdown marks",
			heading: "§63(c) Standard Deduction",
			want:    "26 USC §63(c) [Standard Deduction]",
		},
		{
			name:    "empty heading",
			heading: "",
			want:    "US Tax Code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, taxagent.ExtractCitation(tt.heading))
		})
	}
}
