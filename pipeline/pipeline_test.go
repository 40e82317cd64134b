package pipeline

import (
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/nodeset/dom"
	"github.com/heathj/nodeset/parser"
)

type pipelineTest struct {
	data     string
	pipeline string
	result   []string
	err      string
}

func parseTests(t *testing.T) []pipelineTest {
	raw, err := os.ReadFile("testdata/pipelines.dat")
	require.NoError(t, err)

	var tests []pipelineTest
	for i, chunk := range strings.Split(string(raw), "#data\n") {
		if i == 0 {
			continue
		}
		var tt pipelineTest
		var data []string
		section := "#data"
		for _, line := range strings.Split(chunk, "\n") {
			switch line {
			case "#pipeline", "#result", "#error":
				section = line
				continue
			}
			switch section {
			case "#data":
				data = append(data, line)
			case "#pipeline":
				if tt.pipeline == "" {
					tt.pipeline = line
				}
			case "#result":
				if line != "" {
					tt.result = append(tt.result, line)
				}
			case "#error":
				if line != "" {
					tt.err = line
				}
			}
		}
		tt.data = strings.Join(data, "\n")
		tests = append(tests, tt)
	}
	return tests
}

func TestPipelines(t *testing.T) {
	tests := parseTests(t)
	require.NotEmpty(t, tests)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.pipeline, func(t *testing.T) {
			t.Parallel()
			doc, err := dom.ParseString(tt.data)
			require.NoError(t, err)

			set, err := Eval(doc, tt.pipeline)
			if tt.err != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.err)
				return
			}
			require.NoError(t, err)
			var got []string
			for _, n := range set.Nodes() {
				got = append(got, parser.SerializeNode(n))
			}
			assert.Equal(t, tt.result, got)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		want []Step
	}{
		{"li", []Step{{OpSelect, "li"}}},
		{"#main li | parent", []Step{{OpSelect, "#main li"}, {OpParent, ""}}},
		{"select a | find  b ", []Step{{OpSelect, "a"}, {OpFind, "b"}}},
		{"p:is(.a, .b) | children [data-x='1|2']", []Step{
			{OpSelect, "p:is(.a, .b)"},
			{OpChildren, "[data-x='1|2']"},
		}},
		{"x | unique | first | filter", []Step{{OpSelect, "x"}, {OpUnique, ""}, {OpFirst, ""}, {OpFilter, ""}}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}

func TestParseErrors(t *testing.T) {
	for _, expr := range []string{
		"",
		"a ||",
		"a | parent b",
		"a | closest",
		"a | nosuch",
		"select",
	} {
		_, err := Parse(expr)
		assert.True(t, errors.Is(err, ErrSyntax), "%q: %v", expr, err)
	}
}

func TestStepString(t *testing.T) {
	assert.Equal(t, "parent", Step{Op: OpParent}.String())
	assert.Equal(t, "find .a", Step{Op: OpFind, Arg: ".a"}.String())
}
