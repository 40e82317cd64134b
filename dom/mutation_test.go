package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInnerHTML(t *testing.T) {
	d := mustDoc(t, `<div id="d"><b>old</b></div>`)
	div := d.GetElementByID("d")

	require.NoError(t, d.SetInnerHTML(div, `<i>new</i> text`))
	assert.Equal(t, `<i>new</i> text`, InnerHTML(div))

	assert.Error(t, d.SetInnerHTML(div.FirstChild.FirstChild, "x"))
}

func TestInsertAdjacentHTML(t *testing.T) {
	tests := []struct {
		where string
		want  string
	}{
		{"beforebegin", `<hr><p id="p">x</p>`},
		{"AfterBegin", `<p id="p"><hr>x</p>`},
		{"beforeend", `<p id="p">x<hr></p>`},
		{"afterend", `<p id="p">x</p><hr>`},
	}
	for _, tt := range tests {
		t.Run(tt.where, func(t *testing.T) {
			d := mustDoc(t, `<div id="d"><p id="p">x</p></div>`)
			require.NoError(t, d.InsertAdjacentHTML(d.GetElementByID("p"), tt.where, "<hr>"))
			assert.Equal(t, tt.want, InnerHTML(d.GetElementByID("d")))
		})
	}
}

func TestInsertAdjacentHTMLErrors(t *testing.T) {
	d := mustDoc(t, `<p>x</p>`)
	p := d.GetElementsByTagName("p")[0]

	err := d.InsertAdjacentHTML(p, "inside", "<b></b>")
	assert.True(t, errors.Is(err, ErrInvalidPosition))

	err = d.InsertAdjacentHTML(d.DocumentElement(), "afterend", "<b></b>")
	assert.True(t, errors.Is(err, ErrNoParent))

	err = d.InsertAdjacentHTML(p.FirstChild, "beforeend", "<b></b>")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	d := mustDoc(t, `<ul><li>1</li><li>2</li></ul>`)
	li := d.GetElementsByTagName("li")[0]

	assert.True(t, d.Remove(li))
	assert.Nil(t, li.Parent)
	assert.Len(t, d.GetElementsByTagName("li"), 1)
	assert.False(t, d.Remove(li))
	assert.False(t, d.Remove(nil))
}

func TestMutationTrace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	d := mustDoc(t, `<p id="p">x</p>`)
	WithLogger(logger)(d)

	require.NoError(t, d.SetInnerHTML(d.GetElementByID("p"), "y"))
	assert.Empty(t, hook.AllEntries(), "nothing traced above debug level")

	logger.SetLevel(logrus.DebugLevel)
	require.NoError(t, d.SetInnerHTML(d.GetElementByID("p"), "z"))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "SetInnerHTML", entry.Data["method"])
	assert.Equal(t, "dom", entry.Data["component"])
	assert.Contains(t, entry.Message, "[TREE]: ")

	hook.Reset()
	require.NoError(t, d.SetInnerHTML(d.GetElementByID("p"), "z"))
	assert.Empty(t, hook.AllEntries(), "unchanged trees are not logged")
}
