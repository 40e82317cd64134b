package dom

import (
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/parser"
)

// traceMutation runs mutate and, when debug logging is on, logs how the tree
// containing n changed.
func (d *Document) traceMutation(method string, n *html.Node, mutate func()) {
	if d == nil || d.log == nil || !d.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		mutate()
		return
	}
	root := Root(n)
	before := parser.SerializeNode(root)
	mutate()
	after := parser.SerializeNode(root)
	PrintDiff(d.log, before, after, method)
}

// PrintDiff logs the difference between two serialized trees.
func PrintDiff(log logrus.FieldLogger, a, b, method string) {
	if a == b {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	log.WithField("method", method).Debugf("[TREE]: %s", dmp.DiffPrettyText(diffs))
}
