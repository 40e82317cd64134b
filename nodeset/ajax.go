package nodeset

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/heathj/nodeset/dom"
)

const (
	ajaxPlugin   = "ajax"
	defaultParam = "umbrella=true"
	maxResponse  = 10 << 20
)

// AjaxHandlers are the callbacks of one form submission. Any of them may be nil.
type AjaxHandlers struct {
	// Before runs before the request is built.
	Before func()
	// Success gets the decoded JSON object or array, or the raw body when the
	// response is not JSON.
	Success func(payload any)
	// Error gets the HTTP status, or 0 when no response arrived.
	Error func(status int)
}

func (h AjaxHandlers) before() {
	if h.Before != nil {
		h.Before()
	}
}

func (h AjaxHandlers) success(payload any) {
	if h.Success != nil {
		h.Success(payload)
	}
}

func (h AjaxHandlers) fail(status int) {
	if h.Error != nil {
		h.Error(status)
	}
}

// Submitter posts serialized forms. The zero value is usable: it posts with
// http.DefaultClient, logs to the standard logger and appends no param.
type Submitter struct {
	Client *http.Client
	// Param is appended to every body. NewSubmitter sets "umbrella=true" unless configured.
	Param   string
	Timeout time.Duration
	Log     logrus.FieldLogger
}

// NewSubmitter reads the "ajax" plugin settings ("param", "timeout") from opts.
func NewSubmitter(client *http.Client, opts Options) *Submitter {
	if client == nil {
		client = http.DefaultClient
	}
	return &Submitter{
		Client:  client,
		Param:   opts.String(ajaxPlugin, "param", defaultParam),
		Timeout: opts.Duration(ajaxPlugin, "timeout", 0),
		Log:     logrus.StandardLogger().WithField("component", ajaxPlugin),
	}
}

// Post sends data to target and calls exactly one of h.Success and h.Error
// once the exchange is over.
func (sub *Submitter) Post(ctx context.Context, target, data string, h AjaxHandlers) {
	h.before()
	if sub.Param != "" {
		data += "&" + sub.Param
	}
	if sub.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sub.Timeout)
		defer cancel()
	}

	client, logger := sub.Client, sub.Log
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("url", target)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(data))
	if err != nil {
		log.WithError(err).Warn("building request")
		h.fail(0)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	resp, err := client.Do(req)
	if err != nil {
		log.WithError(err).Warn("posting form")
		h.fail(0)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		h.fail(resp.StatusCode)
		return
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponse))
	if err != nil {
		log.WithError(err).Warn("reading response")
		h.fail(0)
		return
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err == nil {
		switch payload.(type) {
		case map[string]any, []any:
			h.success(payload)
			return
		}
	}
	log.Debug("response isn't json")
	h.success(string(body))
}

// Ajax makes every node, expected to be a form, submit through sub: the
// submit event is cancelled and the serialized form is posted to its action
// on a new goroutine.
func (s Set) Ajax(sub *Submitter, h AjaxHandlers) Set {
	return s.On("submit", func(e *dom.Event) {
		e.PreventDefault()
		form := FromNode(s.doc, formOf(e))
		action, data := form.Attr("action"), form.Serialize()
		go sub.Post(context.Background(), action, data, h)
	})
}

func formOf(e *dom.Event) *html.Node {
	if e.CurrentTarget != nil {
		return e.CurrentTarget
	}
	return e.Target
}
