package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/gourbalissakh/scolaris/core"
	"github.com/gourbalissakh/scolaris/session"
)

// notifyKind is the severity of a user-facing notification.
type notifyKind int

const (
	notifySuccess notifyKind = iota
	notifyError
	notifyWarning
	notifyInfo
)

// notifier is the single notification channel: every command outcome,
// success or failure, goes through Notify. No other presentation style
// exists.
type notifier struct {
	out   io.Writer
	theme *session.Theme
}

func newNotifier(out io.Writer, theme *session.Theme) *notifier {
	return &notifier{out: out, theme: theme}
}

func (n *notifier) Notify(kind notifyKind, message string) {
	fmt.Fprintf(n.out, "%s %s\n", n.prefix(kind), message)
}

// prefix picks the marker per kind; the dark theme gets the plain ASCII set.
func (n *notifier) prefix(kind notifyKind) string {
	if n.theme != nil && n.theme.Name() == session.ThemeDark {
		switch kind {
		case notifySuccess:
			return "[ok]"
		case notifyError:
			return "[error]"
		case notifyWarning:
			return "[warn]"
		}
		return "[info]"
	}
	switch kind {
	case notifySuccess:
		return "✔"
	case notifyError:
		return "✖"
	case notifyWarning:
		return "⚠"
	}
	return "ℹ"
}

func (n *notifier) Success(format string, args ...interface{}) {
	n.Notify(notifySuccess, fmt.Sprintf(format, args...))
}

func (n *notifier) Info(format string, args ...interface{}) {
	n.Notify(notifyInfo, fmt.Sprintf(format, args...))
}

// LoadError, SaveError and DeleteError present a failed call with the action
// prefix, one notification per field message for validation rejections.
func (n *notifier) LoadError(what string, err error)   { n.present("could not load "+what, err) }
func (n *notifier) SaveError(what string, err error)   { n.present("could not save "+what, err) }
func (n *notifier) DeleteError(what string, err error) { n.present("could not delete "+what, err) }

func (n *notifier) present(prefix string, err error) {
	switch cause := errors.Cause(err).(type) {
	case *core.ValidationError:
		for _, fld := range cause.Fields {
			n.Notify(notifyError, fmt.Sprintf("%s: %s: %s", prefix, fld.Field, fld.Error))
		}
		if len(cause.Fields) == 0 {
			n.Notify(notifyError, fmt.Sprintf("%s: %s", prefix, cause.Error()))
		}
	case *core.APIError:
		switch cause.Kind {
		case core.KindValidation:
			for _, fld := range cause.Fields {
				n.Notify(notifyError, fmt.Sprintf("%s: %s: %s", prefix, fld.Field, fld.Error))
			}
			if len(cause.Fields) == 0 {
				n.Notify(notifyError, fmt.Sprintf("%s: %s", prefix, cause.Message))
			}
		case core.KindNetwork, core.KindTimeout:
			n.Notify(notifyWarning, fmt.Sprintf("%s: %s", prefix, cause.Message))
		default:
			n.Notify(notifyError, fmt.Sprintf("%s: %s", prefix, cause.Message))
		}
	default:
		n.Notify(notifyError, fmt.Sprintf("%s: %v", prefix, err))
	}
}
