// Package errlog integrates xgxchain errors with zerolog.
//
// Library errors are logged as structured objects (kind, marker, message,
// detail, location and the rendered chain) instead of a single string:
//
//	errlog.Install()
//	log.Error().Err(err).Msg("parse failed")
//
// The core package never logs; everything here is opt-in.
package errlog

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	xgxchain "github.com/xgx-io/xgx-chain"
)

// Init configures the global logger to write to w at level. A nil w means
// stderr.
func Init(w io.Writer, level zerolog.Level) {
	if w == nil {
		w = os.Stderr
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// Object adapts err to zerolog.LogObjectMarshaler. Foreign errors log just
// their message. A library error inside a foreign wrapper logs its own fields
// plus the wrapper's text under "wrapper".
func Object(err error) zerolog.LogObjectMarshaler { return errObject{err} }

type errObject struct{ err error }

func (o errObject) MarshalZerologObject(e *zerolog.Event) {
	if o.err == nil {
		return
	}
	var le xgxchain.Error
	if !errors.As(o.err, &le) {
		e.Str("message", o.err.Error())
		return
	}
	k := le.Kind()
	e.Str("kind", k.Name()).
		Str("marker", k.Marker()).
		Str("message", k.Message())
	if d := le.Detail(); d != "" {
		e.Str("detail", d)
	}
	if loc := le.Location(); !loc.IsZero() {
		e.Str("file", loc.File).Int("line", loc.Line).Int("column", loc.Column)
	}
	e.Str("chain", le.Chain())
	if w := wrapperText(o.err); w != "" {
		e.Str("wrapper", w)
	}
}

// wrapperText is the full text of a foreign wrapper around a library error,
// or "" when err is the library error itself.
func wrapperText(err error) string {
	if _, direct := err.(xgxchain.Error); direct {
		return ""
	}
	return err.Error()
}

// Fields adds err's structured fields to e under the "error" key.
func Fields(e *zerolog.Event, err error) *zerolog.Event {
	if err == nil {
		return e
	}
	return e.Object(zerolog.ErrorFieldName, Object(err))
}

var installOnce sync.Once

// Install makes Event.Err log library errors as objects. Other errors keep
// zerolog's default string rendering. Safe to call more than once.
func Install() {
	installOnce.Do(func() {
		prev := zerolog.ErrorMarshalFunc
		zerolog.ErrorMarshalFunc = func(err error) interface{} {
			if xgxchain.KindOf(err) != nil {
				return Object(err)
			}
			return prev(err)
		}
	})
}
