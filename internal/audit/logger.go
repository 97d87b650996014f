package audit

import (
	"encoding/json"
	"log"
	"strconv"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Logger journals appointment mutations. The appointments table is the only
// durable state, so entries go to the process log.
type Logger struct {
	out *log.Logger
}

func New(out *log.Logger) *Logger {
	if out == nil {
		out = log.Default()
	}
	return &Logger{out: out}
}

func (l *Logger) Log(ev Event) {
	if l == nil {
		return
	}

	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entityID := "-"
	if ev.EntityID != nil {
		entityID = strconv.FormatUint(uint64(*ev.EntityID), 10)
	}

	l.out.Printf(
		"audit action=%s entity=%s entity_id=%s metadata=%s",
		ev.Action, ev.Entity, entityID, metaJSON,
	)
}
