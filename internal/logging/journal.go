package logging

import (
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	log "github.com/sirupsen/logrus"
)

// JournalHook forwards logrus entries to the systemd journal. The tool is
// invoked from systemd-suspend.service, where stderr is not kept.
type JournalHook struct {
	Identifier string
}

// AddJournalHook installs a JournalHook on the standard logger if the
// journal is available. It reports whether the hook was installed.
func AddJournalHook(identifier string) bool {
	if !journal.Enabled() {
		return false
	}
	log.AddHook(&JournalHook{Identifier: identifier})
	return true
}

// Levels implements logrus.Hook.
func (h *JournalHook) Levels() []log.Level {
	return log.AllLevels
}

// Fire implements logrus.Hook.
func (h *JournalHook) Fire(entry *log.Entry) error {
	fields := make(map[string]string, len(entry.Data)+1)
	fields["SYSLOG_IDENTIFIER"] = h.Identifier
	for key, value := range entry.Data {
		fields[fieldName(key)] = fmt.Sprint(value)
	}
	return journal.Send(entry.Message, priority(entry.Level), fields)
}

// journal field names must be uppercase
func fieldName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func priority(level log.Level) journal.Priority {
	switch level {
	case log.PanicLevel:
		return journal.PriEmerg
	case log.FatalLevel:
		return journal.PriCrit
	case log.ErrorLevel:
		return journal.PriErr
	case log.WarnLevel:
		return journal.PriWarning
	case log.InfoLevel:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}
