/*
URISplice
Author: slicingmelon <github.com/slicingmelon>
X: x.com/pedro_infosec
*/
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/pterm/pterm"
)

type Logger struct {
	mu      sync.Mutex
	verbose bool
	debug   bool
}

var DefaultLogger *Logger

func init() {
	DefaultLogger = &Logger{}

	pterm.EnableDebugMessages()
	SetOutput(os.Stdout)
}

// SetOutput routes every pterm printer used by the logger through a SafeWriter on w.
func SetOutput(w io.Writer) {
	safeWriter := NewSafeWriter(w)

	pterm.Info = *pterm.Info.WithWriter(safeWriter)
	pterm.Debug = *pterm.Debug.WithWriter(safeWriter)
	pterm.Error = *pterm.Error.WithWriter(safeWriter)
	pterm.Warning = *pterm.Warning.WithWriter(safeWriter)
	pterm.Success = *pterm.Success.WithWriter(safeWriter)
}

type Event struct {
	logger    *Logger
	printer   pterm.PrefixPrinter
	component string
	planToken string
	metadata  map[string]string
}

type SafeWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

func (sw *SafeWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	// Prepend \r and ensure \n
	newP := make([]byte, 0, len(p)+2)
	newP = append(newP, '\r')
	newP = append(newP, p...)
	if !bytes.HasSuffix(newP, []byte("\n")) {
		newP = append(newP, '\n')
	}

	return sw.w.Write(newP)
}

func (l *Logger) newEvent(printer pterm.PrefixPrinter) *Event {
	return &Event{
		logger:   l,
		printer:  printer,
		metadata: make(map[string]string),
	}
}

// Core logging methods
func Info() *Event {
	return DefaultLogger.newEvent(pterm.Info)
}

func Success() *Event {
	return DefaultLogger.newEvent(pterm.Success)
}

func Error() *Event {
	return DefaultLogger.newEvent(pterm.Error)
}

func Warning() *Event {
	return DefaultLogger.newEvent(pterm.Warning)
}

// Debug returns nil unless debug output is enabled; every Event method is nil-safe.
func Debug() *Event {
	if !DefaultLogger.IsDebugEnabled() {
		return nil
	}
	return DefaultLogger.newEvent(pterm.Debug)
}

func Verbose() *Event {
	if !DefaultLogger.IsVerboseEnabled() {
		return nil
	}
	return DefaultLogger.newEvent(pterm.Info)
}

func (e *Event) Msgf(format string, args ...any) {
	if e == nil {
		return
	}

	e.logger.mu.Lock()
	defer e.logger.mu.Unlock()

	keys := make([]string, 0, len(e.metadata))
	for k := range e.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var meta string
	for _, k := range keys {
		meta += " " + pterm.Bold.Sprint(k) + "=" + e.metadata[k]
	}

	var componentStr string
	if e.component != "" {
		componentStr = pterm.FgCyan.Sprintf("[%s] ", e.component)
	}

	var tokenStr string
	if e.planToken != "" {
		tokenStr = pterm.FgYellow.Sprintf("[%s] ", e.planToken)
	}

	e.printer.Println(componentStr + tokenStr + fmt.Sprintf(format, args...) + meta)
}

// Component tags the event with the URI component it concerns.
func (e *Event) Component(component string) *Event {
	if e == nil {
		return nil
	}
	e.component = component
	return e
}

func (e *Event) PlanToken(token string) *Event {
	if e == nil {
		return nil
	}
	e.planToken = token
	return e
}

func (e *Event) Metadata(key, value string) *Event {
	if e == nil {
		return nil
	}
	e.metadata[key] = value
	return e
}

// Logger control methods
func (l *Logger) EnableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = true
}

func (l *Logger) EnableVerbose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = true
}

func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) IsVerboseEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func IsDebugEnabled() bool {
	return DefaultLogger.IsDebugEnabled()
}

func IsVerboseEnabled() bool {
	return DefaultLogger.IsVerboseEnabled()
}

func PrintYellowLn(format string, args ...any) {
	DefaultLogger.mu.Lock()
	defer DefaultLogger.mu.Unlock()
	pterm.FgYellow.Printfln(format, args...)
}

func PrintYellow(format string, args ...any) {
	DefaultLogger.mu.Lock()
	defer DefaultLogger.mu.Unlock()
	pterm.FgYellow.Printf(format, args...)
}

// PrintURIHeader prints the banner shown above the report of one input URI
func PrintURIHeader(index int, rawURI string) {
	DefaultLogger.mu.Lock()
	defer DefaultLogger.mu.Unlock()

	indexText := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack).Sprintf(" #%d ", index)
	uriText := pterm.FgYellow.Sprintf("%s", rawURI)

	pterm.Println(indexText + " " + uriText)
}
